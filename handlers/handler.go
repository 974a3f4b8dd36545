package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
	validate *validator.Validate
	log      *zap.SugaredLogger
}

func NewDBHandler(db *gorm.DB, log *zap.SugaredLogger) *DBHandler {
	return &DBHandler{
		DB:       db,
		validate: validator.New(),
		log:      log,
	}
}

func (db *DBHandler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		db.log.Errorw("failed to encode response", "error", err)
	}
}

func (db *DBHandler) respondError(w http.ResponseWriter, status int, message string) {
	db.respondJSON(w, status, map[string]string{"error": message})
}

// decodeValid decodes the request body into dst and runs struct
// validation on it.
func (db *DBHandler) decodeValid(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return db.validate.Struct(dst)
}
