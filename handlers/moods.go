package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/examtrack/examtrack-api/models"
)

type moodCreateRequest struct {
	Mood   string `json:"mood" validate:"required"`
	MoodBg string `json:"moodBg"`
	Note   string `json:"note"`
}

func (db *DBHandler) CreateMood(w http.ResponseWriter, r *http.Request) {
	var req moodCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid mood payload: "+err.Error())
		return
	}

	mood := models.Mood{
		ID:     uuid.NewString(),
		Mood:   req.Mood,
		MoodBg: req.MoodBg,
		Note:   req.Note,
	}

	if err := db.Create(&mood).Error; err != nil {
		db.log.Errorw("failed to create mood", "error", err)
		db.respondError(w, http.StatusInternalServerError, "failed to create mood")
		return
	}
	db.respondJSON(w, http.StatusCreated, mood)
}

func (db *DBHandler) GetMoods(w http.ResponseWriter, r *http.Request) {
	var moods []models.Mood
	if err := db.Order("created_at desc").Find(&moods).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch moods")
		return
	}
	db.respondJSON(w, http.StatusOK, moods)
}

func (db *DBHandler) DeleteMoodByID(w http.ResponseWriter, r *http.Request) {
	result := db.Where("id = ?", r.PathValue("moodID")).Delete(&models.Mood{})
	if result.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete mood")
		return
	}
	if result.RowsAffected == 0 {
		db.respondError(w, http.StatusNotFound, "mood not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
