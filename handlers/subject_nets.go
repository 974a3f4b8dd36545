package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/examtrack/examtrack-api/models"
)

type subjectNetCreateRequest struct {
	Subject      string `json:"subject" validate:"required"`
	CorrectCount int    `json:"correct_count" validate:"gte=0"`
	WrongCount   int    `json:"wrong_count" validate:"gte=0"`
	BlankCount   int    `json:"blank_count" validate:"gte=0"`
}

// CreateSubjectNet adds a per-subject score row under an exam. The exam
// must exist; a row pointing at a missing exam would break the
// cascade-delete invariant, so the request is rejected outright.
func (db *DBHandler) CreateSubjectNet(w http.ResponseWriter, r *http.Request) {
	examID := r.PathValue("examID")

	var exam models.ExamResult
	if err := db.Where("id = ?", examID).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.respondError(w, http.StatusUnprocessableEntity, "exam result does not exist")
			return
		}
		db.respondError(w, http.StatusInternalServerError, "failed to look up exam result")
		return
	}

	var req subjectNetCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid subject net payload: "+err.Error())
		return
	}

	net := models.ExamSubjectNet{
		ID:           uuid.NewString(),
		ExamID:       exam.ID,
		Subject:      req.Subject,
		CorrectCount: req.CorrectCount,
		WrongCount:   req.WrongCount,
		BlankCount:   req.BlankCount,
	}

	if err := db.Create(&net).Error; err != nil {
		db.log.Errorw("failed to create subject net", "error", err, "examID", exam.ID)
		db.respondError(w, http.StatusInternalServerError, "failed to create subject net")
		return
	}
	db.respondJSON(w, http.StatusCreated, net)
}

func (db *DBHandler) GetSubjectNetsByExamID(w http.ResponseWriter, r *http.Request) {
	nets := make([]models.ExamSubjectNet, 0)
	if err := db.Where("exam_id = ?", r.PathValue("examID")).Order("created_at asc").Find(&nets).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch subject nets")
		return
	}
	db.respondJSON(w, http.StatusOK, nets)
}

type subjectNetUpdateRequest struct {
	Subject      *string `json:"subject,omitempty"`
	CorrectCount *int    `json:"correct_count,omitempty" validate:"omitempty,gte=0"`
	WrongCount   *int    `json:"wrong_count,omitempty" validate:"omitempty,gte=0"`
	BlankCount   *int    `json:"blank_count,omitempty" validate:"omitempty,gte=0"`
}

func (db *DBHandler) UpdateSubjectNetByID(w http.ResponseWriter, r *http.Request) {
	var net models.ExamSubjectNet
	if err := db.Where("id = ?", r.PathValue("netID")).First(&net).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "subject net not found")
		return
	}

	var req subjectNetUpdateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid subject net payload: "+err.Error())
		return
	}

	if req.Subject != nil {
		net.Subject = *req.Subject
	}
	if req.CorrectCount != nil {
		net.CorrectCount = *req.CorrectCount
	}
	if req.WrongCount != nil {
		net.WrongCount = *req.WrongCount
	}
	if req.BlankCount != nil {
		net.BlankCount = *req.BlankCount
	}

	if err := db.Save(&net).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to update subject net")
		return
	}
	db.respondJSON(w, http.StatusOK, net)
}

func (db *DBHandler) DeleteSubjectNetByID(w http.ResponseWriter, r *http.Request) {
	result := db.Where("id = ?", r.PathValue("netID")).Delete(&models.ExamSubjectNet{})
	if result.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete subject net")
		return
	}
	if result.RowsAffected == 0 {
		db.respondError(w, http.StatusNotFound, "subject net not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (db *DBHandler) DeleteSubjectNetsByExamID(w http.ResponseWriter, r *http.Request) {
	if err := db.Where("exam_id = ?", r.PathValue("examID")).Delete(&models.ExamSubjectNet{}).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete subject nets")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
