package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/examtrack-api/analysis"
	"github.com/examtrack/examtrack-api/models"
)

type questionLogCreateRequest struct {
	ExamType         string                `json:"exam_type" validate:"required,oneof=TYT AYT"`
	Subject          string                `json:"subject" validate:"required"`
	CorrectCount     int                   `json:"correct_count" validate:"gte=0"`
	WrongCount       int                   `json:"wrong_count" validate:"gte=0"`
	BlankCount       int                   `json:"blank_count" validate:"gte=0"`
	StudyDate        string                `json:"study_date" validate:"omitempty,datetime=2006-01-02"`
	WrongTopics      models.WrongTopicList `json:"wrong_topics"`
	TimeSpentMinutes int                   `json:"time_spent_minutes" validate:"gte=0"`
}

func (db *DBHandler) CreateQuestionLog(w http.ResponseWriter, r *http.Request) {
	var req questionLogCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid question log payload: "+err.Error())
		return
	}

	if req.StudyDate == "" {
		req.StudyDate = time.Now().Format(analysis.DayFormat)
	}

	log := models.QuestionLog{
		ID:               uuid.NewString(),
		ExamType:         req.ExamType,
		Subject:          req.Subject,
		CorrectCount:     req.CorrectCount,
		WrongCount:       req.WrongCount,
		BlankCount:       req.BlankCount,
		StudyDate:        req.StudyDate,
		WrongTopics:      req.WrongTopics,
		TimeSpentMinutes: req.TimeSpentMinutes,
	}

	if err := db.Create(&log).Error; err != nil {
		db.log.Errorw("failed to create question log", "error", err)
		db.respondError(w, http.StatusInternalServerError, "failed to create question log")
		return
	}
	db.respondJSON(w, http.StatusCreated, log)
}

// GetQuestionLogs lists all logs, optionally limited to a study-date
// range via ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (db *DBHandler) GetQuestionLogs(w http.ResponseWriter, r *http.Request) {
	query := db.Order("study_date desc, created_at desc")
	if start := r.URL.Query().Get("start"); start != "" {
		query = query.Where("study_date >= ?", start)
	}
	if end := r.URL.Query().Get("end"); end != "" {
		query = query.Where("study_date <= ?", end)
	}

	var logs []models.QuestionLog
	if err := query.Find(&logs).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch question logs")
		return
	}
	db.respondJSON(w, http.StatusOK, logs)
}

func (db *DBHandler) GetQuestionLogByID(w http.ResponseWriter, r *http.Request) {
	var log models.QuestionLog
	if err := db.Where("id = ?", r.PathValue("logID")).First(&log).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "question log not found")
		return
	}
	db.respondJSON(w, http.StatusOK, log)
}

type questionLogUpdateRequest struct {
	ExamType         *string                `json:"exam_type,omitempty" validate:"omitempty,oneof=TYT AYT"`
	Subject          *string                `json:"subject,omitempty"`
	CorrectCount     *int                   `json:"correct_count,omitempty" validate:"omitempty,gte=0"`
	WrongCount       *int                   `json:"wrong_count,omitempty" validate:"omitempty,gte=0"`
	BlankCount       *int                   `json:"blank_count,omitempty" validate:"omitempty,gte=0"`
	StudyDate        *string                `json:"study_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WrongTopics      *models.WrongTopicList `json:"wrong_topics,omitempty"`
	TimeSpentMinutes *int                   `json:"time_spent_minutes,omitempty" validate:"omitempty,gte=0"`
}

func (db *DBHandler) UpdateQuestionLogByID(w http.ResponseWriter, r *http.Request) {
	var log models.QuestionLog
	if err := db.Where("id = ?", r.PathValue("logID")).First(&log).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "question log not found")
		return
	}

	var req questionLogUpdateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid question log payload: "+err.Error())
		return
	}

	if req.ExamType != nil {
		log.ExamType = *req.ExamType
	}
	if req.Subject != nil {
		log.Subject = *req.Subject
	}
	if req.CorrectCount != nil {
		log.CorrectCount = *req.CorrectCount
	}
	if req.WrongCount != nil {
		log.WrongCount = *req.WrongCount
	}
	if req.BlankCount != nil {
		log.BlankCount = *req.BlankCount
	}
	if req.StudyDate != nil {
		log.StudyDate = *req.StudyDate
	}
	if req.WrongTopics != nil {
		log.WrongTopics = *req.WrongTopics
	}
	if req.TimeSpentMinutes != nil {
		log.TimeSpentMinutes = *req.TimeSpentMinutes
	}

	if err := db.Save(&log).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to update question log")
		return
	}
	db.respondJSON(w, http.StatusOK, log)
}

func (db *DBHandler) DeleteQuestionLogByID(w http.ResponseWriter, r *http.Request) {
	result := db.Where("id = ?", r.PathValue("logID")).Delete(&models.QuestionLog{})
	if result.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete question log")
		return
	}
	if result.RowsAffected == 0 {
		db.respondError(w, http.StatusNotFound, "question log not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (db *DBHandler) DeleteAllQuestionLogs(w http.ResponseWriter, r *http.Request) {
	if err := db.Where("1 = 1").Delete(&models.QuestionLog{}).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete question logs")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
