package handlers

import (
	"net/http"
	"strconv"

	"github.com/examtrack/examtrack-api/analysis"
	"github.com/examtrack/examtrack-api/models"
)

func (db *DBHandler) fetchTopicInputs(w http.ResponseWriter) ([]models.QuestionLog, []models.ExamResult, bool) {
	var logs []models.QuestionLog
	if err := db.Find(&logs).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch question logs")
		return nil, nil, false
	}
	var exams []models.ExamResult
	if err := db.Find(&exams).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch exam results")
		return nil, nil, false
	}
	return logs, exams, true
}

func (db *DBHandler) GetTopicStats(w http.ResponseWriter, r *http.Request) {
	logs, exams, ok := db.fetchTopicInputs(w)
	if !ok {
		return
	}
	db.respondJSON(w, http.StatusOK, analysis.TopicStats(logs, exams))
}

func (db *DBHandler) GetPriorityTopics(w http.ResponseWriter, r *http.Request) {
	logs, exams, ok := db.fetchTopicInputs(w)
	if !ok {
		return
	}
	db.respondJSON(w, http.StatusOK, analysis.PriorityTopics(logs, exams))
}

func (db *DBHandler) GetSubjectSolvedStats(w http.ResponseWriter, r *http.Request) {
	var logs []models.QuestionLog
	if err := db.Find(&logs).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch question logs")
		return
	}
	db.respondJSON(w, http.StatusOK, analysis.SubjectSolvedStats(logs))
}

// GetOBP converts a diploma score to the 0-500 placement scale:
// /api/stats/obp?diploma=87.5&placed=true
func (db *DBHandler) GetOBP(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("diploma")
	if raw == "" {
		db.respondError(w, http.StatusBadRequest, "diploma query parameter is required")
		return
	}
	diploma, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		db.respondError(w, http.StatusBadRequest, "diploma must be a number")
		return
	}

	placed := false
	if rawPlaced := r.URL.Query().Get("placed"); rawPlaced != "" {
		placed, err = strconv.ParseBool(rawPlaced)
		if err != nil {
			db.respondError(w, http.StatusBadRequest, "placed must be a boolean")
			return
		}
	}

	db.respondJSON(w, http.StatusOK, map[string]float64{"obp": analysis.OBP(diploma, placed)})
}
