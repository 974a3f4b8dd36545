package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/examtrack/examtrack-api/analysis"
	"github.com/examtrack/examtrack-api/models"
)

type examResultCreateRequest struct {
	ExamName     string                         `json:"exam_name" validate:"required"`
	ExamDate     string                         `json:"exam_date" validate:"omitempty,datetime=2006-01-02"`
	ExamType     string                         `json:"exam_type" validate:"omitempty,oneof=TYT AYT TYT_AYT"`
	TYTNet       float64                        `json:"tyt_net"`
	AYTNet       float64                        `json:"ayt_net"`
	SubjectsData map[string]models.SubjectScore `json:"subjects_data"`
	Ranking      string                         `json:"ranking"`
	Notes        string                         `json:"notes"`
}

func (db *DBHandler) CreateExamResult(w http.ResponseWriter, r *http.Request) {
	var req examResultCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid exam result payload: "+err.Error())
		return
	}

	// Nets not supplied by the client are derived from the per-subject
	// counts.
	if req.TYTNet == 0 && req.AYTNet == 0 && len(req.SubjectsData) > 0 {
		req.TYTNet, req.AYTNet = analysis.ExamNets(req.ExamType, req.SubjectsData)
	}

	var subjectsData datatypes.JSON
	if len(req.SubjectsData) > 0 {
		raw, err := json.Marshal(req.SubjectsData)
		if err != nil {
			db.respondError(w, http.StatusBadRequest, "invalid subjects_data")
			return
		}
		subjectsData = raw
	}

	result := models.ExamResult{
		ID:           uuid.NewString(),
		ExamName:     req.ExamName,
		ExamDate:     req.ExamDate,
		ExamType:     req.ExamType,
		TYTNet:       req.TYTNet,
		AYTNet:       req.AYTNet,
		SubjectsData: subjectsData,
		Ranking:      req.Ranking,
		Notes:        req.Notes,
	}

	if err := db.Create(&result).Error; err != nil {
		db.log.Errorw("failed to create exam result", "error", err)
		db.respondError(w, http.StatusInternalServerError, "failed to create exam result")
		return
	}
	db.respondJSON(w, http.StatusCreated, result)
}

func (db *DBHandler) GetExamResults(w http.ResponseWriter, r *http.Request) {
	var results []models.ExamResult
	if err := db.Order("exam_date desc, created_at desc").Find(&results).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch exam results")
		return
	}
	db.respondJSON(w, http.StatusOK, results)
}

func (db *DBHandler) GetExamResultByID(w http.ResponseWriter, r *http.Request) {
	var result models.ExamResult
	if err := db.Preload("SubjectNets").Where("id = ?", r.PathValue("examID")).First(&result).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "exam result not found")
		return
	}
	db.respondJSON(w, http.StatusOK, result)
}

type examResultUpdateRequest struct {
	ExamName     *string                         `json:"exam_name,omitempty"`
	ExamDate     *string                         `json:"exam_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExamType     *string                         `json:"exam_type,omitempty" validate:"omitempty,oneof=TYT AYT TYT_AYT"`
	TYTNet       *float64                        `json:"tyt_net,omitempty"`
	AYTNet       *float64                        `json:"ayt_net,omitempty"`
	SubjectsData *map[string]models.SubjectScore `json:"subjects_data,omitempty"`
	Ranking      *string                         `json:"ranking,omitempty"`
	Notes        *string                         `json:"notes,omitempty"`
}

func (db *DBHandler) UpdateExamResultByID(w http.ResponseWriter, r *http.Request) {
	var result models.ExamResult
	if err := db.Where("id = ?", r.PathValue("examID")).First(&result).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "exam result not found")
		return
	}

	var req examResultUpdateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid exam result payload: "+err.Error())
		return
	}

	if req.ExamName != nil {
		result.ExamName = *req.ExamName
	}
	if req.ExamDate != nil {
		result.ExamDate = *req.ExamDate
	}
	if req.ExamType != nil {
		result.ExamType = *req.ExamType
	}
	if req.TYTNet != nil {
		result.TYTNet = *req.TYTNet
	}
	if req.AYTNet != nil {
		result.AYTNet = *req.AYTNet
	}
	if req.SubjectsData != nil {
		raw, err := json.Marshal(*req.SubjectsData)
		if err != nil {
			db.respondError(w, http.StatusBadRequest, "invalid subjects_data")
			return
		}
		result.SubjectsData = raw
	}
	if req.Ranking != nil {
		result.Ranking = *req.Ranking
	}
	if req.Notes != nil {
		result.Notes = *req.Notes
	}

	if err := db.Save(&result).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to update exam result")
		return
	}
	db.respondJSON(w, http.StatusOK, result)
}

// DeleteExamResultByID removes the exam and every subject-net row that
// references it, in one transaction. No orphaned rows survive.
func (db *DBHandler) DeleteExamResultByID(w http.ResponseWriter, r *http.Request) {
	examID := r.PathValue("examID")

	tx := db.Begin()
	if tx.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "could not begin transaction")
		return
	}

	if err := tx.Where("exam_id = ?", examID).Delete(&models.ExamSubjectNet{}).Error; err != nil {
		tx.Rollback()
		db.respondError(w, http.StatusInternalServerError, "failed to delete subject nets")
		return
	}

	result := tx.Where("id = ?", examID).Delete(&models.ExamResult{})
	if result.Error != nil {
		tx.Rollback()
		db.respondError(w, http.StatusInternalServerError, "failed to delete exam result")
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		db.respondError(w, http.StatusNotFound, "exam result not found")
		return
	}

	if err := tx.Commit().Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "could not commit transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (db *DBHandler) DeleteAllExamResults(w http.ResponseWriter, r *http.Request) {
	tx := db.Begin()
	if tx.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "could not begin transaction")
		return
	}

	if err := tx.Where("1 = 1").Delete(&models.ExamSubjectNet{}).Error; err != nil {
		tx.Rollback()
		db.respondError(w, http.StatusInternalServerError, "failed to delete subject nets")
		return
	}
	if err := tx.Where("1 = 1").Delete(&models.ExamResult{}).Error; err != nil {
		tx.Rollback()
		db.respondError(w, http.StatusInternalServerError, "failed to delete exam results")
		return
	}

	if err := tx.Commit().Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "could not commit transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
