package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/examtrack/examtrack-api/models"
)

type goalCreateRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	TargetValue  float64 `json:"targetValue" validate:"gt=0"`
	CurrentValue float64 `json:"currentValue" validate:"gte=0"`
	Unit         string  `json:"unit"`
	Timeframe    string  `json:"timeframe"`
	TargetDate   string  `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

func (db *DBHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid goal payload: "+err.Error())
		return
	}

	goal := models.Goal{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Timeframe:    req.Timeframe,
		TargetDate:   req.TargetDate,
	}

	if err := db.Create(&goal).Error; err != nil {
		db.log.Errorw("failed to create goal", "error", err)
		db.respondError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}
	db.respondJSON(w, http.StatusCreated, goal)
}

func (db *DBHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	var goals []models.Goal
	if err := db.Order("created_at desc").Find(&goals).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch goals")
		return
	}
	db.respondJSON(w, http.StatusOK, goals)
}

func (db *DBHandler) GetGoalByID(w http.ResponseWriter, r *http.Request) {
	var goal models.Goal
	if err := db.Where("id = ?", r.PathValue("goalID")).First(&goal).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	db.respondJSON(w, http.StatusOK, goal)
}

type goalUpdateRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	TargetValue  *float64 `json:"targetValue,omitempty" validate:"omitempty,gt=0"`
	CurrentValue *float64 `json:"currentValue,omitempty" validate:"omitempty,gte=0"`
	Unit         *string  `json:"unit,omitempty"`
	Timeframe    *string  `json:"timeframe,omitempty"`
	TargetDate   *string  `json:"targetDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed    *bool    `json:"completed,omitempty"`
}

func (db *DBHandler) UpdateGoalByID(w http.ResponseWriter, r *http.Request) {
	var goal models.Goal
	if err := db.Where("id = ?", r.PathValue("goalID")).First(&goal).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "goal not found")
		return
	}

	var req goalUpdateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid goal payload: "+err.Error())
		return
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
	}
	if req.Unit != nil {
		goal.Unit = *req.Unit
	}
	if req.Timeframe != nil {
		goal.Timeframe = *req.Timeframe
	}
	if req.TargetDate != nil {
		goal.TargetDate = *req.TargetDate
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}

	if err := db.Save(&goal).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}
	db.respondJSON(w, http.StatusOK, goal)
}

func (db *DBHandler) DeleteGoalByID(w http.ResponseWriter, r *http.Request) {
	result := db.Where("id = ?", r.PathValue("goalID")).Delete(&models.Goal{})
	if result.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}
	if result.RowsAffected == 0 {
		db.respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
