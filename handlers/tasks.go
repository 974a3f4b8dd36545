package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/examtrack-api/analysis"
	"github.com/examtrack/examtrack-api/models"
)

type taskCreateRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	Priority          string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category          string `json:"category"`
	Color             string `json:"color"`
	DueDate           string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	RecurrenceType    string `json:"recurrenceType"`
	RecurrenceEndDate string `json:"recurrenceEndDate" validate:"omitempty,datetime=2006-01-02"`
}

func (db *DBHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid task payload: "+err.Error())
		return
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if req.RecurrenceType == "" {
		req.RecurrenceType = "none"
	}

	task := models.Task{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		Category:          req.Category,
		Color:             req.Color,
		DueDate:           req.DueDate,
		RecurrenceType:    req.RecurrenceType,
		RecurrenceEndDate: req.RecurrenceEndDate,
	}

	if err := db.Create(&task).Error; err != nil {
		db.log.Errorw("failed to create task", "error", err)
		db.respondError(w, http.StatusInternalServerError, "failed to create task")
		return
	}
	db.respondJSON(w, http.StatusCreated, task)
}

func (db *DBHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []models.Task
	if err := db.Order("created_at desc").Find(&tasks).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}
	db.respondJSON(w, http.StatusOK, tasks)
}

func (db *DBHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := db.Where("id = ?", r.PathValue("taskID")).First(&task).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "task not found")
		return
	}
	db.respondJSON(w, http.StatusOK, task)
}

type taskUpdateRequest struct {
	Title             *string `json:"title,omitempty"`
	Description       *string `json:"description,omitempty"`
	Priority          *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Category          *string `json:"category,omitempty"`
	Color             *string `json:"color,omitempty"`
	DueDate           *string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RecurrenceType    *string `json:"recurrenceType,omitempty"`
	RecurrenceEndDate *string `json:"recurrenceEndDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (db *DBHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := db.Where("id = ?", r.PathValue("taskID")).First(&task).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "task not found")
		return
	}

	var req taskUpdateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid task payload: "+err.Error())
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.RecurrenceType != nil {
		task.RecurrenceType = *req.RecurrenceType
	}
	if req.RecurrenceEndDate != nil {
		task.RecurrenceEndDate = *req.RecurrenceEndDate
	}

	if err := db.Save(&task).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to update task")
		return
	}
	db.respondJSON(w, http.StatusOK, task)
}

func (db *DBHandler) ToggleTaskByID(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := db.Where("id = ?", r.PathValue("taskID")).First(&task).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "task not found")
		return
	}

	task.Completed = !task.Completed
	if task.Completed {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	// Save skips nil pointer fields, so clear completed_at explicitly
	updates := map[string]any{
		"completed":    task.Completed,
		"completed_at": task.CompletedAt,
	}
	if err := db.Model(&task).Updates(updates).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to toggle task")
		return
	}
	db.respondJSON(w, http.StatusOK, task)
}

func (db *DBHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	result := db.Where("id = ?", r.PathValue("taskID")).Delete(&models.Task{})
	if result.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}
	if result.RowsAffected == 0 {
		db.respondError(w, http.StatusNotFound, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (db *DBHandler) GetTasksByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		db.respondError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}
	if _, err := time.Parse(analysis.DayFormat, date); err != nil {
		db.respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var tasks []models.Task
	if err := db.Find(&tasks).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}
	db.respondJSON(w, http.StatusOK, analysis.TasksOnDate(tasks, date, time.Now()))
}

func (db *DBHandler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			db.respondError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	var tasks []models.Task
	if err := db.Find(&tasks).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}
	db.respondJSON(w, http.StatusOK, analysis.DailyTaskSummary(tasks, days, time.Now()))
}
