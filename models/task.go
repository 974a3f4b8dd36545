package models

import (
	"time"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single study task on the planner
type Task struct {
	ID                string     `json:"id" gorm:"primaryKey;size:36"`
	Title             string     `json:"title" gorm:"not null;size:200"`
	Description       string     `json:"description,omitempty" gorm:"size:1000"`
	Priority          string     `json:"priority" gorm:"not null;size:10"`
	Category          string     `json:"category" gorm:"size:50"`
	Color             string     `json:"color" gorm:"size:20"`
	Completed         bool       `json:"completed" gorm:"default:false"`
	CompletedAt       *time.Time `json:"completedAt,omitempty" gorm:"default:null"`
	DueDate           string     `json:"dueDate,omitempty" gorm:"size:10;index"`
	RecurrenceType    string     `json:"recurrenceType" gorm:"size:20"`
	RecurrenceEndDate string     `json:"recurrenceEndDate,omitempty" gorm:"size:10"`
	CreatedAt         time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}
