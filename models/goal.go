package models

import (
	"time"
)

// Goal represents a measurable study goal (e.g. 500 questions this month)
type Goal struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Title        string    `json:"title" gorm:"not null;size:200"`
	Description  string    `json:"description,omitempty" gorm:"size:1000"`
	Category     string    `json:"category" gorm:"size:50"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Unit         string    `json:"unit" gorm:"size:30"`
	Timeframe    string    `json:"timeframe" gorm:"size:20"`
	TargetDate   string    `json:"targetDate,omitempty" gorm:"size:10"`
	Completed    bool      `json:"completed" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
