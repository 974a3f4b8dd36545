package models

import (
	"time"
)

// Mood is a daily mood check-in
type Mood struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Mood      string    `json:"mood" gorm:"not null;size:50"`
	MoodBg    string    `json:"moodBg,omitempty" gorm:"size:20"`
	Note      string    `json:"note,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
