package models

import (
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Flashcard represents an individual flashcard. NextReview defaults to
// the creation time, so a new card is due immediately.
type Flashcard struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	ExamType     string     `json:"examType" gorm:"size:10"`
	Subject      string     `json:"subject" gorm:"size:50;index"`
	Topic        string     `json:"topic,omitempty" gorm:"size:100"`
	Question     string     `json:"question" gorm:"not null;size:1000"`
	Answer       string     `json:"answer" gorm:"not null;size:1000"`
	Difficulty   string     `json:"difficulty" gorm:"size:10"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty" gorm:"default:null"`
	NextReview   time.Time  `json:"nextReview" gorm:"index"`
	ReviewCount  int        `json:"reviewCount" gorm:"default:0"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}
