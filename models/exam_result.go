package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// SubjectScore holds per-subject raw counts inside an exam result's
// subjects_data blob
type SubjectScore struct {
	CorrectCount int            `json:"correct_count"`
	WrongCount   int            `json:"wrong_count"`
	BlankCount   int            `json:"blank_count"`
	WrongTopics  WrongTopicList `json:"wrong_topics,omitempty"`
}

// ExamResult records one mock (deneme) exam
type ExamResult struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	ExamName     string         `json:"exam_name" gorm:"not null;size:200"`
	ExamDate     string         `json:"exam_date" gorm:"size:10;index"`
	ExamType     string         `json:"exam_type" gorm:"size:10"`
	TYTNet       float64        `json:"tyt_net"`
	AYTNet       float64        `json:"ayt_net"`
	SubjectsData datatypes.JSON `json:"subjects_data,omitempty"`
	Ranking      string         `json:"ranking,omitempty" gorm:"size:50"`
	Notes        string         `json:"notes,omitempty" gorm:"size:1000"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`

	SubjectNets []ExamSubjectNet `json:"subject_nets,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
}

// Subjects decodes the subjects_data blob. Callers doing best-effort
// aggregation skip results whose blob fails to decode.
func (e *ExamResult) Subjects() (map[string]SubjectScore, error) {
	if len(e.SubjectsData) == 0 {
		return nil, nil
	}
	var subjects map[string]SubjectScore
	if err := json.Unmarshal(e.SubjectsData, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// ExamSubjectNet is a per-subject score row belonging to an ExamResult.
// Rows must always reference an existing exam; deleting the exam deletes
// its rows.
type ExamSubjectNet struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	ExamID       string    `json:"exam_id" gorm:"not null;size:36;index"`
	Subject      string    `json:"subject" gorm:"not null;size:50"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	BlankCount   int       `json:"blank_count"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
