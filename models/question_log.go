package models

import (
	"encoding/json"
	"time"
)

const (
	ExamTypeTYT = "TYT"
	ExamTypeAYT = "AYT"
)

// WrongTopic is one wrong-answer tag on a practice session. The UI sends
// either a bare string ("Problemler") or a structured object, so the
// unmarshaler accepts both shapes.
type WrongTopic struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty,omitempty"`
	Category   string `json:"category,omitempty"`
}

func (w *WrongTopic) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var topic string
		if err := json.Unmarshal(data, &topic); err != nil {
			return err
		}
		w.Topic = topic
		return nil
	}

	type plain WrongTopic
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = WrongTopic(p)
	return nil
}

// WrongTopicList is stored as a JSON column via the gorm serializer.
type WrongTopicList []WrongTopic

// QuestionLog records one ad-hoc question-solving session
type QuestionLog struct {
	ID               string         `json:"id" gorm:"primaryKey;size:36"`
	ExamType         string         `json:"exam_type" gorm:"not null;size:10;index"`
	Subject          string         `json:"subject" gorm:"not null;size:50;index"`
	CorrectCount     int            `json:"correct_count"`
	WrongCount       int            `json:"wrong_count"`
	BlankCount       int            `json:"blank_count"`
	StudyDate        string         `json:"study_date" gorm:"size:10;index"`
	WrongTopics      WrongTopicList `json:"wrong_topics" gorm:"serializer:json"`
	TimeSpentMinutes int            `json:"time_spent_minutes,omitempty"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
}
