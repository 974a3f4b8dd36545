package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestWrongTopicListAcceptsBothShapes(t *testing.T) {
	payload := `["Problemler", {"topic": "Limit", "difficulty": "hard", "category": "Matematik"}]`

	var topics WrongTopicList
	require.NoError(t, json.Unmarshal([]byte(payload), &topics))

	require.Len(t, topics, 2)
	assert.Equal(t, WrongTopic{Topic: "Problemler"}, topics[0])
	assert.Equal(t, WrongTopic{Topic: "Limit", Difficulty: "hard", Category: "Matematik"}, topics[1])
}

func TestWrongTopicRejectsMalformedElement(t *testing.T) {
	var topics WrongTopicList
	assert.Error(t, json.Unmarshal([]byte(`[42]`), &topics))
}

func TestExamResultSubjects(t *testing.T) {
	result := ExamResult{SubjectsData: datatypes.JSON(`{
		"Türkçe": {"correct_count": 30, "wrong_count": 6, "blank_count": 4,
			"wrong_topics": ["Paragraf"]}
	}`)}

	subjects, err := result.Subjects()
	require.NoError(t, err)
	require.Contains(t, subjects, "Türkçe")
	assert.Equal(t, 30, subjects["Türkçe"].CorrectCount)
	assert.Equal(t, "Paragraf", subjects["Türkçe"].WrongTopics[0].Topic)
}

func TestExamResultSubjectsMalformed(t *testing.T) {
	result := ExamResult{SubjectsData: datatypes.JSON(`{broken`)}
	_, err := result.Subjects()
	assert.Error(t, err)
}

func TestExamResultSubjectsEmpty(t *testing.T) {
	var result ExamResult
	subjects, err := result.Subjects()
	require.NoError(t, err)
	assert.Nil(t, subjects)
}
