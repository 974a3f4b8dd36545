package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/examtrack/examtrack-api/models"
)

func logWithTopics(id string, topics ...string) models.QuestionLog {
	wrong := make(models.WrongTopicList, 0, len(topics))
	for _, topic := range topics {
		wrong = append(wrong, models.WrongTopic{Topic: topic})
	}
	return models.QuestionLog{ID: id, Subject: "Matematik", WrongTopics: wrong}
}

func TestTopicStatsMentionFloor(t *testing.T) {
	logs := []models.QuestionLog{
		logWithTopics("log-1", "Problemler", "Üslü Sayılar"),
		logWithTopics("log-2", "Problemler"),
	}

	stats := TopicStats(logs, nil)

	// one mention is noise, two make the cut
	require.Len(t, stats, 1)
	assert.Equal(t, "Problemler", stats[0].Topic)
	assert.Equal(t, 2, stats[0].WrongMentions)
	assert.Equal(t, 2, stats[0].SessionCount)
	assert.InDelta(t, 100.0, stats[0].Frequency, 0.001)
}

func TestTopicStatsExamMentionsCountDouble(t *testing.T) {
	exam := models.ExamResult{
		ID: "exam-1",
		SubjectsData: datatypes.JSON(`{
			"Matematik": {"correct_count": 30, "wrong_count": 8, "blank_count": 2,
				"wrong_topics": ["Problemler"]}
		}`),
	}

	stats := TopicStats([]models.QuestionLog{logWithTopics("log-1")}, []models.ExamResult{exam})

	require.Len(t, stats, 1)
	assert.Equal(t, "Problemler", stats[0].Topic)
	assert.Equal(t, 2, stats[0].WrongMentions)
	assert.Equal(t, 1, stats[0].SessionCount)
}

func TestTopicStatsMalformedSubjectsDataSkipped(t *testing.T) {
	logs := []models.QuestionLog{
		logWithTopics("log-1", "Limit"),
		logWithTopics("log-2", "Limit"),
	}
	exams := []models.ExamResult{
		{ID: "exam-bad", SubjectsData: datatypes.JSON(`{not json`)},
	}

	stats := TopicStats(logs, exams)

	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].WrongMentions)
}

func TestTopicStatsSortedByMentions(t *testing.T) {
	logs := []models.QuestionLog{
		logWithTopics("log-1", "Limit", "Türev"),
		logWithTopics("log-2", "Limit", "Türev"),
		logWithTopics("log-3", "Türev"),
	}

	stats := TopicStats(logs, nil)

	require.Len(t, stats, 2)
	assert.Equal(t, "Türev", stats[0].Topic)
	assert.Equal(t, "Limit", stats[1].Topic)
}

func TestClassifyPriorityTiers(t *testing.T) {
	tests := []struct {
		name      string
		mentions  int
		frequency float64
		priority  string
		color     string
	}{
		{"ten mentions is critical regardless of frequency", 10, 1, PriorityCritical, "#DC2626"},
		{"half of sessions is critical", 2, 50, PriorityCritical, "#DC2626"},
		{"six mentions is high", 6, 1, PriorityHigh, "#EA580C"},
		{"thirty percent is high", 2, 30, PriorityHigh, "#EA580C"},
		{"three mentions is medium", 3, 1, PriorityMedium, "#D97706"},
		{"everything else is low", 2, 10, PriorityLow, "#16A34A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, color := ClassifyPriority(tt.mentions, tt.frequency)
			assert.Equal(t, tt.priority, priority)
			assert.Equal(t, tt.color, color)
		})
	}
}

func TestPriorityTopicsKeepsOnlyUrgentTiers(t *testing.T) {
	logs := []models.QuestionLog{}
	for i := 0; i < 12; i++ {
		logs = append(logs, logWithTopics(string(rune('a'+i)), "Problemler"))
	}
	logs = append(logs,
		logWithTopics("log-x", "Limit"),
		logWithTopics("log-y", "Limit"),
	)

	priority := PriorityTopics(logs, nil)

	require.Len(t, priority, 1)
	assert.Equal(t, "Problemler", priority[0].Topic)
	assert.Equal(t, PriorityCritical, priority[0].Priority)
}
