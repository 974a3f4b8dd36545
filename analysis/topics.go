// Package analysis holds the read-side aggregations: wrong-topic
// priority analysis, net-score calculation and task summaries. All
// functions are pure scans over the fetched collections; nothing here
// touches the database.
package analysis

import (
	"sort"

	"github.com/examtrack/examtrack-api/models"
)

// Mentions from exam results count double: an exam mistake is a
// stronger signal of a persistent gap than one practice miss.
const examMentionWeight = 2

// Topics with fewer total mentions than this are noise and dropped.
const minMentions = 2

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// TopicStat is one wrong-topic aggregate across question logs and exam
// results.
type TopicStat struct {
	Topic         string  `json:"topic"`
	WrongMentions int     `json:"wrongMentions"`
	SessionCount  int     `json:"sessionCount"`
	Frequency     float64 `json:"frequency"`
	Priority      string  `json:"priority"`
	Color         string  `json:"color"`
}

// ClassifyPriority maps raw mention count and session frequency (percent)
// to a tier and its display color. Either threshold triggers the tier;
// first match wins.
func ClassifyPriority(mentions int, frequency float64) (priority, color string) {
	switch {
	case mentions >= 10 || frequency >= 50:
		return PriorityCritical, "#DC2626"
	case mentions >= 6 || frequency >= 30:
		return PriorityHigh, "#EA580C"
	case mentions >= 3 || frequency >= 15:
		return PriorityMedium, "#D97706"
	default:
		return PriorityLow, "#16A34A"
	}
}

// TopicStats aggregates wrong-topic mentions across all question logs
// and exam results. Each wrong topic on a log counts one mention with
// the log as its session; each wrong topic inside an exam's
// subjects_data counts double with "exam_<id>" as its session. Exams
// whose subjects_data fails to decode are skipped. Frequency is the
// share of distinct sessions over the total question-log count.
// Topics below the mention floor are dropped; the rest come back sorted
// by mention count, highest first.
func TopicStats(logs []models.QuestionLog, exams []models.ExamResult) []TopicStat {
	mentions := make(map[string]int)
	sessions := make(map[string]map[string]struct{})

	record := func(topic, sessionID string, weight int) {
		if topic == "" {
			return
		}
		mentions[topic] += weight
		if sessions[topic] == nil {
			sessions[topic] = make(map[string]struct{})
		}
		sessions[topic][sessionID] = struct{}{}
	}

	for _, log := range logs {
		for _, wt := range log.WrongTopics {
			record(wt.Topic, log.ID, 1)
		}
	}

	for _, exam := range exams {
		subjects, err := exam.Subjects()
		if err != nil {
			continue
		}
		for _, score := range subjects {
			for _, wt := range score.WrongTopics {
				record(wt.Topic, "exam_"+exam.ID, examMentionWeight)
			}
		}
	}

	totalLogs := len(logs)
	stats := make([]TopicStat, 0, len(mentions))
	for topic, count := range mentions {
		if count < minMentions {
			continue
		}
		var frequency float64
		if totalLogs > 0 {
			frequency = float64(len(sessions[topic])) / float64(totalLogs) * 100
		}
		priority, color := ClassifyPriority(count, frequency)
		stats = append(stats, TopicStat{
			Topic:         topic,
			WrongMentions: count,
			SessionCount:  len(sessions[topic]),
			Frequency:     frequency,
			Priority:      priority,
			Color:         color,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].WrongMentions != stats[j].WrongMentions {
			return stats[i].WrongMentions > stats[j].WrongMentions
		}
		return stats[i].Topic < stats[j].Topic
	})
	return stats
}

// PriorityTopics returns only the critical and high tiers of TopicStats,
// the "work on these next" list.
func PriorityTopics(logs []models.QuestionLog, exams []models.ExamResult) []TopicStat {
	all := TopicStats(logs, exams)
	priority := make([]TopicStat, 0, len(all))
	for _, stat := range all {
		if stat.Priority == PriorityCritical || stat.Priority == PriorityHigh {
			priority = append(priority, stat)
		}
	}
	return priority
}
