package analysis

import (
	"time"

	"github.com/examtrack/examtrack-api/models"
)

// DayFormat is the calendar-day string used for due dates and study
// dates throughout the API.
const DayFormat = "2006-01-02"

// DailySummary is one day's task activity.
type DailySummary struct {
	Date           string `json:"date"`
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
	Productivity   int    `json:"productivity"`
}

// TasksOnDate filters tasks shown for a calendar day: tasks due that
// day, plus — only when the day is today — undated tasks created today.
// Undated tasks never appear on any other day.
func TasksOnDate(tasks []models.Task, date string, now time.Time) []models.Task {
	today := now.Format(DayFormat)
	matched := make([]models.Task, 0)
	for _, task := range tasks {
		if task.DueDate != "" {
			if task.DueDate == date {
				matched = append(matched, task)
			}
			continue
		}
		if date == today && task.CreatedAt.Format(DayFormat) == date {
			matched = append(matched, task)
		}
	}
	return matched
}

// DailyTaskSummary reports, for each of the last rangeDays calendar days
// including today (oldest first), how many tasks were completed that
// day, how many existed by the end of it, and a productivity percentage
// of min(completed × 20, 100).
func DailyTaskSummary(tasks []models.Task, rangeDays int, now time.Time) []DailySummary {
	if rangeDays < 1 {
		rangeDays = 1
	}

	summaries := make([]DailySummary, 0, rangeDays)
	for offset := rangeDays - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		date := day.Format(DayFormat)
		endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999999, day.Location())

		var completed, existing int
		for _, task := range tasks {
			if task.CompletedAt != nil && task.CompletedAt.Format(DayFormat) == date {
				completed++
			}
			if !task.CreatedAt.After(endOfDay) {
				existing++
			}
		}

		productivity := completed * 20
		if productivity > 100 {
			productivity = 100
		}

		summaries = append(summaries, DailySummary{
			Date:           date,
			CompletedTasks: completed,
			TotalTasks:     existing,
			Productivity:   productivity,
		})
	}
	return summaries
}
