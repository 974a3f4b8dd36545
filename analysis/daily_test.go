package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examtrack/examtrack-api/models"
)

func TestTasksOnDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	today := "2026-03-14"

	tasks := []models.Task{
		{ID: "due-today", DueDate: today},
		{ID: "due-tomorrow", DueDate: "2026-03-15"},
		{ID: "undated-today", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "undated-yesterday", CreatedAt: now.AddDate(0, 0, -1)},
	}

	got := TasksOnDate(tasks, today, now)
	require.Len(t, got, 2)
	assert.Equal(t, "due-today", got[0].ID)
	assert.Equal(t, "undated-today", got[1].ID)

	// undated tasks never show up on non-today dates
	got = TasksOnDate(tasks, "2026-03-15", now)
	require.Len(t, got, 1)
	assert.Equal(t, "due-tomorrow", got[0].ID)
}

func TestDailyTaskSummaryShape(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	summaries := DailyTaskSummary(nil, 7, now)

	require.Len(t, summaries, 7)
	assert.Equal(t, "2026-03-08", summaries[0].Date)
	assert.Equal(t, "2026-03-14", summaries[6].Date)
}

func TestDailyTaskSummaryProductivity(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -3)

	tasks := make([]models.Task, 0, 7)
	for i := 0; i < 7; i++ {
		done := now.Add(-time.Duration(i) * time.Minute)
		tasks = append(tasks, models.Task{
			CreatedAt:   created,
			Completed:   true,
			CompletedAt: &done,
		})
	}

	summaries := DailyTaskSummary(tasks, 2, now)

	require.Len(t, summaries, 2)
	yesterday, today := summaries[0], summaries[1]

	assert.Equal(t, 0, yesterday.CompletedTasks)
	assert.Equal(t, 0, yesterday.Productivity)
	assert.Equal(t, 7, yesterday.TotalTasks, "tasks existed before yesterday ended")

	assert.Equal(t, 7, today.CompletedTasks)
	assert.Equal(t, 100, today.Productivity, "productivity caps at 100")
}

func TestDailyTaskSummaryCountsCreationCutoff(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{CreatedAt: now},                    // exists only today
		{CreatedAt: now.AddDate(0, 0, -5)},  // existed all week
		{CreatedAt: now.AddDate(0, 0, 1)},   // not created yet
	}

	summaries := DailyTaskSummary(tasks, 3, now)

	require.Len(t, summaries, 3)
	assert.Equal(t, 1, summaries[0].TotalTasks)
	assert.Equal(t, 1, summaries[1].TotalTasks)
	assert.Equal(t, 2, summaries[2].TotalTasks)
}
