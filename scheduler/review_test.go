package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examtrack/examtrack-api/models"
)

func TestNextInterval(t *testing.T) {
	tests := []struct {
		name        string
		difficulty  string
		reviewCount int
		want        int
	}{
		{"easy grows by three", models.DifficultyEasy, 1, 3},
		{"easy third review", models.DifficultyEasy, 3, 9},
		{"medium grows by two", models.DifficultyMedium, 1, 2},
		{"medium fourth review", models.DifficultyMedium, 4, 8},
		{"hard is always tomorrow", models.DifficultyHard, 7, 1},
		{"never below one day", models.DifficultyEasy, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextInterval(tt.difficulty, tt.reviewCount))
		})
	}
}

func TestApplyHard(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	card := models.Flashcard{Difficulty: models.DifficultyEasy, ReviewCount: 5}

	Apply(&card, models.DifficultyHard, now)

	assert.Equal(t, 6, card.ReviewCount)
	assert.Equal(t, models.DifficultyHard, card.Difficulty)
	require.NotNil(t, card.LastReviewed)
	assert.Equal(t, now, *card.LastReviewed)
	// hard always schedules exactly one day out, whatever the count
	assert.Equal(t, now.AddDate(0, 0, 1), card.NextReview)
}

func TestApplyEasyThirdReview(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	card := models.Flashcard{Difficulty: models.DifficultyMedium, ReviewCount: 2}

	Apply(&card, models.DifficultyEasy, now)

	assert.Equal(t, 3, card.ReviewCount)
	assert.Equal(t, now.AddDate(0, 0, 9), card.NextReview)
}

func TestDueCardsFreshCardIsDue(t *testing.T) {
	now := time.Now()
	cards := []models.Flashcard{
		{ID: "fresh", NextReview: now},
	}

	due := DueCards(cards, now)

	require.Len(t, due, 1)
	assert.Equal(t, "fresh", due[0].ID)
}

func TestDueCardsOrdering(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reviewed := now.AddDate(0, 0, -10)

	cards := []models.Flashcard{
		{ID: "overdue-recent", LastReviewed: &reviewed, NextReview: now.AddDate(0, 0, -1)},
		{ID: "future", LastReviewed: &reviewed, NextReview: now.AddDate(0, 0, 3)},
		{ID: "never-reviewed", NextReview: now.AddDate(0, 0, -2)},
		{ID: "overdue-old", LastReviewed: &reviewed, NextReview: now.AddDate(0, 0, -5)},
	}

	due := DueCards(cards, now)

	require.Len(t, due, 3)
	assert.Equal(t, "never-reviewed", due[0].ID)
	assert.Equal(t, "overdue-old", due[1].ID)
	assert.Equal(t, "overdue-recent", due[2].ID)
}

func TestDueCardsZeroNextReview(t *testing.T) {
	due := DueCards([]models.Flashcard{{ID: "unscheduled"}}, time.Now())
	require.Len(t, due, 1)
}
