// Package scheduler implements the flashcard review schedule: picking
// which cards are due and advancing a card after it has been reviewed.
//
// The policy is deliberately simple: intervals grow linearly with the
// review count instead of by an ease factor, and the card's difficulty
// label is overwritten with the outcome of the latest review.
package scheduler

import (
	"sort"
	"time"

	"github.com/examtrack/examtrack-api/models"
)

// NextInterval returns the number of days until the next review for a
// card reviewed with the given outcome.
//
//	easy   → max(1, reviewCount × 3)
//	medium → max(1, reviewCount × 2)
//	hard   → always 1 (seen again tomorrow)
func NextInterval(difficulty string, reviewCount int) int {
	var days int
	switch difficulty {
	case models.DifficultyEasy:
		days = reviewCount * 3
	case models.DifficultyHard:
		return 1
	default:
		days = reviewCount * 2
	}
	if days < 1 {
		return 1
	}
	return days
}

// Apply records one review of the card: increments the counter, stamps
// LastReviewed, stores the review outcome as the card's difficulty and
// schedules the next review.
func Apply(card *models.Flashcard, difficulty string, now time.Time) {
	card.ReviewCount++
	card.LastReviewed = &now
	card.Difficulty = difficulty
	card.NextReview = now.AddDate(0, 0, NextInterval(difficulty, card.ReviewCount))
}

// DueCards returns the cards whose NextReview is unset or has passed,
// never-reviewed cards first, then oldest-due first. Unseen material
// surfaces before overdue repeats.
func DueCards(cards []models.Flashcard, now time.Time) []models.Flashcard {
	due := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		if card.NextReview.IsZero() || !card.NextReview.After(now) {
			due = append(due, card)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		iNew := due[i].LastReviewed == nil
		jNew := due[j].LastReviewed == nil
		if iNew != jNew {
			return iNew
		}
		return due[i].NextReview.Before(due[j].NextReview)
	})
	return due
}
