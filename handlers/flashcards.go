package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/examtrack-api/models"
	"github.com/examtrack/examtrack-api/scheduler"
)

type flashcardCreateRequest struct {
	ExamType   string `json:"examType" validate:"omitempty,oneof=TYT AYT"`
	Subject    string `json:"subject" validate:"required"`
	Topic      string `json:"topic"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func (db *DBHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req flashcardCreateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid flashcard payload: "+err.Error())
		return
	}

	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}

	card := models.Flashcard{
		ID:         uuid.NewString(),
		ExamType:   req.ExamType,
		Subject:    req.Subject,
		Topic:      req.Topic,
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		NextReview: time.Now(), // new cards are due immediately
	}

	if err := db.Create(&card).Error; err != nil {
		db.log.Errorw("failed to create flashcard", "error", err)
		db.respondError(w, http.StatusInternalServerError, "failed to create flashcard")
		return
	}
	db.respondJSON(w, http.StatusCreated, card)
}

func (db *DBHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	var cards []models.Flashcard
	if err := db.Order("created_at desc").Find(&cards).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch flashcards")
		return
	}
	db.respondJSON(w, http.StatusOK, cards)
}

func (db *DBHandler) GetFlashcardByID(w http.ResponseWriter, r *http.Request) {
	var card models.Flashcard
	if err := db.Where("id = ?", r.PathValue("flashcardID")).First(&card).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "flashcard not found")
		return
	}
	db.respondJSON(w, http.StatusOK, card)
}

type flashcardUpdateRequest struct {
	ExamType   *string `json:"examType,omitempty" validate:"omitempty,oneof=TYT AYT"`
	Subject    *string `json:"subject,omitempty"`
	Topic      *string `json:"topic,omitempty"`
	Question   *string `json:"question,omitempty"`
	Answer     *string `json:"answer,omitempty"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

func (db *DBHandler) UpdateFlashcardByID(w http.ResponseWriter, r *http.Request) {
	var card models.Flashcard
	if err := db.Where("id = ?", r.PathValue("flashcardID")).First(&card).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "flashcard not found")
		return
	}

	var req flashcardUpdateRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid flashcard payload: "+err.Error())
		return
	}

	if req.ExamType != nil {
		card.ExamType = *req.ExamType
	}
	if req.Subject != nil {
		card.Subject = *req.Subject
	}
	if req.Topic != nil {
		card.Topic = *req.Topic
	}
	if req.Question != nil {
		card.Question = *req.Question
	}
	if req.Answer != nil {
		card.Answer = *req.Answer
	}
	if req.Difficulty != nil {
		card.Difficulty = *req.Difficulty
	}

	if err := db.Save(&card).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to update flashcard")
		return
	}
	db.respondJSON(w, http.StatusOK, card)
}

func (db *DBHandler) DeleteFlashcardByID(w http.ResponseWriter, r *http.Request) {
	result := db.Where("id = ?", r.PathValue("flashcardID")).Delete(&models.Flashcard{})
	if result.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to delete flashcard")
		return
	}
	if result.RowsAffected == 0 {
		db.respondError(w, http.StatusNotFound, "flashcard not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDueFlashcards returns the review queue: never-reviewed cards first,
// then oldest-due.
func (db *DBHandler) GetDueFlashcards(w http.ResponseWriter, r *http.Request) {
	var cards []models.Flashcard
	if err := db.Find(&cards).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to fetch flashcards")
		return
	}
	db.respondJSON(w, http.StatusOK, scheduler.DueCards(cards, time.Now()))
}

type reviewRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// ReviewFlashcardByID records a review outcome and reschedules the card.
func (db *DBHandler) ReviewFlashcardByID(w http.ResponseWriter, r *http.Request) {
	var card models.Flashcard
	if err := db.Where("id = ?", r.PathValue("flashcardID")).First(&card).Error; err != nil {
		db.respondError(w, http.StatusNotFound, "flashcard not found")
		return
	}

	var req reviewRequest
	if err := db.decodeValid(r, &req); err != nil {
		db.respondError(w, http.StatusBadRequest, "invalid review payload: "+err.Error())
		return
	}

	scheduler.Apply(&card, req.Difficulty, time.Now())

	if err := db.Save(&card).Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "failed to save review")
		return
	}
	db.respondJSON(w, http.StatusOK, card)
}

// sampleFlashcards is the starter deck loaded by the seed endpoint.
var sampleFlashcards = []models.Flashcard{
	{ExamType: "TYT", Subject: "Matematik", Topic: "Problemler", Difficulty: "medium",
		Question: "Bir işçi bir işi 12 günde, diğeri 24 günde bitiriyor. Birlikte kaç günde bitirirler?",
		Answer:   "8 gün"},
	{ExamType: "TYT", Subject: "Matematik", Topic: "Üslü Sayılar", Difficulty: "easy",
		Question: "2^10 kaçtır?",
		Answer:   "1024"},
	{ExamType: "TYT", Subject: "Türkçe", Topic: "Paragraf", Difficulty: "medium",
		Question: "Paragrafın ana düşüncesi hangi soruyla bulunur?",
		Answer:   "Yazarın asıl anlatmak istediği nedir?"},
	{ExamType: "TYT", Subject: "Fen Bilimleri", Topic: "Fizik - Hareket", Difficulty: "hard",
		Question: "Sabit ivmeli harekette alınan yol formülü nedir?",
		Answer:   "x = v₀t + (1/2)at²"},
	{ExamType: "TYT", Subject: "Sosyal Bilimler", Topic: "Tarih", Difficulty: "easy",
		Question: "İstanbul hangi yıl fethedildi?",
		Answer:   "1453"},
	{ExamType: "AYT", Subject: "Matematik", Topic: "Limit", Difficulty: "hard",
		Question: "lim(x→0) sin(x)/x limitinin değeri nedir?",
		Answer:   "1"},
	{ExamType: "AYT", Subject: "Matematik", Topic: "Türev", Difficulty: "medium",
		Question: "f(x) = x³ fonksiyonunun türevi nedir?",
		Answer:   "f'(x) = 3x²"},
	{ExamType: "AYT", Subject: "Fizik", Topic: "Elektrik", Difficulty: "medium",
		Question: "Ohm kanunu nedir?",
		Answer:   "V = I × R"},
	{ExamType: "AYT", Subject: "Kimya", Topic: "Mol Kavramı", Difficulty: "easy",
		Question: "Avogadro sayısı kaçtır?",
		Answer:   "6.022 × 10²³"},
	{ExamType: "AYT", Subject: "Biyoloji", Topic: "Hücre", Difficulty: "easy",
		Question: "Hücrenin enerji üretim merkezi hangi organeldir?",
		Answer:   "Mitokondri"},
}

// SeedFlashcards bulk-inserts the sample deck with fresh IDs, all due
// immediately.
func (db *DBHandler) SeedFlashcards(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	tx := db.Begin()
	if tx.Error != nil {
		db.respondError(w, http.StatusInternalServerError, "could not begin transaction")
		return
	}

	created := make([]models.Flashcard, 0, len(sampleFlashcards))
	for _, sample := range sampleFlashcards {
		card := sample
		card.ID = uuid.NewString()
		card.NextReview = now
		if err := tx.Create(&card).Error; err != nil {
			tx.Rollback()
			db.respondError(w, http.StatusInternalServerError, "failed to seed flashcards")
			return
		}
		created = append(created, card)
	}

	if err := tx.Commit().Error; err != nil {
		db.respondError(w, http.StatusInternalServerError, "could not commit transaction")
		return
	}
	db.respondJSON(w, http.StatusCreated, created)
}
