package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/examtrack/examtrack-api/models"
)

// newTestHandler opens a private in-memory database per test. The named
// shared-cache DSN keeps every pooled connection on the same database.
func newTestHandler(t *testing.T) *DBHandler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Task{},
		&models.Mood{},
		&models.Goal{},
		&models.QuestionLog{},
		&models.ExamResult{},
		&models.ExamSubjectNet{},
		&models.Flashcard{},
	))

	return NewDBHandler(db, zap.NewNop().Sugar())
}

func newTestMux(db *DBHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tasks", db.CreateTask)
	mux.HandleFunc("PUT /api/tasks/{taskID}/toggle", db.ToggleTaskByID)
	mux.HandleFunc("DELETE /api/question-logs", db.DeleteAllQuestionLogs)
	mux.HandleFunc("DELETE /api/exam-results/{examID}", db.DeleteExamResultByID)
	mux.HandleFunc("POST /api/exam-results/{examID}/subject-nets", db.CreateSubjectNet)
	mux.HandleFunc("GET /api/exam-results/{examID}/subject-nets", db.GetSubjectNetsByExamID)
	mux.HandleFunc("POST /api/flashcards/{flashcardID}/review", db.ReviewFlashcardByID)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestDeleteExamResultCascades(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	exam := models.ExamResult{ID: uuid.NewString(), ExamName: "Deneme 3", ExamType: "TYT"}
	require.NoError(t, db.Create(&exam).Error)
	for _, subject := range []string{"Türkçe", "Temel Matematik"} {
		net := models.ExamSubjectNet{ID: uuid.NewString(), ExamID: exam.ID, Subject: subject}
		require.NoError(t, db.Create(&net).Error)
	}

	rec := doJSON(t, mux, http.MethodDelete, "/api/exam-results/"+exam.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.ExamSubjectNet{}).Where("exam_id = ?", exam.ID).Count(&count).Error)
	assert.Zero(t, count, "cascade must remove every subject net")

	rec = doJSON(t, mux, http.MethodGet, "/api/exam-results/"+exam.ID+"/subject-nets", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestDeleteExamResultNotFound(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	rec := doJSON(t, mux, http.MethodDelete, "/api/exam-results/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSubjectNetRequiresExistingExam(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	body := `{"subject": "Fizik", "correct_count": 10, "wrong_count": 2, "blank_count": 1}`
	rec := doJSON(t, mux, http.MethodPost, "/api/exam-results/"+uuid.NewString()+"/subject-nets", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.ExamSubjectNet{}).Count(&count).Error)
	assert.Zero(t, count, "rejected row must not be stored")
}

func TestCreateSubjectNet(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	exam := models.ExamResult{ID: uuid.NewString(), ExamName: "Deneme 4"}
	require.NoError(t, db.Create(&exam).Error)

	body := `{"subject": "Fizik", "correct_count": 10, "wrong_count": 2}`
	rec := doJSON(t, mux, http.MethodPost, "/api/exam-results/"+exam.ID+"/subject-nets", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var net models.ExamSubjectNet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &net))
	assert.Equal(t, exam.ID, net.ExamID)
	assert.Equal(t, "Fizik", net.Subject)
	assert.NotEmpty(t, net.ID)
}

func TestReviewFlashcardHard(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	card := models.Flashcard{
		ID:         uuid.NewString(),
		Subject:    "Matematik",
		Question:   "soru",
		Answer:     "cevap",
		Difficulty: models.DifficultyEasy,
		NextReview: time.Now(),
	}
	require.NoError(t, db.Create(&card).Error)

	before := time.Now()
	rec := doJSON(t, mux, http.MethodPost, "/api/flashcards/"+card.ID+"/review", `{"difficulty": "hard"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var reviewed models.Flashcard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviewed))
	assert.Equal(t, 1, reviewed.ReviewCount)
	assert.Equal(t, models.DifficultyHard, reviewed.Difficulty)
	require.NotNil(t, reviewed.LastReviewed)

	// hard reschedules exactly one day after the review time
	wantLow := before.AddDate(0, 0, 1)
	wantHigh := time.Now().AddDate(0, 0, 1)
	assert.False(t, reviewed.NextReview.Before(wantLow))
	assert.False(t, reviewed.NextReview.After(wantHigh))
}

func TestReviewFlashcardNotFound(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	rec := doJSON(t, mux, http.MethodPost, "/api/flashcards/"+uuid.NewString()+"/review", `{"difficulty": "easy"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	rec := doJSON(t, mux, http.MethodPost, "/api/tasks", `{"title": "Paragraf çöz"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, "none", task.RecurrenceType)
	assert.NotEmpty(t, task.ID)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	rec := doJSON(t, mux, http.MethodPost, "/api/tasks", `{"priority": "high"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleTask(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	task := models.Task{ID: uuid.NewString(), Title: "Tekrar", Priority: models.PriorityMedium}
	require.NoError(t, db.Create(&task).Error)

	rec := doJSON(t, mux, http.MethodPut, "/api/tasks/"+task.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Completed)
	assert.NotNil(t, toggled.CompletedAt)

	rec = doJSON(t, mux, http.MethodPut, "/api/tasks/"+task.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Completed)
	assert.Nil(t, toggled.CompletedAt)
}

func TestDeleteAllQuestionLogs(t *testing.T) {
	db := newTestHandler(t)
	mux := newTestMux(db)

	for i := 0; i < 3; i++ {
		log := models.QuestionLog{ID: uuid.NewString(), ExamType: "TYT", Subject: "Matematik"}
		require.NoError(t, db.Create(&log).Error)
	}

	rec := doJSON(t, mux, http.MethodDelete, "/api/question-logs", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.QuestionLog{}).Count(&count).Error)
	assert.Zero(t, count)
}
