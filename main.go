package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/examtrack/examtrack-api/config"
	"github.com/examtrack/examtrack-api/handlers"
)

func main() {
	// Load .env file if not in a deployed environment
	if os.Getenv("APP_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}

	config.LoadEnvironment()
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	if err := config.Connect(); err != nil {
		config.Logger.Fatalw("failed to connect database", "error", err)
	}

	DBHandler := handlers.NewDBHandler(config.Database, config.Logger)
	mux := http.NewServeMux()

	// Tasks
	mux.HandleFunc("POST /api/tasks", DBHandler.CreateTask)
	mux.HandleFunc("GET /api/tasks", DBHandler.GetTasks)
	mux.HandleFunc("GET /api/tasks/by-date", DBHandler.GetTasksByDate)
	mux.HandleFunc("GET /api/tasks/daily-summary", DBHandler.GetDailySummary)
	mux.HandleFunc("GET /api/tasks/{taskID}", DBHandler.GetTaskByID)
	mux.HandleFunc("PUT /api/tasks/{taskID}", DBHandler.UpdateTaskByID)
	mux.HandleFunc("PUT /api/tasks/{taskID}/toggle", DBHandler.ToggleTaskByID)
	mux.HandleFunc("DELETE /api/tasks/{taskID}", DBHandler.DeleteTaskByID)

	// Question logs
	mux.HandleFunc("POST /api/question-logs", DBHandler.CreateQuestionLog)
	mux.HandleFunc("GET /api/question-logs", DBHandler.GetQuestionLogs)
	mux.HandleFunc("DELETE /api/question-logs", DBHandler.DeleteAllQuestionLogs)
	mux.HandleFunc("GET /api/question-logs/{logID}", DBHandler.GetQuestionLogByID)
	mux.HandleFunc("PUT /api/question-logs/{logID}", DBHandler.UpdateQuestionLogByID)
	mux.HandleFunc("DELETE /api/question-logs/{logID}", DBHandler.DeleteQuestionLogByID)

	// Exam results
	mux.HandleFunc("POST /api/exam-results", DBHandler.CreateExamResult)
	mux.HandleFunc("GET /api/exam-results", DBHandler.GetExamResults)
	mux.HandleFunc("DELETE /api/exam-results", DBHandler.DeleteAllExamResults)
	mux.HandleFunc("GET /api/exam-results/{examID}", DBHandler.GetExamResultByID)
	mux.HandleFunc("PUT /api/exam-results/{examID}", DBHandler.UpdateExamResultByID)
	mux.HandleFunc("DELETE /api/exam-results/{examID}", DBHandler.DeleteExamResultByID)

	// Subject nets
	mux.HandleFunc("POST /api/exam-results/{examID}/subject-nets", DBHandler.CreateSubjectNet)
	mux.HandleFunc("GET /api/exam-results/{examID}/subject-nets", DBHandler.GetSubjectNetsByExamID)
	mux.HandleFunc("DELETE /api/exam-results/{examID}/subject-nets", DBHandler.DeleteSubjectNetsByExamID)
	mux.HandleFunc("PUT /api/subject-nets/{netID}", DBHandler.UpdateSubjectNetByID)
	mux.HandleFunc("DELETE /api/subject-nets/{netID}", DBHandler.DeleteSubjectNetByID)

	// Flashcards
	mux.HandleFunc("POST /api/flashcards", DBHandler.CreateFlashcard)
	mux.HandleFunc("GET /api/flashcards", DBHandler.GetFlashcards)
	mux.HandleFunc("GET /api/flashcards/due", DBHandler.GetDueFlashcards)
	mux.HandleFunc("POST /api/flashcards/seed", DBHandler.SeedFlashcards)
	mux.HandleFunc("GET /api/flashcards/{flashcardID}", DBHandler.GetFlashcardByID)
	mux.HandleFunc("PUT /api/flashcards/{flashcardID}", DBHandler.UpdateFlashcardByID)
	mux.HandleFunc("DELETE /api/flashcards/{flashcardID}", DBHandler.DeleteFlashcardByID)
	mux.HandleFunc("POST /api/flashcards/{flashcardID}/review", DBHandler.ReviewFlashcardByID)

	// Stats
	mux.HandleFunc("GET /api/stats/topics", DBHandler.GetTopicStats)
	mux.HandleFunc("GET /api/stats/priority-topics", DBHandler.GetPriorityTopics)
	mux.HandleFunc("GET /api/stats/subjects", DBHandler.GetSubjectSolvedStats)
	mux.HandleFunc("GET /api/stats/obp", DBHandler.GetOBP)

	// Goals
	mux.HandleFunc("POST /api/goals", DBHandler.CreateGoal)
	mux.HandleFunc("GET /api/goals", DBHandler.GetGoals)
	mux.HandleFunc("GET /api/goals/{goalID}", DBHandler.GetGoalByID)
	mux.HandleFunc("PUT /api/goals/{goalID}", DBHandler.UpdateGoalByID)
	mux.HandleFunc("DELETE /api/goals/{goalID}", DBHandler.DeleteGoalByID)

	// Moods
	mux.HandleFunc("POST /api/moods", DBHandler.CreateMood)
	mux.HandleFunc("GET /api/moods", DBHandler.GetMoods)
	mux.HandleFunc("DELETE /api/moods/{moodID}", DBHandler.DeleteMoodByID)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + config.Env.Port
	config.Logger.Infow("starting server", "addr", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		config.Logger.Fatalw("server stopped", "error", err)
	}
}
