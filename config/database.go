package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/examtrack/examtrack-api/models"
)

var Database *gorm.DB

// Connect opens the backing store and migrates the schema. With no
// DB_URL set the store is an in-memory SQLite database: everything is
// discarded when the process exits.
func Connect() error {
	var dialector gorm.Dialector
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		dialector = postgres.Open(dbURL)
	} else {
		dialector = sqlite.Open("file::memory:?cache=shared")
	}

	var err error
	Database, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	return Database.AutoMigrate(
		&models.Task{},
		&models.Mood{},
		&models.Goal{},
		&models.QuestionLog{},
		&models.ExamResult{},
		&models.ExamSubjectNet{},
		&models.Flashcard{},
	)
}
