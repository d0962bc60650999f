package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/legalbridge/legalbridge/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Process{},
		&models.ProcessDocument{},
		&models.ProcessQuestionnaire{},
		&models.QuestionnaireTemplate{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createTestProcess(t *testing.T, db *gorm.DB, lawyerID, processType string) *models.Process {
	t.Helper()

	process, err := CreateProcess(db, lawyerID, &ProcessInput{
		Title:       "Test case",
		ProcessType: processType,
	})
	if err != nil {
		t.Fatalf("Failed to create test process: %v", err)
	}
	return process
}
