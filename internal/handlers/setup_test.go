package handlers_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/legalbridge/legalbridge/internal/handlers"
	"github.com/legalbridge/legalbridge/internal/models"
	"github.com/legalbridge/legalbridge/internal/storage"
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

// authAs injects the session user the auth middleware would have validated.
func authAs(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{"id": userID})
		return c.Next()
	}
}

// setupTestApp wires the full route table over the given database, with the
// auth middleware replaced by a fixed test identity.
func setupTestApp(t *testing.T, db *gorm.DB, userID string) *fiber.App {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create blob store: %v", err)
	}
	signer := storage.NewURLSigner("test-secret", time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	processHandler := &handlers.ProcessHandler{DB: db}
	questionnaireHandler := &handlers.QuestionnaireHandler{DB: db}
	templateHandler := &handlers.TemplateHandler{DB: db}
	documentHandler := &handlers.DocumentHandler{DB: db, Store: store, Signer: signer, Logger: logger}
	publicHandler := &handlers.PublicHandler{DB: db}

	app := fiber.New()

	app.Get("/files/:token", documentHandler.ServeFile)

	api := app.Group("/api")
	api.Get("/public/processes/:processKey", publicHandler.GetPublicProcess)

	auth := authAs(userID)
	api.Get("/processes", auth, processHandler.ListProcesses)
	api.Post("/processes", auth, processHandler.CreateProcess)
	api.Get("/processes/summary", auth, processHandler.GetProcessSummary)
	api.Get("/processes/:processKey", auth, processHandler.GetProcess)
	api.Put("/processes/:processKey", auth, processHandler.UpdateProcess)
	api.Delete("/processes/:processKey", auth, processHandler.DeleteProcess)
	api.Get("/processes/:processKey/questionnaire", auth, questionnaireHandler.GetQuestionnaire)
	api.Post("/processes/:processKey/questionnaire", auth, questionnaireHandler.SaveQuestionnaire)
	api.Get("/processes/:processKey/documents", auth, documentHandler.ListDocuments)
	api.Post("/processes/:processKey/documents", auth, documentHandler.UploadDocument)
	api.Delete("/processes/:processKey/documents/:id", auth, documentHandler.DeleteDocument)
	api.Get("/processes/:processKey/documents/:id/url", auth, documentHandler.GetDocumentURL)
	api.Get("/templates/:processType", auth, templateHandler.GetTemplate)
	api.Post("/templates/:processType", auth, templateHandler.SaveTemplate)
	api.Get("/field-types", auth, templateHandler.GetFieldTypes)

	return app
}
