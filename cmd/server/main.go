package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/legalbridge/legalbridge/internal/config"
	"github.com/legalbridge/legalbridge/internal/database"
	"github.com/legalbridge/legalbridge/internal/handlers"
	"github.com/legalbridge/legalbridge/internal/logging"
	"github.com/legalbridge/legalbridge/internal/middleware"
	"github.com/legalbridge/legalbridge/internal/services"
	"github.com/legalbridge/legalbridge/internal/storage"
	"github.com/legalbridge/legalbridge/internal/types"

	_ "github.com/legalbridge/legalbridge/docs/api" // Swagger docs
)

// @title LegalBridge API
// @version 1.0.0
// @description Case management data service for lawyers: processes, questionnaires, templates and documents
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/legalbridge/legalbridge

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slogger := logging.NewJSONLogger("legalbridge", cfg.LogLevel)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Document blob store and URL signer
	store, err := storage.NewLocalStore(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to open document storage: %v", err)
	}
	signer := storage.NewURLSigner(cfg.SignedURLSecret, cfg.SignedURLTTL)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes) + 1024*1024,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("legalbridge")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// Create handlers
	processHandler := &handlers.ProcessHandler{DB: db}
	questionnaireHandler := &handlers.QuestionnaireHandler{DB: db}
	templateHandler := &handlers.TemplateHandler{DB: db}
	documentHandler := &handlers.DocumentHandler{DB: db, Store: store, Signer: signer, Logger: slogger}
	publicHandler := &handlers.PublicHandler{DB: db}

	// Signed blob streaming (token is the credential)
	app.Get("/files/:token", documentHandler.ServeFile)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Public share link
	api.Get("/public/processes/:processKey", publicHandler.GetPublicProcess)

	// Authenticated routes
	auth := middleware.AuthUser(cfg)

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

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
