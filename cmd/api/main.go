package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"smartrecruit/recruitflow/internal/config"
	"smartrecruit/recruitflow/internal/handlers"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

const llmMaxRetries = 3

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	candidateRepo := repositories.NewCandidateRepository(db)
	jobRepo := repositories.NewJobOfferRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	faqRepo := repositories.NewFAQRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize domain services
	cvParser := services.NewCVParserService(geminiService, llmMaxRetries)
	transcriber := services.NewTranscriptionService(geminiService)
	analyzer := services.NewSoftSkillAnalyzer(geminiService)
	summarizer := services.NewSummaryGenerator(geminiService)
	quizService := services.NewQuizService(geminiService, llmMaxRetries)
	chatbot := services.NewChatbotService(geminiService, vectorStore, llmMaxRetries)
	notifier := services.NewNotificationService(cfg.SMTP, cfg.Notify)

	appService := services.NewApplicationService(
		appRepo,
		candidateRepo,
		jobRepo,
		transcriber,
		analyzer,
		summarizer,
		notifier,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobRepo, quizService)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, storageService, cvParser, cfg.Storage.MaxFileSize)
	applicationHandler := handlers.NewApplicationHandler(appRepo, appService, storageService, cfg.Storage.MaxFileSize)
	interviewHandler := handlers.NewInterviewHandler(interviewRepo, appRepo, candidateRepo, jobRepo, notifier)
	chatbotHandler := handlers.NewChatbotHandler(faqRepo, chatbot)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "RecruitFlow API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Job offers
	api.Post("/job/create", jobHandler.HandleCreateJob)
	api.Get("/job/list", jobHandler.HandleListJobs)
	api.Get("/job/:id/generate-quiz", jobHandler.HandleGenerateQuiz)
	api.Post("/job/:id/grade-quiz", jobHandler.HandleGradeQuiz)

	// Candidates
	api.Post("/candidate/upload-cv", candidateHandler.HandleUploadCV)

	// Applications
	api.Post("/application/apply", applicationHandler.HandleApply)
	api.Get("/application/list", applicationHandler.HandleList)
	api.Post("/application/:id/accept", applicationHandler.HandleAccept)
	api.Post("/application/:id/refuse", applicationHandler.HandleRefuse)
	api.Post("/application/:id/add-note", applicationHandler.HandleAddNote)
	api.Post("/application/:id/interview", interviewHandler.HandleSchedule)
	api.Get("/interview/list", interviewHandler.HandleList)

	// FAQ chatbot
	api.Post("/faq/create", chatbotHandler.HandleCreateFAQ)
	api.Post("/chatbot/ask", chatbotHandler.HandleAsk)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "RecruitFlow API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/job/create",
				"GET /api/v1/job/list",
				"GET /api/v1/job/:id/generate-quiz",
				"POST /api/v1/job/:id/grade-quiz",
				"POST /api/v1/candidate/upload-cv",
				"POST /api/v1/application/apply",
				"GET /api/v1/application/list",
				"POST /api/v1/application/:id/accept",
				"POST /api/v1/application/:id/refuse",
				"POST /api/v1/application/:id/add-note",
				"POST /api/v1/application/:id/interview",
				"GET /api/v1/interview/list",
				"POST /api/v1/faq/create",
				"POST /api/v1/chatbot/ask",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
