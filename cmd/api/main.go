package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/ats-resume-expert/internal/config"
	"alfredoptarigan/ats-resume-expert/internal/handlers"
	"alfredoptarigan/ats-resume-expert/internal/metrics"
	"alfredoptarigan/ats-resume-expert/internal/middleware"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

// Room for the form fields on top of the résumé itself.
const formOverhead = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Resolve the rendering toolchain once
	toolchain := services.NewToolchain(cfg.Render.PopplerPath)
	if status := toolchain.Probe(); status.Available {
		log.Printf("✅ Poppler found at: %s (%s)\n", status.Pdftoppm, status.Version)
	} else {
		log.Printf("⚠️  Poppler is not installed or not in PATH: %v\n", status.Err)
	}

	// Initialize services
	pdfParser := services.NewPDFParserService()
	renderer := services.NewPopplerRenderer(toolchain, cfg.Render.DPI)
	converter := services.NewConverterService(pdfParser, renderer, cfg.Render.JPEGQuality)

	geminiService := services.NewGeminiService(context.Background(), services.GeminiOptions{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	log.Printf("✅ Gemini model %s configured\n", cfg.Gemini.Model)

	evaluatorService := services.NewEvaluatorService(converter, geminiService)
	log.Println("✅ Services initialized successfully")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics, err := metrics.New(registry)
	if err != nil {
		log.Fatalf("❌ Failed to register metrics: %v", err)
	}

	// Initialize Handlers
	pageHandler := handlers.NewPageHandler(evaluatorService, appMetrics, cfg.Storage.MaxFileSize)
	evaluateHandler := handlers.NewEvaluationHandler(evaluatorService, appMetrics, cfg.Storage.MaxFileSize)
	healthHandler := handlers.NewHealthHandler(toolchain)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Expert",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + formOverhead,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:request_id}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(appMetrics.Middleware())

	// Page
	app.Get("/", pageHandler.HandleIndex)
	app.Post("/", pageHandler.HandleSubmit)

	// API endpoints
	api := app.Group("/api/v1")
	api.Get("/health", healthHandler.HandleHealth)
	api.Post("/evaluate", evaluateHandler.HandleEvaluate)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

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
	log.Printf("📝 Open http://localhost%s in a browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
