package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"alfredoptarigan/ats-resume-expert/internal/config"
	"alfredoptarigan/ats-resume-expert/internal/handlers"
	"alfredoptarigan/ats-resume-expert/internal/models"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

// evaluate runs one résumé evaluation from the command line, for use
// without the web page:
//
//	evaluate -resume cv.pdf -job job.txt -action match
func main() {
	resumePath := flag.String("resume", "", "path to the résumé PDF")
	jobPath := flag.String("job", "", "path to a file holding the job description")
	jobText := flag.String("job-text", "", "job description text (used when -job is empty)")
	actionName := flag.String("action", string(models.ActionReview), "review or match")
	flag.Parse()

	action, ok := models.ParseAction(*actionName)
	if !ok {
		log.Fatalf("❌ Unknown action %q, expected review or match", *actionName)
	}

	jobDescription := *jobText
	if *jobPath != "" {
		raw, err := os.ReadFile(*jobPath)
		if err != nil {
			log.Fatalf("❌ Failed to read job description: %v", err)
		}
		jobDescription = string(raw)
	}

	var doc *models.UploadedDocument
	if *resumePath != "" {
		data, err := os.ReadFile(*resumePath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("❌ Failed to read resume: %v", err)
		}
		if err == nil {
			doc = &models.UploadedDocument{
				Filename:    filepath.Base(*resumePath),
				ContentType: "application/pdf",
				Data:        data,
			}
		}
	}

	cfg := config.Load()

	toolchain := services.NewToolchain(cfg.Render.PopplerPath)
	converter := services.NewConverterService(
		services.NewPDFParserService(),
		services.NewPopplerRenderer(toolchain, cfg.Render.DPI),
		cfg.Render.JPEGQuality,
	)
	geminiService := services.NewGeminiService(context.Background(), services.GeminiOptions{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	evaluator := services.NewEvaluatorService(converter, geminiService)

	response, err := evaluator.EvaluateResume(context.Background(), jobDescription, doc, action)
	result := handlers.Present(response, err)
	if result.Error != "" {
		fmt.Fprintln(os.Stderr, result.Error)
		os.Exit(1)
	}

	fmt.Println(result.Heading)
	fmt.Println(result.Response)
}
