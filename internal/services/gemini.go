package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"google.golang.org/genai"

	"alfredoptarigan/ats-resume-expert/internal/models"
)

type GeminiService interface {
	Evaluate(ctx context.Context, jobDescription string, payload models.ImagePayload, instruction string) (string, error)
}

type GeminiOptions struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint. Empty means the SDK default.
	BaseURL string
}

type geminiService struct {
	client    *genai.Client
	modelName string
	initErr   error
}

// NewGeminiService builds the model client. A client that cannot be created
// (typically a missing API key) is not fatal: every Evaluate call then fails
// with that error.
func NewGeminiService(ctx context.Context, opts GeminiOptions) GeminiService {
	modelName := opts.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		log.Printf("⚠️  Gemini client unavailable: %v\n", err)
		return &geminiService{
			modelName: modelName,
			initErr:   fmt.Errorf("failed to create gemini client: %w", err),
		}
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}
}

// Evaluate implements GeminiService. The three parts are sent in a fixed
// order: job description, résumé image, instruction.
func (g *geminiService) Evaluate(ctx context.Context, jobDescription string, payload models.ImagePayload, instruction string) (string, error) {
	if g.initErr != nil {
		return "", &EvaluationError{Err: g.initErr}
	}

	image, err := base64.StdEncoding.DecodeString(payload.Data)
	if err != nil {
		return "", &EvaluationError{Err: fmt.Errorf("invalid image payload: %w", err)}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(jobDescription),
			genai.NewPartFromBytes(image, payload.MimeType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", &EvaluationError{Err: err}
	}
	if resp == nil {
		return "", &EvaluationError{Err: fmt.Errorf("no response generated (nil response)")}
	}

	log.Printf("📊 Gemini response received\n")

	return resp.Text(), nil
}
