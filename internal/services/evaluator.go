package services

import (
	"context"
	"log"

	"alfredoptarigan/ats-resume-expert/internal/models"
)

type EvaluatorService interface {
	EvaluateResume(ctx context.Context, jobDescription string, doc *models.UploadedDocument, action models.Action) (string, error)
}

type evaluatorService struct {
	converter     ConverterService
	geminiService GeminiService
}

func NewEvaluatorService(converter ConverterService, geminiService GeminiService) EvaluatorService {
	return &evaluatorService{
		converter:     converter,
		geminiService: geminiService,
	}
}

// EvaluateResume runs one synchronous pass: render the first page of doc,
// send it with jobDescription and the action's instruction, return the
// model's text verbatim. Nothing is cached between calls.
func (e *evaluatorService) EvaluateResume(ctx context.Context, jobDescription string, doc *models.UploadedDocument, action models.Action) (string, error) {
	if doc == nil {
		return "", ErrMissingInput
	}

	instruction, err := InstructionFor(action)
	if err != nil {
		return "", err
	}

	log.Printf("🔄 Starting %s evaluation for %q\n", action, doc.Filename)

	payload, err := e.converter.Convert(ctx, doc)
	if err != nil {
		return "", err
	}

	response, err := e.geminiService.Evaluate(ctx, jobDescription, payload, instruction)
	if err != nil {
		return "", err
	}

	log.Printf("✅ %s evaluation completed for %q\n", action, doc.Filename)
	return response, nil
}
