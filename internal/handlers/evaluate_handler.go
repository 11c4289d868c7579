package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-expert/internal/metrics"
	"alfredoptarigan/ats-resume-expert/internal/middleware"
	"alfredoptarigan/ats-resume-expert/internal/models"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

type EvaluationHandler struct {
	evaluator   services.EvaluatorService
	metrics     *metrics.Metrics
	maxFileSize int64
}

func NewEvaluationHandler(
	evaluator services.EvaluatorService,
	m *metrics.Metrics,
	maxFileSize int64,
) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator:   evaluator,
		metrics:     m,
		maxFileSize: maxFileSize,
	}
}

// HandleEvaluate handles POST /api/v1/evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	sub, err := collectInput(c, h.maxFileSize)

	var response string
	if err == nil {
		response, err = h.evaluator.EvaluateResume(c.UserContext(), sub.JobDescription, sub.Document, sub.Action)
	}
	h.metrics.ObserveEvaluation(string(sub.Action), outcomeOf(err))

	if err != nil {
		status, code := statusForError(err)
		return writeError(c, status, code, Present("", err).Error)
	}

	return c.JSON(models.EvaluateResponse{
		RequestID: middleware.RequestIDFromCtx(c),
		Action:    string(sub.Action),
		Response:  response,
	})
}
