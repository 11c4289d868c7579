package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-expert/internal/metrics"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	JobDescription string
	Filename       string
	Result         *Presentation
}

type PageHandler struct {
	evaluator   services.EvaluatorService
	metrics     *metrics.Metrics
	maxFileSize int64
}

func NewPageHandler(
	evaluator services.EvaluatorService,
	m *metrics.Metrics,
	maxFileSize int64,
) *PageHandler {
	return &PageHandler{
		evaluator:   evaluator,
		metrics:     m,
		maxFileSize: maxFileSize,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, pageData{})
}

// HandleSubmit handles POST / from either button. Every outcome, including
// failures, is rendered inline with status 200.
func (h *PageHandler) HandleSubmit(c *fiber.Ctx) error {
	sub, err := collectInput(c, h.maxFileSize)

	data := pageData{JobDescription: sub.JobDescription}
	if sub.Document != nil {
		data.Filename = sub.Document.Filename
	}

	var response string
	if err == nil {
		response, err = h.evaluator.EvaluateResume(c.UserContext(), sub.JobDescription, sub.Document, sub.Action)
	}
	h.metrics.ObserveEvaluation(string(sub.Action), outcomeOf(err))

	result := Present(response, err)
	data.Result = &result

	return renderPage(c, data)
}

func renderPage(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}

	c.Type("html")
	return c.Send(buf.Bytes())
}
