package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-expert/internal/middleware"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// statusForError maps the evaluation error kinds to an HTTP status and a
// machine-readable code for the JSON API.
func statusForError(err error) (int, string) {
	var (
		notFound   *services.ToolNotFoundError
		conversion *services.ConversionError
		evaluation *services.EvaluationError
	)

	switch {
	case errors.Is(err, services.ErrMissingInput):
		return fiber.StatusBadRequest, "MISSING_INPUT"
	case errors.Is(err, services.ErrUnknownAction):
		return fiber.StatusBadRequest, "UNKNOWN_ACTION"
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusBadRequest, "UNSUPPORTED_FORMAT"
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.As(err, &notFound):
		return fiber.StatusServiceUnavailable, "TOOL_NOT_FOUND"
	case errors.As(err, &conversion):
		return fiber.StatusUnprocessableEntity, "CONVERSION_FAILED"
	case errors.As(err, &evaluation):
		return fiber.StatusBadGateway, "EVALUATION_FAILED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// wantsPage reports whether the request came from the HTML form rather
// than an API client.
func wantsPage(c *fiber.Ctx) bool {
	return c.Path() == "/" || strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}

// ErrorHandler is the fiber-wide handler for errors no route handled itself.
// Form posts rejected before reaching a handler (oversized or unparsable
// bodies) get the page back with an inline error.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if wantsPage(c) && (code == fiber.StatusRequestEntityTooLarge || code == fiber.StatusBadRequest) {
			cause := err
			if code == fiber.StatusRequestEntityTooLarge {
				cause = services.ErrFileTooLarge
			}
			result := Present("", cause)
			return renderPage(c.Status(fiber.StatusOK), pageData{Result: &result})
		}

		switch code {
		case fiber.StatusBadRequest:
			return writeError(c, code, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, code, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, code, "FILE_TOO_LARGE", "request body too large")
		default:
			return writeError(c, code, "INTERNAL_ERROR", "internal server error")
		}
	}
}
