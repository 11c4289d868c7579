package handlers

import (
	"errors"

	"alfredoptarigan/ats-resume-expert/internal/services"
)

const (
	ResponseHeading  = "The response is:"
	MsgMissingUpload = "Please upload the resume before submitting."
	ErrorPrefix      = "An error occurred while processing your resume: "
)

// Presentation is what the result area shows after one button press:
// either a heading with the model's text, or an error line.
type Presentation struct {
	Heading  string
	Response string
	Error    string
}

// Present formats an evaluation outcome for display. The model's text is
// passed through untouched.
func Present(response string, err error) Presentation {
	if err == nil {
		return Presentation{Heading: ResponseHeading, Response: response}
	}
	if errors.Is(err, services.ErrMissingInput) {
		return Presentation{Error: MsgMissingUpload}
	}
	return Presentation{Error: ErrorPrefix + err.Error()}
}

func outcomeOf(err error) string {
	var (
		notFound   *services.ToolNotFoundError
		conversion *services.ConversionError
		evaluation *services.EvaluationError
	)

	switch {
	case err == nil:
		return "success"
	case errors.Is(err, services.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, services.ErrUnknownAction):
		return "unknown_action"
	case errors.Is(err, services.ErrUnsupportedFormat), errors.Is(err, services.ErrFileTooLarge):
		return "invalid_upload"
	case errors.As(err, &notFound):
		return "tool_not_found"
	case errors.As(err, &conversion):
		return "conversion_error"
	case errors.As(err, &evaluation):
		return "evaluation_error"
	default:
		return "error"
	}
}
