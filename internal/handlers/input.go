package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-expert/internal/models"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

const (
	fieldJobDescription = "job_description"
	fieldResume         = "resume"
	fieldAction         = "action"
)

// submission is everything one button press sends.
type submission struct {
	JobDescription string
	Document       *models.UploadedDocument
	Action         models.Action
}

// collectInput reads the form. A missing résumé is not an error here; the
// evaluator reports it so that nothing downstream runs. The returned error
// covers uploads that were sent but cannot be accepted.
func collectInput(c *fiber.Ctx, maxFileSize int64) (submission, error) {
	sub := submission{
		JobDescription: c.FormValue(fieldJobDescription),
	}
	sub.Action, _ = models.ParseAction(c.FormValue(fieldAction))

	fh, err := c.FormFile(fieldResume)
	if err != nil {
		return sub, nil
	}

	doc, err := services.ReadUpload(fh, maxFileSize)
	if err != nil {
		if errors.Is(err, services.ErrMissingInput) {
			return sub, nil
		}
		return sub, err
	}

	sub.Document = doc
	return sub, nil
}
