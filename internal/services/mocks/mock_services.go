package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/ats-resume-expert/internal/models"
)

type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, doc *models.UploadedDocument) (models.ImagePayload, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(models.ImagePayload), args.Error(1)
}

type MockGemini struct {
	mock.Mock
}

func (m *MockGemini) Evaluate(ctx context.Context, jobDescription string, payload models.ImagePayload, instruction string) (string, error) {
	args := m.Called(ctx, jobDescription, payload, instruction)
	return args.String(0), args.Error(1)
}
