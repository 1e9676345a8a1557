package discord

import (
	"go.uber.org/zap"

	"voicecms/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	contentUseCase input.ContentUseCase
	logger         *zap.SugaredLogger
}

// NewHandler creates a Handler.
func NewHandler(contentUseCase input.ContentUseCase, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

// translator adapts the content use case to the output.T port.
type translator struct {
	uc input.ContentUseCase
}

func (t translator) T(locale, key string, data map[string]any) string {
	return t.uc.Translate(locale, key, data)
}
