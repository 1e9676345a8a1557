package input

import (
	"context"

	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/output"
)

type SetupUseCase interface {
	Setup(ctx context.Context, store output.ContentStore) (*entities.SetupResult, error)
}
