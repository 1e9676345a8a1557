package output

import (
	"context"

	"voicecms/internal/domain/entities"
)

type ProjectSource interface {
	Fetch(ctx context.Context, projectID string) (*entities.Project, error)
}
