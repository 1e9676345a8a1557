package input

import (
	"context"

	"voicecms/internal/domain/entities"
)

type ContentUseCase interface {
	Collections(ctx context.Context) []string
	Items(ctx context.Context, collection string) ([]map[string]any, error)
	Keys(ctx context.Context, collection string) ([]string, error)
	Lookup(ctx context.Context, locale, collection, key string) (entities.Record, error)
	Translate(locale, messageID string, data map[string]any) string
}
