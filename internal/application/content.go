package application

import (
	"context"
	"fmt"
	"sort"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/input"
	"voicecms/internal/ports/output"
)

var _ input.ContentUseCase = (*ContentService)(nil)

// ContentService reads what the setup step installed into the content
// namespace.
type ContentService struct {
	store         output.ContentStore
	defaultLocale string
}

func NewContentService(store output.ContentStore, defaultLocale string) *ContentService {
	return &ContentService{
		store:         store,
		defaultLocale: defaultLocale,
	}
}

func (s *ContentService) Collections(ctx context.Context) []string {
	return s.store.Names()
}

func (s *ContentService) Items(ctx context.Context, collection string) ([]map[string]any, error) {
	items, ok := s.store.Get(collection)
	if !ok {
		return nil, fmt.Errorf("%q: %w", collection, domain.ErrUnknownCollection)
	}
	return items, nil
}

// Keys returns the sorted key values of a collection's items. Items without
// a key are left out.
func (s *ContentService) Keys(ctx context.Context, collection string) ([]string, error) {
	items, err := s.Items(ctx, collection)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(items))
	for _, data := range items {
		if v, ok := data[entities.KeyField]; ok && v != nil {
			keys = append(keys, fmt.Sprint(v))
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Lookup returns the record of collection/key resolved for locale. An empty
// locale means the default locale.
func (s *ContentService) Lookup(ctx context.Context, locale, collection, key string) (entities.Record, error) {
	localizer := s.store.Localizer()
	if localizer == nil {
		return nil, domain.ErrNotInitialized
	}
	if locale == "" {
		locale = s.defaultLocale
	}
	if _, ok := s.store.Get(collection); !ok {
		return nil, fmt.Errorf("%q: %w", collection, domain.ErrUnknownCollection)
	}

	return localizer.Record(locale, collection, key)
}

// Translate renders a host message, falling back to messageID when the
// localizer is not installed yet.
func (s *ContentService) Translate(locale, messageID string, data map[string]any) string {
	localizer := s.store.Localizer()
	if localizer == nil {
		return messageID
	}
	if locale == "" {
		locale = s.defaultLocale
	}
	return localizer.T(locale, messageID, data)
}
