package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/input"
	"voicecms/internal/ports/output"
)

// WritePolicy decides what happens to the content namespace when a write
// fails part way through.
type WritePolicy string

const (
	// WriteBestEffort writes collection slots one by one; slots written
	// before a failure stay in place.
	WriteBestEffort WritePolicy = "best-effort"
	// WriteAllOrNothing stages every output and installs it in one Replace.
	WriteAllOrNothing WritePolicy = "all-or-nothing"
)

// ParseWritePolicy accepts "" as WriteBestEffort.
func ParseWritePolicy(s string) (WritePolicy, error) {
	switch WritePolicy(s) {
	case "", WriteBestEffort:
		return WriteBestEffort, nil
	case WriteAllOrNothing:
		return WriteAllOrNothing, nil
	default:
		return "", fmt.Errorf("unknown write policy %q", s)
	}
}

var _ input.SetupUseCase = (*SetupService)(nil)

type SetupService struct {
	source       output.ProjectSource
	localization output.LocalizationInitializer
	projectID    string
	policy       WritePolicy
	logger       *zap.SugaredLogger
}

func NewSetupService(
	source output.ProjectSource,
	localization output.LocalizationInitializer,
	projectID string,
	policy WritePolicy,
	logger *zap.SugaredLogger,
) *SetupService {
	if policy == "" {
		policy = WriteBestEffort
	}
	return &SetupService{
		source:       source,
		localization: localization,
		projectID:    projectID,
		policy:       policy,
		logger:       logger,
	}
}

// Setup fetches the project, builds both outputs and installs them into
// store. A failed fetch leaves store untouched.
func (s *SetupService) Setup(ctx context.Context, store output.ContentStore) (*entities.SetupResult, error) {
	start := time.Now()
	project, err := s.source.Fetch(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch project %s: %w", s.projectID, err)
	}

	arrays := BuildArrays(project)
	table, warnings := BuildLocaleTable(project)
	for _, w := range warnings {
		s.logger.Warnf("cms: %v", w)
	}

	result := &entities.SetupResult{
		ProjectID: s.projectID,
		Locales:   project.Locales,
		Skipped:   skippedCollections(project),
		Warnings:  warnings,
	}
	defer func() { result.Duration = time.Since(start) }()

	names := collectionOrder(project)
	opts := output.SetupLocalizationOptions()

	if s.policy == WriteAllOrNothing {
		localizer, err := s.localization.Init(table, opts)
		if err != nil {
			return result, fmt.Errorf("init localization: %w", err)
		}
		if err := store.Replace(arrays, localizer); err != nil {
			return result, fmt.Errorf("replace content: %w", err)
		}
		result.Collections = names
		return result, nil
	}

	var errs []error
	localizer, err := s.localization.Init(table, opts)
	if err != nil {
		errs = append(errs, fmt.Errorf("init localization: %w", err))
	} else {
		store.SetLocalizer(localizer)
	}
	for _, name := range names {
		if err := store.Set(name, arrays[name]); err != nil {
			errs = append(errs, fmt.Errorf("write collection %q: %w", name, err))
			continue
		}
		result.Collections = append(result.Collections, name)
	}
	return result, errors.Join(errs...)
}

// collectionOrder returns collection names in project order, without
// duplicates.
func collectionOrder(project *entities.Project) []string {
	seen := make(map[string]bool, len(project.Collections))
	out := make([]string, 0, len(project.Collections))
	for _, c := range project.Collections {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c.Name)
	}
	return out
}
