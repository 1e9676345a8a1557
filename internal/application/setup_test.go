package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/output"
)

type fakeSource struct {
	project *entities.Project
	err     error
	calls   []string
}

func (f *fakeSource) Fetch(_ context.Context, projectID string) (*entities.Project, error) {
	f.calls = append(f.calls, projectID)
	return f.project, f.err
}

type fakeLocalizer struct {
	table entities.LocaleTable
	opts  output.LocalizationOptions
}

func (f *fakeLocalizer) T(_, key string, _ map[string]any) string { return key }

func (f *fakeLocalizer) Lookup(locale, path string) (any, error) {
	ns := f.table.Translation(locale)
	if ns == nil {
		return nil, domain.ErrUnknownLocale
	}
	for collection, items := range ns {
		for key, record := range items {
			if collection+"."+key == path {
				return record, nil
			}
		}
	}
	return nil, domain.ErrUnknownKey
}

func (f *fakeLocalizer) Record(locale, collection, key string) (entities.Record, error) {
	ns := f.table.Translation(locale)
	if ns == nil {
		return nil, domain.ErrUnknownLocale
	}
	record, ok := ns[collection][key]
	if !ok {
		return nil, domain.ErrUnknownKey
	}
	return record, nil
}

func (f *fakeLocalizer) Locales() []string { return f.table.Locales() }

type fakeInitializer struct {
	err   error
	calls int
	last  *fakeLocalizer
}

func (f *fakeInitializer) Init(table entities.LocaleTable, opts output.LocalizationOptions) (output.Localizer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.last = &fakeLocalizer{table: table, opts: opts}
	return f.last, nil
}

type fakeStore struct {
	writes    []string
	replaces  int
	localizer output.Localizer
	data      map[string][]map[string]any
	failOn    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]map[string]any{}}
}

func (f *fakeStore) Set(collection string, items []map[string]any) error {
	if collection == f.failOn {
		return domain.ErrReservedSlot
	}
	f.writes = append(f.writes, collection)
	f.data[collection] = items
	return nil
}

func (f *fakeStore) Replace(arrays entities.CollectionArrays, localizer output.Localizer) error {
	if _, ok := arrays[f.failOn]; ok {
		return domain.ErrReservedSlot
	}
	f.replaces++
	f.data = arrays
	f.localizer = localizer
	return nil
}

func (f *fakeStore) SetLocalizer(localizer output.Localizer) { f.localizer = localizer }

func (f *fakeStore) Get(collection string) ([]map[string]any, bool) {
	items, ok := f.data[collection]
	return items, ok
}

func (f *fakeStore) Names() []string {
	var out []string
	for name := range f.data {
		out = append(out, name)
	}
	return out
}

func (f *fakeStore) Localizer() output.Localizer { return f.localizer }

func twoCollectionProject() *entities.Project {
	project := promptsProject()
	project.Collections = append(project.Collections, entities.Collection{
		Name:       "facts",
		Properties: []entities.Property{{Name: "text"}},
		Items:      []entities.Item{{Data: map[string]any{"text": "Water is wet"}}},
	})
	return project
}

func TestSetupService_BestEffort(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	source := &fakeSource{project: twoCollectionProject()}
	initializer := &fakeInitializer{}
	store := newFakeStore()

	svc := NewSetupService(source, initializer, "p1", "", zap.New(core).Sugar())
	result, err := svc.Setup(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, source.calls)
	assert.Equal(t, []string{"prompts", "facts"}, store.writes)
	assert.Equal(t, []string{"prompts", "facts"}, result.Collections)
	assert.Equal(t, []string{"facts"}, result.Skipped)
	assert.Equal(t, []string{"en", "de"}, result.Locales)
	require.Len(t, result.Warnings, 1)

	require.Equal(t, 1, initializer.calls)
	assert.Equal(t, output.LocalizationOptions{LoadAll: true, ReturnObjects: true, EscapeValue: false}, initializer.last.opts)
	assert.Same(t, initializer.last, store.localizer)

	record, err := store.localizer.Lookup("de", "prompts.welcome")
	require.NoError(t, err)
	assert.Equal(t, entities.Record{"text": "Hallo"}, record)

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "has no 'key' property")
}

func TestSetupService_FetchError(t *testing.T) {
	for _, policy := range []WritePolicy{WriteBestEffort, WriteAllOrNothing} {
		t.Run(string(policy), func(t *testing.T) {
			source := &fakeSource{err: domain.ErrTransport}
			initializer := &fakeInitializer{}
			store := newFakeStore()

			svc := NewSetupService(source, initializer, "p1", policy, zap.NewNop().Sugar())
			result, err := svc.Setup(context.Background(), store)

			assert.ErrorIs(t, err, domain.ErrTransport)
			assert.Nil(t, result)
			assert.Empty(t, store.writes)
			assert.Zero(t, store.replaces)
			assert.Nil(t, store.localizer)
			assert.Zero(t, initializer.calls)
		})
	}
}

func TestSetupService_BestEffortContinuesAfterFailedWrite(t *testing.T) {
	source := &fakeSource{project: twoCollectionProject()}
	store := newFakeStore()
	store.failOn = "prompts"

	svc := NewSetupService(source, &fakeInitializer{}, "p1", WriteBestEffort, zap.NewNop().Sugar())
	result, err := svc.Setup(context.Background(), store)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservedSlot)
	assert.Contains(t, err.Error(), `"prompts"`)
	assert.Equal(t, []string{"facts"}, store.writes)
	assert.Equal(t, []string{"facts"}, result.Collections)
	assert.NotNil(t, store.localizer)
}

func TestSetupService_BestEffortInitFailureStillWritesCollections(t *testing.T) {
	source := &fakeSource{project: twoCollectionProject()}
	initializer := &fakeInitializer{err: errors.New("boom")}
	store := newFakeStore()

	svc := NewSetupService(source, initializer, "p1", WriteBestEffort, zap.NewNop().Sugar())
	_, err := svc.Setup(context.Background(), store)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "init localization")
	assert.Equal(t, []string{"prompts", "facts"}, store.writes)
	assert.Nil(t, store.localizer)
}

func TestSetupService_AllOrNothing(t *testing.T) {
	source := &fakeSource{project: twoCollectionProject()}
	initializer := &fakeInitializer{}
	store := newFakeStore()

	svc := NewSetupService(source, initializer, "p1", WriteAllOrNothing, zap.NewNop().Sugar())
	result, err := svc.Setup(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, 1, store.replaces)
	assert.Empty(t, store.writes, "no slot by slot writes")
	assert.Len(t, store.data, 2)
	assert.Same(t, initializer.last, store.localizer)
	assert.Equal(t, []string{"prompts", "facts"}, result.Collections)
}

func TestSetupService_AllOrNothingFailures(t *testing.T) {
	t.Run("init fails", func(t *testing.T) {
		store := newFakeStore()
		svc := NewSetupService(&fakeSource{project: twoCollectionProject()}, &fakeInitializer{err: errors.New("boom")}, "p1", WriteAllOrNothing, zap.NewNop().Sugar())

		_, err := svc.Setup(context.Background(), store)

		require.Error(t, err)
		assert.Zero(t, store.replaces)
		assert.Empty(t, store.data)
		assert.Nil(t, store.localizer)
	})

	t.Run("replace fails", func(t *testing.T) {
		store := newFakeStore()
		store.failOn = "facts"
		svc := NewSetupService(&fakeSource{project: twoCollectionProject()}, &fakeInitializer{}, "p1", WriteAllOrNothing, zap.NewNop().Sugar())

		result, err := svc.Setup(context.Background(), store)

		assert.ErrorIs(t, err, domain.ErrReservedSlot)
		assert.Empty(t, result.Collections)
		assert.Empty(t, store.data)
		assert.Nil(t, store.localizer)
	})
}

func TestSetupService_DuplicateCollectionNamesWrittenOnce(t *testing.T) {
	project := promptsProject()
	project.Collections = append(project.Collections, project.Collections[0])
	store := newFakeStore()

	svc := NewSetupService(&fakeSource{project: project}, &fakeInitializer{}, "p1", WriteBestEffort, zap.NewNop().Sugar())
	result, err := svc.Setup(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, []string{"prompts"}, store.writes)
	assert.Equal(t, []string{"prompts"}, result.Collections)
}

func TestParseWritePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    WritePolicy
		wantErr bool
	}{
		{in: "", want: WriteBestEffort},
		{in: "best-effort", want: WriteBestEffort},
		{in: "all-or-nothing", want: WriteAllOrNothing},
		{in: "atomic", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseWritePolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
