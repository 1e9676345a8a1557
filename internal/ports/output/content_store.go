package output

import "voicecms/internal/domain/entities"

// ContentStore is the host's shared content namespace.
type ContentStore interface {
	// Set installs one collection slot.
	Set(collection string, items []map[string]any) error
	// Replace swaps every collection slot and the localizer in one step.
	Replace(arrays entities.CollectionArrays, localizer Localizer) error
	SetLocalizer(localizer Localizer)

	Get(collection string) ([]map[string]any, bool)
	Names() []string
	Localizer() Localizer
}
