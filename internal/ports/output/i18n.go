package output

import "voicecms/internal/domain/entities"

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// Localizer is the handle the host reads translated CMS content from once
// setup has completed.
type Localizer interface {
	T
	// Lookup resolves a dotted path ("collection.key" or
	// "collection.key.field") in the translation namespace of locale.
	Lookup(locale, path string) (any, error)
	// Record returns the record of collection/key in locale. The key is
	// taken verbatim and may contain dots.
	Record(locale, collection, key string) (entities.Record, error)
	// Locales lists the locales the localizer was initialized with.
	Locales() []string
}

// LocalizationOptions mirrors the knobs the localization subsystem is
// initialized with.
type LocalizationOptions struct {
	// LoadAll loads every locale of the table eagerly instead of only the
	// default one.
	LoadAll bool
	// ReturnObjects lets Lookup return nested records instead of failing on
	// non-leaf paths.
	ReturnObjects bool
	// EscapeValue HTML-escapes returned strings. Off for SSML content.
	EscapeValue bool
}

// SetupLocalizationOptions are the options used by the setup step.
func SetupLocalizationOptions() LocalizationOptions {
	return LocalizationOptions{
		LoadAll:       true,
		ReturnObjects: true,
		EscapeValue:   false,
	}
}

// LocalizationInitializer builds a Localizer from a locale table.
type LocalizationInitializer interface {
	Init(table entities.LocaleTable, opts LocalizationOptions) (Localizer, error)
}
