package entities

// TranslationNamespace is the single namespace every locale carries.
const TranslationNamespace = "translation"

// CollectionArrays maps a collection name to its items' data payloads, in
// item order.
type CollectionArrays map[string][]map[string]any

// Record is the flattened, locale-resolved view of one item.
type Record map[string]any

// CollectionTranslations maps an item key to its record.
type CollectionTranslations map[string]Record

// Namespace maps a collection name to its translations.
type Namespace map[string]CollectionTranslations

// LocaleTable maps a locale to its namespaces (only "translation" is built).
type LocaleTable map[string]map[string]Namespace

// Translation returns the translation namespace for locale, or nil.
func (t LocaleTable) Translation(locale string) Namespace {
	ns, ok := t[locale]
	if !ok {
		return nil
	}
	return ns[TranslationNamespace]
}

// Locales returns the locales present in the table.
func (t LocaleTable) Locales() []string {
	out := make([]string, 0, len(t))
	for l := range t {
		out = append(out, l)
	}
	return out
}
