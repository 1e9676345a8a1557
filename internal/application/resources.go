package application

import (
	"fmt"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
)

// BuildArrays maps every collection to the data payloads of its items, in
// item order. Payloads are passed through untouched.
func BuildArrays(project *entities.Project) entities.CollectionArrays {
	out := make(entities.CollectionArrays, len(project.Collections))
	for _, c := range project.Collections {
		items := make([]map[string]any, len(c.Items))
		for i, item := range c.Items {
			items[i] = item.Data
		}
		out[c.Name] = items
	}
	return out
}

// BuildLocaleTable builds the translation table consumed by the localizer.
//
// Every locale gets one record per item of every key-bearing collection.
// Plain fields are copied into each locale's record; fields listed under
// item.data.i18n are then resolved to the locale's value and overwrite a
// same-named plain field. A locale missing from a field's i18n map yields a
// nil value, there is no fallback.
//
// Collections without a key property and items without a key value are
// skipped; the returned warnings say which.
func BuildLocaleTable(project *entities.Project) (entities.LocaleTable, []error) {
	table := make(entities.LocaleTable, len(project.Locales))
	for _, locale := range project.Locales {
		table[locale] = map[string]entities.Namespace{
			entities.TranslationNamespace: {},
		}
	}

	var warnings []error
	for ci := range project.Collections {
		c := &project.Collections[ci]
		if !c.HasKeyProperty() {
			warnings = append(warnings, fmt.Errorf("collection %q: %w", c.Name, domain.ErrMissingKeyProperty))
			continue
		}
		for _, locale := range project.Locales {
			table.Translation(locale)[c.Name] = entities.CollectionTranslations{}
		}

		for ii := range c.Items {
			item := &c.Items[ii]
			rawKey, ok := item.Key()
			if !ok {
				warnings = append(warnings, fmt.Errorf("collection %q, item %d: %w", c.Name, ii, domain.ErrMissingItemKey))
				continue
			}
			key := fmt.Sprint(rawKey)

			localized, err := localizedFields(item)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("collection %q, item %q: %w", c.Name, key, err))
			}

			for _, locale := range project.Locales {
				record := make(entities.Record, len(item.Data))
				for field, value := range item.Data {
					if field == entities.KeyField || field == entities.I18nField {
						continue
					}
					record[field] = value
				}
				for field, perLocale := range localized {
					record[field] = perLocale[locale]
				}
				table.Translation(locale)[c.Name][key] = record
			}
		}
	}
	return table, warnings
}

// localizedFields returns item.data.i18n as field -> locale -> value.
// A field whose translations are not an object resolves to nil in every
// locale.
func localizedFields(item *entities.Item) (map[string]map[string]any, error) {
	raw, ok := item.Data[entities.I18nField]
	if !ok || raw == nil {
		return nil, nil
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("i18n is %T, not an object: %w", raw, domain.ErrShape)
	}

	out := make(map[string]map[string]any, len(fields))
	var err error
	for field, v := range fields {
		perLocale, ok := v.(map[string]any)
		if !ok {
			if v != nil && err == nil {
				err = fmt.Errorf("i18n.%s is %T, not an object: %w", field, v, domain.ErrShape)
			}
			perLocale = nil
		}
		out[field] = perLocale
	}
	return out, err
}

// skippedCollections lists collections that cannot populate the locale table.
func skippedCollections(project *entities.Project) []string {
	var out []string
	for i := range project.Collections {
		if !project.Collections[i].HasKeyProperty() {
			out = append(out, project.Collections[i].Name)
		}
	}
	return out
}
