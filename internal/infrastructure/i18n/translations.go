package i18n

import (
	"embed"
	"errors"
	"fmt"
	"html"
	"maps"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var hostMessageFiles = []string{"active.en.toml", "active.de.toml"}

// Ensure the adapters implement the output ports.
var (
	_ output.LocalizationInitializer = (*Initializer)(nil)
	_ output.Localizer               = (*Translator)(nil)
)

// Initializer builds Translators from locale tables. Each Init call gets a
// fresh bundle, so independent instances never share state.
type Initializer struct {
	defaultLanguage language.Tag
	logger          *zap.SugaredLogger
}

// NewInitializer uses defaultLocale (e.g. "en") as the bundle's default
// language; an unparsable value falls back to English.
func NewInitializer(defaultLocale string, logger *zap.SugaredLogger) *Initializer {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	return &Initializer{
		defaultLanguage: tag,
		logger:          logger,
	}
}

// Init loads the embedded host messages and every string field of table
// into a go-i18n bundle. Field values are registered under the message ID
// "collection.key.field". A locale the bundle rejects stays available to
// Lookup.
func (in *Initializer) Init(table entities.LocaleTable, opts output.LocalizationOptions) (output.Localizer, error) {
	bundle := i18n.NewBundle(in.defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range hostMessageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			in.logger.Warnf("i18n: failed to load %s: %v", file, err)
		}
	}

	t := &Translator{
		bundle:          bundle,
		defaultLanguage: in.defaultLanguage,
		table:           entities.LocaleTable{},
		opts:            opts,
		logger:          in.logger,
	}

	locales := table.Locales()
	sort.Strings(locales)
	var tags []language.Tag
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			in.logger.Warnf("i18n: locale %q is not a valid language tag: %v", locale, err)
		}
		if !opts.LoadAll && (err != nil || tag != in.defaultLanguage) {
			continue
		}
		t.table[locale] = table[locale]
		if err != nil {
			continue
		}

		if err := bundle.AddMessages(tag, messagesFor(table.Translation(locale))...); err != nil {
			in.logger.Warnf("i18n: add messages for %s: %v", locale, err)
		}
		tags = append(tags, tag)
		t.matched = append(t.matched, locale)
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}

	return t, nil
}

// placeholder matches {{name}} and {{user.name}} style interpolation used
// by CMS authors.
var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\s*\}\}`)

// literalDelim never occurs in CMS text, so a message using it as delimiter
// is rendered verbatim.
const literalDelim = "\x00"

func messagesFor(ns entities.Namespace) []*i18n.Message {
	var msgs []*i18n.Message
	for collection, items := range ns {
		for key, record := range items {
			for field, v := range record {
				s, ok := v.(string)
				if !ok {
					continue
				}
				msgs = append(msgs, messageFor(collection+"."+key+"."+field, s))
			}
		}
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	return msgs
}

// messageFor converts CMS placeholders to template actions. Text that still
// is not a valid template is registered as a literal.
func messageFor(id, text string) *i18n.Message {
	converted := placeholder.ReplaceAllString(text, "{{.$1}}")
	if _, err := template.New(id).Parse(converted); err != nil {
		return &i18n.Message{
			ID:         id,
			Other:      text,
			LeftDelim:  literalDelim,
			RightDelim: literalDelim,
		}
	}
	return &i18n.Message{ID: id, Other: converted}
}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer plus the
// nested locale table for object lookups.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	table           entities.LocaleTable
	matcher         language.Matcher
	matched         []string
	opts            output.LocalizationOptions
	logger          *zap.SugaredLogger
}

func (t *Translator) Locales() []string {
	out := t.table.Locales()
	sort.Strings(out)
	return out
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		// go-i18n reports a default-language fallback as MessageNotFoundErr
		// while still returning the rendered message.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return t.escape(msg)
		}
		t.logger.Debugf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return t.escape(msg)
}

// Lookup walks "collection", "collection.key" or "collection.key.field" in
// the translation namespace of locale. Missing i18n values come back as nil
// without an error. Dots always separate segments; use Record for keys that
// contain one.
func (t *Translator) Lookup(locale, path string) (any, error) {
	resolved, ok := t.resolveLocale(locale)
	if !ok {
		return nil, fmt.Errorf("%q: %w", locale, domain.ErrUnknownLocale)
	}
	ns := t.table.Translation(resolved)

	parts := strings.SplitN(path, ".", 3)
	items, ok := ns[parts[0]]
	if !ok {
		return nil, fmt.Errorf("%q: %w", parts[0], domain.ErrUnknownCollection)
	}
	if len(parts) == 1 {
		if !t.opts.ReturnObjects {
			return nil, fmt.Errorf("%q: %w", path, domain.ErrNotLeaf)
		}
		out := make(map[string]entities.Record, len(items))
		for key, record := range items {
			out[key] = t.escapeRecord(record)
		}
		return out, nil
	}

	record, ok := items[parts[1]]
	if !ok {
		return nil, fmt.Errorf("%q: %w", parts[0]+"."+parts[1], domain.ErrUnknownKey)
	}
	if len(parts) == 2 {
		if !t.opts.ReturnObjects {
			return nil, fmt.Errorf("%q: %w", path, domain.ErrNotLeaf)
		}
		return t.escapeRecord(record), nil
	}

	v, ok := record[parts[2]]
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, domain.ErrUnknownKey)
	}
	if s, isString := v.(string); isString {
		return t.escape(s), nil
	}
	return v, nil
}

// Record returns the record of collection/key for locale. Unlike Lookup it
// takes the key verbatim, so keys containing dots resolve too.
func (t *Translator) Record(locale, collection, key string) (entities.Record, error) {
	resolved, ok := t.resolveLocale(locale)
	if !ok {
		return nil, fmt.Errorf("%q: %w", locale, domain.ErrUnknownLocale)
	}
	items, ok := t.table.Translation(resolved)[collection]
	if !ok {
		return nil, fmt.Errorf("%q: %w", collection, domain.ErrUnknownCollection)
	}
	record, ok := items[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", collection+"."+key, domain.ErrUnknownKey)
	}
	return t.escapeRecord(record), nil
}

// resolveLocale maps a requested locale onto a table locale: exact match
// first, then the closest language match (e.g. "de-DE" -> "de").
func (t *Translator) resolveLocale(locale string) (string, bool) {
	if locale == "" {
		locale = t.defaultLanguage.String()
	}
	if _, ok := t.table[locale]; ok {
		return locale, true
	}
	if t.matcher == nil {
		return "", false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return t.matched[idx], true
}

func (t *Translator) escape(s string) string {
	if !t.opts.EscapeValue {
		return s
	}
	return html.EscapeString(s)
}

func (t *Translator) escapeRecord(record entities.Record) entities.Record {
	out := maps.Clone(record)
	if !t.opts.EscapeValue {
		return out
	}
	for field, v := range out {
		if s, ok := v.(string); ok {
			out[field] = html.EscapeString(s)
		}
	}
	return out
}
