package entities

// Reserved item data fields.
const (
	KeyField  = "key"
	I18nField = "i18n"
)

// Project is the CMS document fetched for one setup pass: the declared
// locales and every collection with its items.
type Project struct {
	Locales     []string
	Collections []Collection
}

// Collection is a named group of items sharing a property schema.
type Collection struct {
	Name       string
	Properties []Property
	Items      []Item
}

// HasKeyProperty reports whether the collection declares a "key" property.
func (c *Collection) HasKeyProperty() bool {
	for _, p := range c.Properties {
		if p.IsKeyField {
			return true
		}
	}
	return false
}

// Property describes one column of a collection. The flags are resolved
// once when the wire document is decoded.
type Property struct {
	Name        string
	IsKeyField  bool
	IsLocalized bool
}

// Item is one record within a collection. ID is the CMS-internal identifier
// and never leaves the fetcher's output.
type Item struct {
	ID   string
	Data map[string]any
}

// Key returns the value stored under the key field, if any.
func (i *Item) Key() (any, bool) {
	v, ok := i.Data[KeyField]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
