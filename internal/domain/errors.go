package domain

import "errors"

// Domain errors.
var (
	ErrTransport          = errors.New("cms request failed")
	ErrShape              = errors.New("unexpected project document shape")
	ErrMissingKeyProperty = errors.New("collection has no 'key' property")
	ErrMissingItemKey     = errors.New("item has no key value")
	ErrUnknownCollection  = errors.New("unknown collection")
	ErrUnknownKey         = errors.New("unknown item key")
	ErrUnknownLocale      = errors.New("unknown locale")
	ErrNotInitialized     = errors.New("localization not initialized")
	ErrNotLeaf            = errors.New("lookup resolves to an object")
	ErrReservedSlot       = errors.New("reserved or empty content slot name")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrTransport, "transport"},
	{ErrShape, "shape"},
	{ErrMissingKeyProperty, "missing_key_property"},
	{ErrMissingItemKey, "missing_item_key"},
	{ErrUnknownCollection, "unknown_collection"},
	{ErrUnknownKey, "unknown_key"},
	{ErrUnknownLocale, "unknown_locale"},
	{ErrNotInitialized, "not_initialized"},
	{ErrNotLeaf, "not_leaf"},
	{ErrReservedSlot, "reserved_slot"},
}

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
