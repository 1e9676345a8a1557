package discord

import (
	"voicecms/internal/domain"
	"voicecms/internal/ports/output"
)

// DomainErrorMessage resolves err to a user-facing message in locale. Known
// domain errors map to "error_<code>" messages, anything else to
// "error_generic".
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	switch code := domain.Code(err); code {
	case "unknown_collection", "unknown_key", "unknown_locale", "not_initialized", "not_leaf":
		return t.T(locale, "error_"+code, nil)
	default:
		return t.T(locale, "error_generic", nil)
	}
}
