package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"voicecms/internal/domain"
)

type keyTranslator struct{}

func (keyTranslator) T(locale, key string, _ map[string]any) string {
	return locale + ":" + key
}

func TestDomainErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: fmt.Errorf("%q: %w", "x", domain.ErrUnknownCollection), want: "de:error_unknown_collection"},
		{err: domain.ErrUnknownKey, want: "de:error_unknown_key"},
		{err: domain.ErrNotInitialized, want: "de:error_not_initialized"},
		{err: domain.ErrTransport, want: "de:error_generic"},
		{err: errors.New("other"), want: "de:error_generic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DomainErrorMessage(keyTranslator{}, "de", tt.err), "%v", tt.err)
	}
}
