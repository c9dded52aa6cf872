package sitecontent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name     string
		field    map[string]any
		locale   string
		expected any
	}{
		{
			name:     "requested locale wins",
			field:    map[string]any{"en-US": "hello", "de-DE": "hallo"},
			locale:   "de-DE",
			expected: "hallo",
		},
		{
			name:     "falls back to default locale",
			field:    map[string]any{"en-US": "hello"},
			locale:   "de-DE",
			expected: "hello",
		},
		{
			name:     "falls back to first key in sorted order",
			field:    map[string]any{"fr-FR": "bonjour", "es-ES": "hola"},
			locale:   "de-DE",
			expected: "hola",
		},
		{
			name:     "empty map yields nil",
			field:    map[string]any{},
			locale:   "en-US",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sitecontent.ResolveLocale(tt.field, tt.locale, sitecontent.DefaultLocale)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsLocalized(t *testing.T) {
	assert.True(t, sitecontent.IsLocalized(map[string]any{"en-US": "x"}, "de-DE", "en-US"))
	assert.True(t, sitecontent.IsLocalized(map[string]any{"de-DE": "x"}, "de-DE", "en-US"))
	assert.False(t, sitecontent.IsLocalized(map[string]any{"nodeType": "document"}, "de-DE", "en-US"))
	assert.False(t, sitecontent.IsLocalized(map[string]any{}, "de-DE", "en-US"))
}
