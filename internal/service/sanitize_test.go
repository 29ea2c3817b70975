package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  Buy milk  ", "Buy milk"},
		{"strips control characters", "Buy\x00 milk\x1b", "Buy milk"},
		{"keeps newline and tab", "line one\nline\ttwo", "line one\nline\ttwo"},
		{"strips delete", "abc\x7fdef", "abcdef"},
		{"whitespace only", " \t \n ", ""},
		{"control only", "\x00\x01\x02", ""},
		{"unicode preserved", "Résumé 日本語", "Résumé 日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	clean, err := SanitizeTitle("  Buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", clean)
}

func TestSanitizeTitle_EmptyAfterSanitization(t *testing.T) {
	for _, in := range []string{"", "   ", "\x00\x1f", " \t\n "} {
		_, err := SanitizeTitle(in)
		assert.ErrorIs(t, err, ErrEmptyTitle, "input %q", in)
	}
}

func TestSanitizeTitle_TooLong(t *testing.T) {
	_, err := SanitizeTitle(strings.Repeat("a", 201))
	assert.ErrorIs(t, err, ErrTitleTooLong)

	// Exactly at the limit is fine, and the limit counts runes.
	_, err = SanitizeTitle(strings.Repeat("a", 200))
	assert.NoError(t, err)
	_, err = SanitizeTitle(strings.Repeat("日", 200))
	assert.NoError(t, err)
}

func TestSanitizeDescription(t *testing.T) {
	desc, err := SanitizeDescription("  some details ")
	require.NoError(t, err)
	require.NotNil(t, desc)
	assert.Equal(t, "some details", *desc)
}

func TestSanitizeDescription_EmptyBecomesNil(t *testing.T) {
	desc, err := SanitizeDescription("   ")
	require.NoError(t, err)
	assert.Nil(t, desc)
}

func TestSanitizeDescription_TooLong(t *testing.T) {
	_, err := SanitizeDescription(strings.Repeat("a", 1001))
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}
