package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// Sanitize strips control characters (keeping newline and tab) and trims
// surrounding whitespace. Validation always runs on the sanitized form.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func SanitizeTitle(title string) (string, error) {
	clean := Sanitize(title)
	if clean == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(clean) > maxTitleLen {
		return "", ErrTitleTooLong
	}
	return clean, nil
}

// SanitizeDescription reduces an empty sanitized description to nil rather
// than rejecting it.
func SanitizeDescription(description string) (*string, error) {
	clean := Sanitize(description)
	if clean == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(clean) > maxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}
	return &clean, nil
}
