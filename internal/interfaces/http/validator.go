package http

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input validation constants
const (
	MaxUsernameLength = 50
	MaxMessageLength  = 4000
	MaxPatternLength  = 2000
	MaxResponseLength = 10000
	MaxSettingKeyLen  = 64
	MaxSettingValLen  = 5000
)

// ValidSlug checks if a slug is safe (alphanumeric + underscore + hyphen)
func ValidSlug(s string) bool {
	if s == "" || len(s) > MaxUsernameLength {
		return false
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_-]+$`, s)
	return matched
}

// ValidSettingKey checks if a widget setting key is safe
func ValidSettingKey(s string) bool {
	if s == "" || len(s) > MaxSettingKeyLen {
		return false
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_]+$`, s)
	return matched
}

// SanitizeString removes null bytes and control characters
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")

	// Keep only valid UTF-8
	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				v = append(v, r)
			}
		}
		s = string(v)
	}
	return s
}

// TruncateString safely truncates a string to max length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// ValidateLength checks if string is within bounds
func ValidateLength(s string, min, max int) bool {
	l := len(s)
	return l >= min && l <= max
}
