package domain

import (
	"regexp"
	"strings"
)

const maxFieldLen = 500

var (
	jsSchemeRe = regexp.MustCompile(`(?i)javascript:`)
	onAttrRe   = regexp.MustCompile(`(?i)on\w+=`)
)

// Sanitize normalizes free-text input before it is stored: trims whitespace,
// caps the length, and strips angle brackets and the common inline-script
// vectors.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxFieldLen {
		s = s[:maxFieldLen]
	}
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = jsSchemeRe.ReplaceAllString(s, "")
	s = onAttrRe.ReplaceAllString(s, "")
	return s
}
