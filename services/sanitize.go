package services

import "strings"

// StripTags removes anything that looks like markup from s: every maximal
// run starting at '<' and ending at the next '>' is dropped, and a dangling
// '<' with no closing '>' takes the rest of the string with it.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Sanitize applies the standard free-text input treatment: trim surrounding
// whitespace, strip markup, then truncate to max runes.
func Sanitize(s string, max int) string {
	s = StripTags(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) > max {
		s = string(runes[:max])
	}
	return strings.TrimSpace(s)
}
