package services

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify derives the canonical URL slug from a project title: lowercase,
// keep letters and digits, collapse every other run of characters into a
// single hyphen, and trim hyphens from both ends.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// ProjectPath is the canonical detail path for a project.
func ProjectPath(id uint, slug string) string {
	return fmt.Sprintf("/projects/%d/%s/", id, slug)
}
