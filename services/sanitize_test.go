package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello", StripTags("hello"))
	assert.Equal(t, "boldtext", StripTags("<b>bold</b>text"))
	assert.Equal(t, "alert", StripTags("<script>x</script>alert"))
	assert.Equal(t, "before", StripTags("before<unclosed tag runs to end"))
	assert.Equal(t, "", StripTags("<only><tags></tags></only>"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "django", Sanitize("  django  ", 100))
	assert.Equal(t, "search term", Sanitize("<em>search</em> term", 100))
	assert.Equal(t, "", Sanitize("   ", 100))

	long := strings.Repeat("a", 150)
	assert.Len(t, Sanitize(long, 100), 100)
}
