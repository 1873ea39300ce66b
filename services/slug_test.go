package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My Cool App", "my-cool-app"},
		{"Django + React Dashboard", "django-react-dashboard"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER", "upper"},
		{"already-slugged", "already-slugged"},
		{"trailing punctuation!!!", "trailing-punctuation"},
		{"2048 Game", "2048-game"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "/projects/42/my-cool-app/", ProjectPath(42, "my-cool-app"))
}
