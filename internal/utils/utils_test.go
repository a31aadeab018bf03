package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineFileType(t *testing.T) {
	tests := map[string]string{
		"landing-page.html": "HTML",
		"INDEX.HTM":         "HTML",
		"site/style.css":    "CSS",
		"signals.yaml":      "YAML",
		"logo.webp":         "Image",
		"Makefile":          "Unknown",
	}
	for name, want := range tests {
		assert.Equal(t, want, DetermineFileType(name), name)
	}
}

func TestSafeJoin(t *testing.T) {
	dir := filepath.Join("out", "site")

	got, ok := SafeJoin(dir, "pages/landing-page.html")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "pages", "landing-page.html"), got)

	for _, bad := range []string{"", ".", "..", "../escape.html", "a/../../escape.html", "/etc/passwd"} {
		_, ok := SafeJoin(dir, bad)
		assert.False(t, ok, bad)
	}
}
