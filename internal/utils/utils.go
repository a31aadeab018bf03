package utils

import (
	"path/filepath"
	"strings"
)

// DetermineFileType maps a filename to a display type for GeneratedFile.Type.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	switch filepath.Ext(lowerFilename) {
	case ".html", ".htm":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".txt":
		return "Text"
	case ".yaml", ".yml":
		return "YAML"
	case ".svg":
		return "SVG"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		return "Unknown"
	}
}

// SafeJoin joins name onto dir and reports false if the result would land
// outside dir.
func SafeJoin(dir, name string) (string, bool) {
	if name == "" || filepath.IsAbs(name) {
		return "", false
	}
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(dir, cleaned), true
}
