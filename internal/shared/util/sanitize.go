package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName removes path separators and rejects traversal segments.
// Dots inside a name, as in "resume..v2.pdf", are allowed.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	for _, seg := range strings.FieldsFunc(s, isPathSeparator) {
		if strings.TrimSpace(seg) == ".." {
			return "", errInvalidFileName
		}
	}
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errInvalidFileName
	}
	return s, nil
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
