package analyses

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-engine/internal/shared/util"
)

var (
	ErrEmptyText       = errors.New("text is empty")
	ErrTextTooShort    = errors.New("text is too short")
	ErrTextTooLarge    = errors.New("text is too large")
	ErrInvalidFileName = errors.New("invalid file name")
)

// Limits bound the input accepted at the transport boundary. The engine
// itself accepts anything.
type Limits struct {
	MinChars int
	MaxBytes int
}

// DefaultLimits mirrors the configuration defaults.
var DefaultLimits = Limits{MinChars: 50, MaxBytes: 200000}

// ValidateInput checks text against limits and returns the sanitized file
// name. An empty file name is allowed and simply earns the extension
// deduction.
func ValidateInput(text, fileName string, limits Limits) (string, error) {
	if limits.MaxBytes > 0 && len(text) > limits.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrTextTooLarge, len(text), limits.MaxBytes)
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	if n := utf8.RuneCountInString(trimmed); n < limits.MinChars {
		return "", fmt.Errorf("%w: %d characters, need at least %d", ErrTextTooShort, n, limits.MinChars)
	}
	if strings.TrimSpace(fileName) == "" {
		return "", nil
	}
	clean, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFileName, err)
	}
	return clean, nil
}
