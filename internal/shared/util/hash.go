package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns a stable hex identifier for text scored under version.
// Identical inputs always produce the same identifier.
func ContentHash(text, version string) string {
	sum := sha256.Sum256([]byte(text + "|" + version))
	return hex.EncodeToString(sum[:])
}
