package v1

import (
	"fmt"
	"os"

	"cnab.software/bundle/canonjson"
)

// CanonicalMarshal encodes the bundle in canonical JSON form: object keys
// sorted lexicographically, no insignificant whitespace, canonical number
// representation. The output decodes via the canonical path of FromString.
func CanonicalMarshal(b *Bundle) ([]byte, error) {
	return canonjson.Marshal(b)
}

// WriteFile writes the bundle to path in canonical JSON form.
func WriteFile(b *Bundle, path string, perm os.FileMode) error {
	data, err := CanonicalMarshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}
	return os.WriteFile(path, data, perm)
}
