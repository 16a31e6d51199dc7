package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"cnab.software/bundle/canonjson"
)

// FromFile reads and decodes the bundle descriptor at path.
//
// The document is first decoded as canonical JSON. If that fails only
// because it contains insignificant whitespace (hand-edited and
// pretty-printed descriptors are common in the wild), it is decoded once
// more as ordinary JSON and that outcome is final. Any other canonical
// failure is returned without a retry, so genuine structural errors are not
// masked behind a second, differently worded failure.
//
// Failures are reported as *ParseError: KindIO when the file cannot be read
// (no parse is attempted), KindCanonical for non-whitespace canonical
// failures, KindJSON when the permissive retry fails.
func FromFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError(err)
	}
	return decode(data)
}

// FromString decodes a bundle descriptor from text, applying the same
// canonical-then-permissive policy as FromFile.
func FromString(text string) (*Bundle, error) {
	return decode([]byte(text))
}

// FromYAML decodes a YAML rendition of a bundle descriptor. YAML has no
// canonical form, so the document always takes the permissive path and
// failures are of KindJSON.
func FromYAML(data []byte) (*Bundle, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, newJSONError(fmt.Errorf("failed to convert descriptor to JSON: %w", err))
	}
	b, err := decodeLenient(raw)
	if err != nil {
		return nil, newJSONError(err)
	}
	return b, nil
}

// decode is the canonical-or-lenient pipeline shared by every entry point.
func decode(data []byte) (*Bundle, error) {
	b, err := decodeCanonical(data)
	if err == nil {
		return b, nil
	}
	var syntaxErr *canonjson.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Code == canonjson.CodeUnexpectedWhitespace {
		b, err := decodeLenient(data)
		if err != nil {
			return nil, newJSONError(err)
		}
		return b, nil
	}
	return nil, newCanonicalError(err)
}

// decodeCanonical insists on canonical form before trusting the document.
func decodeCanonical(data []byte) (*Bundle, error) {
	if err := canonjson.Verify(data); err != nil {
		return nil, err
	}
	return decodeLenient(data)
}

// decodeLenient accepts any well-formed JSON document that matches the
// descriptor schema.
func decodeLenient(data []byte) (*Bundle, error) {
	if err := ValidateRaw(data); err != nil {
		return nil, err
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal descriptor: %w", err)
	}
	return &b, nil
}
