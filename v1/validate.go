package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"sigs.k8s.io/yaml"
)

// JSONSchema contains the embedded JSON schema for validating bundle
// descriptors. It encodes the required/optional field table of the bundle
// schema; parameter value constraints (bounds, pattern, enum) are carried as
// data, not enforced here.
//
//go:embed resources/bundle-schema-2020-12.json
var JSONSchema []byte

// GetJSONSchema is a singleton that compiles the JSON schema once and caches
// it for reuse.
var GetJSONSchema = sync.OnceValues[*jsonschema.Schema, error](func() (*jsonschema.Schema, error) {
	return compile(JSONSchema)
})

// compile takes raw JSON schema data and compiles it into a
// jsonschema.Schema object.
func compile(data []byte) (*jsonschema.Schema, error) {
	const schemaFile = "resources/bundle-schema-2020-12.json"
	c := jsonschema.NewCompiler()
	unmarshaler, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}
	if err := c.AddResource(schemaFile, unmarshaler); err != nil {
		return nil, fmt.Errorf("failed to add schema: %w", err)
	}
	sch, err := c.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return sch, nil
}

// Validate checks that the given bundle conforms to the descriptor schema.
// It marshals the bundle to JSON and validates it against the schema.
func Validate(b *Bundle) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	return ValidateRaw(raw)
}

// ValidateRaw validates a raw JSON document against the descriptor schema.
// A missing required field (name, schemaVersion, version, invocationImages,
// a parameter's type or destination, ...) fails here; an absent optional
// field never does.
func ValidateRaw(raw []byte) error {
	mm := map[string]any{}
	if err := json.Unmarshal(raw, &mm); err != nil {
		return fmt.Errorf("failed to unmarshal descriptor: %w", err)
	}

	schema, err := GetJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to get schema: %w", err)
	}

	return schema.Validate(mm)
}

// ValidateRawYAML validates a YAML rendition of a descriptor against the
// schema.
func ValidateRawYAML(raw []byte) error {
	mm := map[string]any{}
	if err := yaml.Unmarshal(raw, &mm); err != nil {
		return fmt.Errorf("failed to unmarshal descriptor: %w", err)
	}

	schema, err := GetJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to get schema: %w", err)
	}

	return schema.Validate(mm)
}
