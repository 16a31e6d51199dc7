// Package orderedmap provides a string-keyed associative container whose
// iteration and JSON encoding always follow lexicographic key order.
//
// Canonical JSON requires deterministic, sorted object keys; a plain Go map
// cannot guarantee that, so every mapping-typed descriptor field uses this
// container instead.
package orderedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// Map is a string-keyed map sorted by key. The zero value is ready to use.
type Map[V any] struct {
	tree btree.Map[string, V]
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Set inserts or replaces the value stored under key.
func (m *Map[V]) Set(key string, value V) {
	m.tree.Set(key, value)
}

// Get returns the value stored under key and whether it is present.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.tree.Get(key)
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	_, ok := m.tree.Delete(key)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.tree.Len()
}

// Keys returns all keys in lexicographic order.
func (m *Map[V]) Keys() []string {
	return m.tree.Keys()
}

// All iterates over the entries in lexicographic key order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		m.tree.Scan(func(key string, value V) bool {
			return yield(key, value)
		})
	}
}

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Map[any]{}

// MarshalJSON encodes the map as a JSON object with keys in lexicographic
// order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	m.tree.Scan(func(key string, value V) bool {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		var encoded []byte
		if encoded, err = json.Marshal(key); err != nil {
			return false
		}
		buf.Write(encoded)
		buf.WriteByte(':')
		if encoded, err = json.Marshal(value); err != nil {
			return false
		}
		buf.Write(encoded)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map. Source key order is
// irrelevant; entries are stored sorted.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("could not read map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	m.tree.Clear()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("could not read map key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("could not decode value for key %q: %w", key, err)
		}
		m.tree.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("could not read end of map: %w", err)
	}
	return nil
}
