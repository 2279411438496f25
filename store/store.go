// Package store implements the in-memory representation of one localization
// dataset: an ordered mapping from a unique string key to a JSON value.
//
// The expected file format is a single top-level JSON object:
//
//	{
//	    "你好": "你好",
//	    "menu.title": "开始游戏"
//	}
//
// Values are carried through as raw JSON — they may be plain strings or
// nested structures, the pipeline never interprets them. Key order from the
// source file is preserved so that chunk boundaries are reproducible.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is an ordered key→value mapping for one localization dataset.
type Store struct {
	keys   []string
	values map[string]json.RawMessage
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]json.RawMessage)}
}

// ParseFile reads and parses a dataset file.
func ParseFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a top-level JSON object into a store, preserving key order.
// Values are compacted so that size estimates do not depend on the source
// file's whitespace.
func Parse(data []byte) (*Store, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", t)
	}

	s := New()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %T", kt)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing value for key %q: %w", key, err)
		}
		s.Set(key, raw)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return s, nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.keys)
}

// Keys returns the keys in their original order. The returned slice is
// shared; callers must not modify it.
func (s *Store) Keys() []string {
	return s.keys
}

// Get returns the value for a key and whether it exists.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set inserts or replaces a value. New keys are appended to the order;
// existing keys keep their position. The value is compacted.
func (s *Store) Set(key string, value json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err == nil {
		value = json.RawMessage(buf.String())
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Merge appends all entries of other into s. Keys already present in s are
// overwritten in place; chunk results partition disjoint key sets, so in
// practice no collision occurs.
func (s *Store) Merge(other *Store) {
	for _, k := range other.keys {
		s.Set(k, other.values[k])
	}
}

// EntrySize returns the serialized byte size of the entry wrapped alone as
// {"key":value}, accounting for the structural overhead an entry carries in
// a request payload. Pure: same input always yields the same size.
func EntrySize(key string, value json.RawMessage) int {
	return len(jsonString(key)) + len(value) + 3 // braces + colon
}

// Size returns the serialized byte size of the whole store in compact form.
func (s *Store) Size() int {
	n := 2 // braces
	for i, k := range s.keys {
		if i > 0 {
			n++ // comma
		}
		n += len(jsonString(k)) + 1 + len(s.values[k])
	}
	return n
}

// Marshal produces the JSON output with 2-space indentation, preserving key
// order and leaving non-ASCII text unescaped.
func (s *Store) Marshal() ([]byte, error) {
	var b strings.Builder
	b.WriteString("{\n")
	for i, k := range s.keys {
		b.WriteString("  ")
		b.WriteString(jsonString(k))
		b.WriteString(": ")
		if err := writeIndented(&b, s.values[k], "  "); err != nil {
			return nil, fmt.Errorf("encoding value for key %q: %w", k, err)
		}
		if i < len(s.keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

// WriteFile writes the store to disk, creating parent directories as needed.
func (s *Store) WriteFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// writeIndented re-indents a compact raw value so nested structures line up
// under their key.
func writeIndented(b *strings.Builder, value json.RawMessage, prefix string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, value, prefix, "  "); err != nil {
		return err
	}
	b.Write(buf.Bytes())
	return nil
}

// jsonString returns a JSON-encoded string value (with proper escaping).
// Printable non-ASCII text stays unescaped; control characters get \uXXXX
// escapes.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimRight(buf.String(), "\n")
}
