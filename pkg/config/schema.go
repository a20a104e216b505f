package config

import (
	_ "embed"
	"fmt"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/schema.toml
var schemaContent []byte

// Type is the value type of a setting
type Type string

const (
	TypeString Type = "string"
	TypeBool   Type = "bool"
	TypeInt    Type = "int"
)

// Entry describes one setting
type Entry struct {
	Key     string `toml:"key"`
	Type    Type   `toml:"type"`
	Default string `toml:"default"`
	Help    string `toml:"help"`
}

// Documented reports whether the entry is read from and written to the config
// file. Entries without help text are runtime-only.
func (e Entry) Documented() bool {
	return e.Help != ""
}

// Schema is the immutable set of known settings, in file order
type Schema struct {
	entries []Entry
	index   map[string]int
}

type schemaFile struct {
	Settings []Entry `toml:"setting"`
}

// ParseSchema decodes a TOML schema document
func ParseSchema(data []byte) (*Schema, error) {
	var file schemaFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrSchemaParse, "failed to decode settings schema")
	}

	s := &Schema{
		entries: make([]Entry, 0, len(file.Settings)),
		index:   make(map[string]int, len(file.Settings)),
	}
	for _, e := range file.Settings {
		if e.Key == "" {
			return nil, errors.New(errors.ErrSchemaParse, "setting without a key")
		}
		if _, dup := s.index[e.Key]; dup {
			return nil, errors.Newf(errors.ErrSchemaParse, "duplicate setting %q", e.Key).
				WithDetail("key", e.Key)
		}
		switch e.Type {
		case TypeString:
		case TypeBool:
			if !IsBool(e.Default) {
				return nil, errors.Newf(errors.ErrSchemaParse, "bad default for bool setting %q: %q", e.Key, e.Default).
					WithDetail("key", e.Key)
			}
		case TypeInt:
			if _, err := parseInt32(e.Default); err != nil {
				return nil, errors.Newf(errors.ErrSchemaParse, "bad default for int setting %q: %q", e.Key, e.Default).
					WithDetail("key", e.Key)
			}
		default:
			return nil, errors.Newf(errors.ErrSchemaParse, "unknown type %q for setting %q", e.Type, e.Key).
				WithDetail("key", e.Key)
		}
		s.index[e.Key] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// MustLoadSchema returns the embedded schema and panics if it is malformed
func MustLoadSchema() *Schema {
	s, err := ParseSchema(schemaContent)
	if err != nil {
		panic(fmt.Sprintf("embedded settings schema: %v", err))
	}
	return s
}

// DefaultSchema is the embedded schema, decoded at init
var DefaultSchema = MustLoadSchema()

// Known reports whether key is a setting of any type
func (s *Schema) Known(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Documented reports whether key is a file-visible setting
func (s *Schema) Documented(key string) bool {
	e, ok := s.Lookup(key)
	return ok && e.Documented()
}

// Describe returns the help text of key
func (s *Schema) Describe(key string) (string, bool) {
	e, ok := s.Lookup(key)
	if !ok {
		return "", false
	}
	return e.Help, true
}

func (s *Schema) Lookup(key string) (Entry, bool) {
	i, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns a copy of all entries in file order
func (s *Schema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Keys returns the keys of the given type, in file order
func (s *Schema) Keys(t Type) []string {
	var keys []string
	for _, e := range s.entries {
		if e.Type == t {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
