package db

import (
	"errors"
	"strconv"
)

// IndexField describes one weighted TEXT field in an FT index schema.
// Weight orders field importance in relevance scoring; NoStem indexes the
// field without stemming (used by language profiles that tokenize only).
type IndexField struct {
	Name   string
	Weight float64
	NoStem bool
}

// IndexDefinition is a complete FT index definition used by FT.CREATE.
// Language, when set, selects the stemmer applied at index and query time.
type IndexDefinition struct {
	Name     string
	Prefixes []string
	Language string
	Fields   []IndexField
}

// Validate checks that the index definition is well-formed.
func (idx *IndexDefinition) Validate() error {
	if idx.Name == "" {
		return errors.New("index name is required")
	}
	if !IsValidIdentifier(idx.Name) {
		return errors.New("index name contains invalid characters")
	}
	if len(idx.Fields) == 0 {
		return errors.New("at least one field is required")
	}

	seen := make(map[string]bool)
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if seen[f.Name] {
			return errors.New("duplicate field name: " + f.Name)
		}
		seen[f.Name] = true

		if f.Weight < 0 {
			return errors.New("field weight must be non-negative: " + f.Name)
		}
	}

	return nil
}

// IsValidIdentifier returns true if s matches [a-zA-Z0-9_:-]+.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isSpecial := r == '_' || r == ':' || r == '-'
		if !isAlpha && !isDigit && !isSpecial {
			return false
		}
	}
	return true
}
