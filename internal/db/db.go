// Package db defines the storage facade implemented by the redis backend.
// Consumers depend on the narrow sub-interfaces they need.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashStore
	Sequencer
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Sequencer allocates monotonically increasing identifiers.
type Sequencer interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides ranked full-text search over FT indexes.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}

// Summary configures server-side excerpt extraction for one field: the
// returned field value is replaced by highlighted fragments around the
// matched terms.
type Summary struct {
	Field    string
	OpenTag  string
	CloseTag string
	Words    int // fragment word budget
}

// TextQuery is the input for a ranked text search.
type TextQuery struct {
	IndexName string
	Query     string // conjunctive engine syntax, already escaped
	Limit     int
	Summary   *Summary
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
