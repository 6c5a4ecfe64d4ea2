// Package search executes ranked queries against the per-language FT
// index and hydrates hits into domain results.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/articledex/internal/db"
	"github.com/kailas-cloud/articledex/internal/domain/language"
	"github.com/kailas-cloud/articledex/internal/domain/search/query"
	"github.com/kailas-cloud/articledex/internal/domain/search/result"
)

// Highlight markers wrapped around matched terms in excerpts.
const (
	OpenMark  = "<mark>"
	CloseMark = "</mark>"
)

// store is the consumer interface for ranked search.
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
}

// Repo implements usecase/search.Engine.
type Repo struct {
	store        store
	summaryWords int
}

// New creates a search repository. summaryWords bounds the excerpt word
// budget the engine applies around matches.
func New(s store, summaryWords int) *Repo {
	return &Repo{store: s, summaryWords: summaryWords}
}

// Search runs the weighted term query for one language profile and
// returns at most limit hits ordered by descending relevance. The excerpt
// of each hit carries the engine's highlighted content fragment; the full
// content is fetched in a second pipelined pass.
func (r *Repo) Search(
	ctx context.Context, p language.Profile, terms query.TermSet, limit int,
) ([]result.Result, error) {
	q := &db.TextQuery{
		IndexName: p.IndexName(),
		Query:     terms.EngineQuery(),
		Limit:     limit,
		Summary: &db.Summary{
			Field:    "content",
			OpenTag:  OpenMark,
			CloseTag: CloseMark,
			Words:    r.summaryWords,
		},
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", p.Code(), err)
	}
	if sr == nil || len(sr.Entries) == 0 {
		return nil, nil
	}

	// Summarize replaces the returned content with the excerpt, so the
	// full bodies come from a second pipelined fetch of the hit keys.
	keys := make([]string, len(sr.Entries))
	for i, e := range sr.Entries {
		keys[i] = e.Key
	}
	full, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hydrate %s hits: %w", p.Code(), err)
	}

	results := make([]result.Result, 0, len(sr.Entries))
	for i, entry := range sr.Entries {
		id, err := extractID(entry.Key, p)
		if err != nil {
			continue
		}
		results = append(results, buildResult(id, entry, full[i]))
	}

	return results, nil
}

// buildResult merges a search hit (score + highlighted excerpt) with the
// hydrated article fields.
func buildResult(id int, entry db.SearchEntry, full map[string]string) result.Result {
	excerpt := entry.Fields["content"]

	content := excerpt
	var title, author, category string
	var published time.Time
	if full != nil {
		content = full["content"]
		title = full["title"]
		author = full["author"]
		category = full["category"]
		published = parseTime(full["published_at"])
	}
	if title == "" {
		title = entry.Fields["title"]
	}

	return result.New(id, title, content, author, category, published, entry.Score, excerpt)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func extractID(key string, p language.Profile) (int, error) {
	raw := strings.TrimPrefix(key, p.ArticleKeyPrefix())
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("malformed hit key %q: %w", key, err)
	}
	return id, nil
}
