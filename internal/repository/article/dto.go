package article

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// Hash field names. title/content/author/category are also the FT schema
// fields; timestamps are stored but not indexed.
const (
	fieldTitle        = "title"
	fieldContent      = "content"
	fieldAuthor       = "author"
	fieldCategory     = "category"
	fieldPublishedAt  = "published_at"
	fieldLastModified = "last_modified"
)

// buildHashFields converts a domain Article into a flat map for HSET.
func buildHashFields(a *domart.Article) map[string]string {
	return map[string]string{
		fieldTitle:        a.Title(),
		fieldContent:      a.Content(),
		fieldAuthor:       a.Author(),
		fieldCategory:     a.Category(),
		fieldPublishedAt:  a.PublishedAt().UTC().Format(time.RFC3339),
		fieldLastModified: a.LastModified().UTC().Format(time.RFC3339),
	}
}

// parseHashFields converts a flat hash map back into a domain Article.
func parseHashFields(id int, m map[string]string) domart.Article {
	return domart.Reconstruct(
		id,
		m[fieldTitle],
		m[fieldContent],
		m[fieldAuthor],
		m[fieldCategory],
		parseTime(m[fieldPublishedAt]),
		parseTime(m[fieldLastModified]),
	)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func articleKey(p language.Profile, id int) string {
	return p.ArticleKeyPrefix() + strconv.Itoa(id)
}

func extractID(key string, p language.Profile) (int, error) {
	raw := strings.TrimPrefix(key, p.ArticleKeyPrefix())
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("malformed article key %q: %w", key, err)
	}
	return id, nil
}
