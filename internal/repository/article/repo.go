// Package article persists articles as per-language hashes. The FT index
// observes every HSET, so a create or update is visible to the next search
// without an explicit reindex step.
package article

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/articledex/internal/domain"
	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// store is the consumer interface for article persistence.
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Repo implements usecase/article.Repository.
type Repo struct {
	store store
}

// New creates an article repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create allocates an identifier and stores the article. Returns the
// stored article with its identifier set.
func (r *Repo) Create(ctx context.Context, p language.Profile, a *domart.Article) (domart.Article, error) {
	id, err := r.store.Incr(ctx, p.CounterKey())
	if err != nil {
		return domart.Article{}, fmt.Errorf("allocate id: %w", err)
	}

	stored := a.WithID(int(id))
	if err := r.store.HSet(ctx, articleKey(p, stored.ID()), buildHashFields(&stored)); err != nil {
		return domart.Article{}, fmt.Errorf("hset %s: %w", articleKey(p, stored.ID()), err)
	}
	return stored, nil
}

// Update overwrites an existing article in place.
func (r *Repo) Update(ctx context.Context, p language.Profile, a *domart.Article) error {
	key := articleKey(p, a.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrArticleNotFound
	}

	touched := a.Touched()
	if err := r.store.HSet(ctx, key, buildHashFields(&touched)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns an article by identifier.
func (r *Repo) Get(ctx context.Context, p language.Profile, id int) (domart.Article, error) {
	key := articleKey(p, id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domart.Article{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domart.Article{}, domain.ErrArticleNotFound
	}
	return parseHashFields(id, m), nil
}

// GetAll returns every article of the profile, newest publication first.
func (r *Repo) GetAll(ctx context.Context, p language.Profile) ([]domart.Article, error) {
	keys, err := r.store.Scan(ctx, p.ArticleKeyPrefix()+"*")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", p.Code(), err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch %s articles: %w", p.Code(), err)
	}

	articles := make([]domart.Article, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		id, err := extractID(keys[i], p)
		if err != nil {
			continue
		}
		articles = append(articles, parseHashFields(id, m))
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt().After(articles[j].PublishedAt())
	})

	return articles, nil
}

// Delete removes an article.
func (r *Repo) Delete(ctx context.Context, p language.Profile, id int) error {
	key := articleKey(p, id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrArticleNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}
