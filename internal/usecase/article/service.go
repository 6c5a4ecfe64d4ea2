// Package article implements article CRUD and category listing per
// language profile.
package article

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/articledex/internal/domain"
	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// Service handles article lifecycle operations.
type Service struct {
	repo Repository
}

// New creates an article service. repo may be nil when the store is not
// configured; every operation then fails with domain.ErrStoreUnavailable.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new article.
func (s *Service) Create(
	ctx context.Context, p language.Profile, title, content, author, category string,
) (domart.Article, error) {
	if s.repo == nil {
		return domart.Article{}, domain.ErrStoreUnavailable
	}

	a, err := domart.New(title, content, author, category)
	if err != nil {
		return domart.Article{}, fmt.Errorf("%w: %w", domain.ErrInvalidArticle, err)
	}

	created, err := s.repo.Create(ctx, p, &a)
	if err != nil {
		return domart.Article{}, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Update replaces the mutable fields of an existing article.
func (s *Service) Update(
	ctx context.Context, p language.Profile, id int, title, content, author, category string,
) (domart.Article, error) {
	if s.repo == nil {
		return domart.Article{}, domain.ErrStoreUnavailable
	}

	current, err := s.repo.Get(ctx, p, id)
	if err != nil {
		return domart.Article{}, fmt.Errorf("get article %d: %w", id, err)
	}

	a, err := domart.New(title, content, author, category)
	if err != nil {
		return domart.Article{}, fmt.Errorf("%w: %w", domain.ErrInvalidArticle, err)
	}
	updated := domart.Reconstruct(
		id, a.Title(), a.Content(), a.Author(), a.Category(),
		current.PublishedAt(), current.LastModified(),
	)

	if err := s.repo.Update(ctx, p, &updated); err != nil {
		return domart.Article{}, fmt.Errorf("update article %d: %w", id, err)
	}
	return updated, nil
}

// Get returns one article.
func (s *Service) Get(ctx context.Context, p language.Profile, id int) (domart.Article, error) {
	if s.repo == nil {
		return domart.Article{}, domain.ErrStoreUnavailable
	}
	return s.repo.Get(ctx, p, id)
}

// List returns every article of the profile, newest first.
func (s *Service) List(ctx context.Context, p language.Profile) ([]domart.Article, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.repo.GetAll(ctx, p)
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, p language.Profile, id int) error {
	if s.repo == nil {
		return domain.ErrStoreUnavailable
	}
	return s.repo.Delete(ctx, p, id)
}

// Categories returns the distinct non-empty categories of the profile,
// sorted ascending.
func (s *Service) Categories(ctx context.Context, p language.Profile) ([]string, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}

	articles, err := s.repo.GetAll(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return domart.DistinctCategories(articles), nil
}
