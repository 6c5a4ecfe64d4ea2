package search

import (
	"context"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
	"github.com/kailas-cloud/articledex/internal/domain/search/query"
	"github.com/kailas-cloud/articledex/internal/domain/search/result"
)

// Engine is the primary ranked search capability (weighted term index).
type Engine interface {
	Search(ctx context.Context, p language.Profile, terms query.TermSet, limit int) ([]result.Result, error)
}

// ArticleReader reads the profile's full article set.
type ArticleReader interface {
	GetAll(ctx context.Context, p language.Profile) ([]domart.Article, error)
}
