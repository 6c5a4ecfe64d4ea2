// Package search orchestrates a search request: ranked search against the
// weighted term index, unranked listing for empty queries, and the
// substring fallback matcher when the index is unreachable.
package search

import (
	"context"

	"go.uber.org/zap"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
	"github.com/kailas-cloud/articledex/internal/domain/search/filter"
	"github.com/kailas-cloud/articledex/internal/domain/search/query"
	"github.com/kailas-cloud/articledex/internal/domain/search/result"
	"github.com/kailas-cloud/articledex/internal/logger"
)

// Mode names which path produced the result list.
type Mode string

const (
	// ModeListing is the unranked full listing for empty queries.
	ModeListing Mode = "listing"
	// ModePrimary is ranked search via the weighted term index.
	ModePrimary Mode = "primary"
	// ModeFallback is the degraded substring matcher.
	ModeFallback Mode = "fallback"
)

// FallbackWarning is the user-visible warning attached when degraded
// results are returned.
const FallbackWarning = "search encountered an error; fallback results shown"

// ListingWarning is attached when ranked results are served but the
// supporting article listing could not be fetched.
const ListingWarning = "article listing unavailable; partial response shown"

// listingExcerptRunes bounds the plain excerpt of unranked listings.
const listingExcerptRunes = 200

// Response is the composed outcome of one search request: the result
// list, the (filtered) full article list and available categories for UI
// population, and an optional non-fatal warning.
type Response struct {
	Results    []result.Result
	Articles   []domart.Article
	Categories []string
	Mode       Mode
	Warning    string
}

// Service composes normalization, ranked search, fallback matching, and
// filter application per request. It holds no mutable state; concurrent
// requests are independent.
type Service struct {
	engine   Engine
	articles ArticleReader
	samples  map[string][]domart.Article
	limit    int
}

// New creates the search orchestrator. engine or articles may be nil when
// store connectivity is not configured; every query then degrades to the
// fallback matcher over the built-in sample corpus.
func New(engine Engine, articles ArticleReader, limit int) *Service {
	return &Service{
		engine:   engine,
		articles: articles,
		samples:  sampleCorpora(),
		limit:    limit,
	}
}

// Search executes one request. No failure is fatal: store and engine
// faults are absorbed into a degraded-but-valid response plus a warning.
func (s *Service) Search(
	ctx context.Context, p language.Profile, rawQuery string, crit filter.Criteria,
) Response {
	log := logger.FromContext(ctx)

	var all []domart.Article
	fetchFailed := s.articles == nil
	if s.articles != nil {
		var err error
		all, err = s.articles.GetAll(ctx, p)
		if err != nil {
			log.Warn("article listing failed",
				zap.String("language", p.Code()),
				zap.Error(err),
			)
			all = nil
			fetchFailed = true
		}
	}

	categories := domart.DistinctCategories(all)
	listed := filterArticles(all, crit)

	terms := query.Normalize(rawQuery)
	if terms.IsEmpty() {
		// Empty query means "no search requested": full listing, score 0.
		resp := Response{
			Results:    listingResults(listed),
			Articles:   listed,
			Categories: categories,
			Mode:       ModeListing,
		}
		if fetchFailed {
			// Listing over the sample corpus beats an empty page.
			resp.Results = listingResults(filterArticles(s.samples[p.Code()], crit))
			resp.Warning = FallbackWarning
		}
		return resp
	}

	if s.engine == nil {
		return Response{
			Results:    s.fallback(p, all, terms, crit),
			Articles:   listed,
			Categories: categories,
			Mode:       ModeFallback,
			Warning:    FallbackWarning,
		}
	}

	hits, err := s.engine.Search(ctx, p, terms, s.limit)
	if err != nil {
		log.Warn("primary search failed, using fallback matcher",
			zap.String("language", p.Code()),
			zap.String("query", rawQuery),
			zap.Error(err),
		)
		return Response{
			Results:    s.fallback(p, all, terms, crit),
			Articles:   listed,
			Categories: categories,
			Mode:       ModeFallback,
			Warning:    FallbackWarning,
		}
	}

	resp := Response{
		Results:    filterResults(hits, crit),
		Articles:   listed,
		Categories: categories,
		Mode:       ModePrimary,
	}
	if fetchFailed {
		resp.Warning = ListingWarning
	}
	return resp
}

// fallback runs the substring matcher over the articles fetched for this
// request, or over the built-in sample corpus when the fetch itself
// failed. Filters are always reapplied to fallback output.
func (s *Service) fallback(
	p language.Profile, all []domart.Article, terms query.TermSet, crit filter.Criteria,
) []result.Result {
	docs := all
	if len(docs) == 0 {
		docs = s.samples[p.Code()]
	}
	return filterResults(FallbackMatch(docs, terms.Phrase()), crit)
}

// listingResults maps articles to unranked results with a plain bounded
// excerpt and no highlighting.
func listingResults(articles []domart.Article) []result.Result {
	results := make([]result.Result, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		results = append(results, result.New(
			a.ID(), a.Title(), a.Content(), a.Author(), a.Category(),
			a.PublishedAt(), 0, listingExcerpt(a.Content()),
		))
	}
	return results
}

func listingExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= listingExcerptRunes {
		return content
	}
	return string(runes[:listingExcerptRunes]) + "..."
}

// filterArticles applies the criteria predicate to an article list,
// preserving order.
func filterArticles(articles []domart.Article, crit filter.Criteria) []domart.Article {
	if crit.IsEmpty() {
		return articles
	}
	filtered := make([]domart.Article, 0, len(articles))
	for i := range articles {
		if crit.Matches(articles[i].Category(), articles[i].Author()) {
			filtered = append(filtered, articles[i])
		}
	}
	return filtered
}

// filterResults applies the same predicate to a result list.
func filterResults(results []result.Result, crit filter.Criteria) []result.Result {
	if crit.IsEmpty() {
		return results
	}
	filtered := make([]result.Result, 0, len(results))
	for i := range results {
		if crit.Matches(results[i].Category(), results[i].Author()) {
			filtered = append(filtered, results[i])
		}
	}
	return filtered
}
