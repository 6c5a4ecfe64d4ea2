package chi

import (
	"time"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/search/result"
	searchuc "github.com/kailas-cloud/articledex/internal/usecase/search"
)

// Error codes returned in ErrorResponse.Code.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeArticleNotFound  = "article_not_found"
	codeUnknownLanguage  = "unknown_language"
	codeStoreUnavailable = "store_unavailable"
	codeInternalError    = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ArticleRequest is the create/update payload.
type ArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// ArticleResponse is one stored article.
type ArticleResponse struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author,omitempty"`
	Category     string    `json:"category,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
	LastModified time.Time `json:"last_modified"`
}

// ArticleListResponse wraps a full article listing.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryListResponse lists the distinct categories of a language.
type CategoryListResponse struct {
	Items []string `json:"items"`
}

// SearchResultItem is one ranked or fallback hit.
type SearchResultItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Score       float64   `json:"score"`
	Excerpt     string    `json:"excerpt"`
}

// SearchResponse is the composed search outcome.
type SearchResponse struct {
	Query      string             `json:"query"`
	Mode       string             `json:"mode"`
	Warning    string             `json:"warning,omitempty"`
	Items      []SearchResultItem `json:"items"`
	Total      int                `json:"total"`
	Categories []string           `json:"categories"`
}

// HealthResponse reports aggregated component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func articleToDTO(a *domart.Article) ArticleResponse {
	return ArticleResponse{
		ID:           a.ID(),
		Title:        a.Title(),
		Content:      a.Content(),
		Author:       a.Author(),
		Category:     a.Category(),
		PublishedAt:  a.PublishedAt(),
		LastModified: a.LastModified(),
	}
}

func resultToDTO(r *result.Result) SearchResultItem {
	return SearchResultItem{
		ID:          r.ID(),
		Title:       r.Title(),
		Author:      r.Author(),
		Category:    r.Category(),
		PublishedAt: r.PublishedAt(),
		Score:       r.Score(),
		Excerpt:     r.Excerpt(),
	}
}

func searchToDTO(query string, resp *searchuc.Response) SearchResponse {
	items := make([]SearchResultItem, len(resp.Results))
	for i := range resp.Results {
		items[i] = resultToDTO(&resp.Results[i])
	}
	categories := resp.Categories
	if categories == nil {
		categories = []string{}
	}
	return SearchResponse{
		Query:      query,
		Mode:       string(resp.Mode),
		Warning:    resp.Warning,
		Items:      items,
		Total:      len(items),
		Categories: categories,
	}
}
