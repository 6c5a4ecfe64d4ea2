// Package result defines the search hit value type.
package result

import "time"

// Result is a single search hit. Score 0 means "no ranked relevance
// computed" and is used for unranked listings. The excerpt may contain
// <mark> highlight markers.
type Result struct {
	id          int
	title       string
	content     string
	author      string
	category    string
	publishedAt time.Time
	score       float64
	excerpt     string
}

// New creates a search result.
func New(
	id int, title, content, author, category string,
	publishedAt time.Time, score float64, excerpt string,
) Result {
	return Result{
		id: id, title: title, content: content,
		author: author, category: category,
		publishedAt: publishedAt, score: score, excerpt: excerpt,
	}
}

// ID returns the article identifier.
func (r *Result) ID() int { return r.id }

// Title returns the article title.
func (r *Result) Title() string { return r.title }

// Content returns the full article body.
func (r *Result) Content() string { return r.content }

// Author returns the author, or "" when absent.
func (r *Result) Author() string { return r.author }

// Category returns the category, or "" when absent.
func (r *Result) Category() string { return r.category }

// PublishedAt returns the publication timestamp.
func (r *Result) PublishedAt() time.Time { return r.publishedAt }

// Score returns the relevance score (non-negative; 0 = unranked).
func (r *Result) Score() float64 { return r.score }

// Excerpt returns the bounded excerpt.
func (r *Result) Excerpt() string { return r.excerpt }
