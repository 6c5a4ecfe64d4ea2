// Package article defines the Article aggregate. Articles are owned by the
// document store; the search core only reads them.
package article

import (
	"fmt"
	"time"
)

const (
	// MaxTitleSize is the maximum title length in bytes.
	MaxTitleSize = 512
	// MaxContentSize is the maximum content size in bytes.
	MaxContentSize = 163840 // 160KB
)

// Article is an immutable article value. Author and category are optional;
// empty string means absent.
type Article struct {
	id           int
	title        string
	content      string
	author       string
	category     string
	publishedAt  time.Time
	lastModified time.Time
}

// New validates and creates an Article without an identifier; the store
// assigns one on create.
func New(title, content, author, category string) (Article, error) {
	if title == "" {
		return Article{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleSize {
		return Article{}, fmt.Errorf("title too long (max %d bytes)", MaxTitleSize)
	}
	if content == "" {
		return Article{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Article{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}

	now := time.Now().UTC()
	return Article{
		title:        title,
		content:      content,
		author:       author,
		category:     category,
		publishedAt:  now,
		lastModified: now,
	}, nil
}

// Reconstruct creates an Article without validation (storage hydration).
func Reconstruct(
	id int, title, content, author, category string,
	publishedAt, lastModified time.Time,
) Article {
	return Article{
		id:           id,
		title:        title,
		content:      content,
		author:       author,
		category:     category,
		publishedAt:  publishedAt,
		lastModified: lastModified,
	}
}

// ID returns the article identifier.
func (a *Article) ID() int { return a.id }

// Title returns the article title.
func (a *Article) Title() string { return a.title }

// Content returns the article body.
func (a *Article) Content() string { return a.content }

// Author returns the author, or "" when absent.
func (a *Article) Author() string { return a.author }

// Category returns the category, or "" when absent.
func (a *Article) Category() string { return a.category }

// PublishedAt returns the publication timestamp.
func (a *Article) PublishedAt() time.Time { return a.publishedAt }

// LastModified returns the last modification timestamp.
func (a *Article) LastModified() time.Time { return a.lastModified }

// WithID returns a copy with the given identifier set.
func (a *Article) WithID(id int) Article {
	c := *a
	c.id = id
	return c
}

// Touched returns a copy with lastModified set to now.
func (a *Article) Touched() Article {
	c := *a
	c.lastModified = time.Now().UTC()
	return c
}
