package domain

import "errors"

var (
	// ErrArticleNotFound signals a missing article.
	ErrArticleNotFound = errors.New("article not found")
	// ErrInvalidArticle signals an article that fails validation.
	ErrInvalidArticle = errors.New("invalid article")
	// ErrUnknownLanguage signals an unsupported language profile code.
	ErrUnknownLanguage = errors.New("unknown language profile")
	// ErrStoreUnavailable signals that the document store is not configured.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
