// Package filter implements the category/author post-filter applied to
// ranked results and unranked listings alike.
package filter

// Criteria holds optional exact-match constraints. Empty string means
// "no constraint" for that field.
type Criteria struct {
	category string
	author   string
}

// New creates filter criteria.
func New(category, author string) Criteria {
	return Criteria{category: category, author: author}
}

// Category returns the category constraint, or "" when unset.
func (c Criteria) Category() string { return c.category }

// Author returns the author constraint, or "" when unset.
func (c Criteria) Author() string { return c.author }

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool { return c.category == "" && c.author == "" }

// Matches is the single predicate shared by ranked and unranked flows:
// exact string equality per set constraint, conjunctive across fields.
// Applying it twice yields the same subset as applying it once.
func (c Criteria) Matches(category, author string) bool {
	if c.category != "" && category != c.category {
		return false
	}
	if c.author != "" && author != c.author {
		return false
	}
	return true
}
