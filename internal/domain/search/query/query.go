// Package query normalizes free-text queries into term sets and converts
// them to the engine's conjunctive query syntax.
package query

import "strings"

// TermSet is an ordered sequence of normalized terms. Order is preserved
// for deterministic excerpt anchoring and duplicates are kept: repetition
// affects substring fallback matching, not weighted-term matching.
type TermSet struct {
	terms []string
}

// Normalize splits raw input on whitespace, case-folds, and drops empty
// tokens. Empty or whitespace-only input yields an empty TermSet, which
// callers must treat as "no search requested", not as zero results.
func Normalize(raw string) TermSet {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return TermSet{}
	}
	terms := make([]string, len(fields))
	for i, f := range fields {
		terms[i] = strings.ToLower(f)
	}
	return TermSet{terms: terms}
}

// IsEmpty reports whether the set holds no terms.
func (t TermSet) IsEmpty() bool { return len(t.terms) == 0 }

// Terms returns the normalized terms in insertion order.
func (t TermSet) Terms() []string { return t.terms }

// Phrase returns the normalized query as a single space-joined string.
// The fallback matcher treats this whole string as one substring.
func (t TermSet) Phrase() string { return strings.Join(t.terms, " ") }

// EngineQuery converts the term set to the engine's conjunctive syntax:
// space-joined terms (the engine's implicit AND connector) with every
// query-syntax operator escaped, so a term that equals a connector or
// operator token is matched literally instead of corrupting the query.
func (t TermSet) EngineQuery() string {
	escaped := make([]string, len(t.terms))
	for i, term := range t.terms {
		escaped[i] = escapeTerm(term)
	}
	return strings.Join(escaped, " ")
}

// termEscaper escapes FT.SEARCH query operators inside a single term.
var termEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
	`:`, `\:`,
)

func escapeTerm(s string) string {
	return termEscaper.Replace(s)
}
