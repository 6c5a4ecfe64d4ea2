package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/search/result"
)

const (
	titleMatchScore   = 2.0
	contentMatchScore = 1.0

	// excerptWindowRunes is the fallback excerpt length; the window starts
	// excerptLeadRunes before the first content match.
	excerptWindowRunes = 100
	excerptLeadRunes   = 40
)

// FallbackMatch scans articles for the phrase as a case-insensitive
// substring of title or content. Title matches score 2.0, content matches
// 1.0, both 3.0. Non-matching articles are skipped; output is sorted by
// score descending, ties keeping input order.
func FallbackMatch(articles []domart.Article, phrase string) []result.Result {
	needle := strings.ToLower(phrase)
	if needle == "" {
		return nil
	}

	var results []result.Result
	for i := range articles {
		a := &articles[i]

		var score float64
		if strings.Contains(strings.ToLower(a.Title()), needle) {
			score += titleMatchScore
		}
		matchRune := contentMatchRune(a.Content(), needle)
		if matchRune >= 0 {
			score += contentMatchScore
		}
		if score == 0 {
			continue
		}

		results = append(results, result.New(
			a.ID(), a.Title(), a.Content(), a.Author(), a.Category(),
			a.PublishedAt(), score, fallbackExcerpt(a.Content(), matchRune),
		))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score() > results[j].Score()
	})
	return results
}

// contentMatchRune returns the rune index of the first case-insensitive
// occurrence of needle in content, or -1. Folding is done per rune, so the
// index stays valid in content even for runes whose lowercase form has a
// different byte length.
func contentMatchRune(content, needle string) int {
	lowered := strings.Map(unicode.ToLower, content)
	idx := strings.Index(lowered, needle)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(lowered[:idx])
}

// fallbackExcerpt cuts a bounded window of content around the match.
// matchRune is a rune index into content, or negative for a title-only
// match, which takes the leading window instead.
func fallbackExcerpt(content string, matchRune int) string {
	runes := []rune(content)

	start := 0
	if matchRune > 0 {
		start = matchRune - excerptLeadRunes
		if start < 0 {
			start = 0
		}
	}

	end := start + excerptWindowRunes
	if end > len(runes) {
		end = len(runes)
	}

	excerpt := string(runes[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(runes) {
		excerpt += "..."
	}
	return excerpt
}
