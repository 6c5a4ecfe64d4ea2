package search

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
)

func makeArticle(id int, title, content string) domart.Article {
	return domart.Reconstruct(id, title, content, "", "", time.Time{}, time.Time{})
}

func TestFallbackMatch_Scoring(t *testing.T) {
	articles := []domart.Article{
		makeArticle(1, "Redis internals", "All about caching layers."),
		makeArticle(2, "Caching patterns", "Redis makes caching fast."),
		makeArticle(3, "Unrelated", "Nothing to see here."),
	}

	results := FallbackMatch(articles, "redis")
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}

	// Title-only match scores 2.0 and outranks content-only 1.0.
	if results[0].ID() != 1 || results[0].Score() != 2.0 {
		t.Errorf("first hit = id %d score %v, want id 1 score 2", results[0].ID(), results[0].Score())
	}
	if results[1].ID() != 2 || results[1].Score() != 1.0 {
		t.Errorf("second hit = id %d score %v, want id 2 score 1", results[1].ID(), results[1].Score())
	}
}

func TestFallbackMatch_TitleAndContentScoresThree(t *testing.T) {
	articles := []domart.Article{
		makeArticle(1, "Introduction to C#",
			"C# is a modern, object-oriented programming language developed by Microsoft."),
	}
	results := FallbackMatch(articles, "c#")
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].Score() != 3.0 {
		t.Errorf("score = %v, want 3.0", results[0].Score())
	}
}

func TestFallbackMatch_CaseInsensitive(t *testing.T) {
	articles := []domart.Article{
		makeArticle(1, "JAVASCRIPT Basics", "plain text"),
	}
	results := FallbackMatch(articles, "javascript")
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
}

func TestFallbackMatch_WholePhrase(t *testing.T) {
	articles := []domart.Article{
		makeArticle(1, "a", "the quick brown fox"),
		makeArticle(2, "b", "quick thinking, brown shoes"),
	}
	// Phrase matches as one contiguous substring, not word-by-word.
	results := FallbackMatch(articles, "quick brown")
	if len(results) != 1 || results[0].ID() != 1 {
		t.Fatalf("expected only the contiguous match, got %d results", len(results))
	}
}

func TestFallbackMatch_StableOrderOnTies(t *testing.T) {
	articles := []domart.Article{
		makeArticle(1, "x", "shared term here"),
		makeArticle(2, "y", "shared term there"),
		makeArticle(3, "z", "shared term everywhere"),
	}
	results := FallbackMatch(articles, "shared term")
	if len(results) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(results))
	}
	for i, want := range []int{1, 2, 3} {
		if results[i].ID() != want {
			t.Errorf("tie order broken at %d: got id %d, want %d", i, results[i].ID(), want)
		}
	}
}

func TestFallbackMatch_NoMatches(t *testing.T) {
	articles := []domart.Article{makeArticle(1, "a", "b")}
	if got := FallbackMatch(articles, "absent"); len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestFallbackExcerpt_Bounded(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 50) + "needle" + strings.Repeat(" dolor sit", 50)
	articles := []domart.Article{makeArticle(1, "t", long)}

	results := FallbackMatch(articles, "needle")
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	excerpt := results[0].Excerpt()
	if n := utf8.RuneCountInString(excerpt); n > 106 {
		t.Errorf("excerpt is %d runes, want at most 106", n)
	}
	if !strings.Contains(excerpt, "needle") {
		t.Errorf("excerpt should contain the match: %q", excerpt)
	}
	if !strings.HasPrefix(excerpt, "...") || !strings.HasSuffix(excerpt, "...") {
		t.Errorf("mid-content excerpt should be marked on both sides: %q", excerpt)
	}
}

func TestFallbackExcerpt_MatchNearStart(t *testing.T) {
	content := "needle right at the front " + strings.Repeat("padding ", 40)
	articles := []domart.Article{makeArticle(1, "t", content)}

	results := FallbackMatch(articles, "needle")
	excerpt := results[0].Excerpt()
	if strings.HasPrefix(excerpt, "...") {
		t.Errorf("window starts at 0, no leading marker expected: %q", excerpt)
	}
	if !strings.HasSuffix(excerpt, "...") {
		t.Errorf("truncated tail should be marked: %q", excerpt)
	}
}

func TestFallbackExcerpt_ShortContent(t *testing.T) {
	articles := []domart.Article{makeArticle(1, "t", "tiny needle body")}
	results := FallbackMatch(articles, "needle")
	if got, want := results[0].Excerpt(), "tiny needle body"; got != want {
		t.Errorf("excerpt = %q, want whole content %q", got, want)
	}
}

func TestFallbackExcerpt_TitleOnlyMatch(t *testing.T) {
	content := strings.Repeat("body text ", 30)
	articles := []domart.Article{makeArticle(1, "needle in the title", content)}

	results := FallbackMatch(articles, "needle")
	if len(results) != 1 || results[0].Score() != 2.0 {
		t.Fatalf("expected title-only match")
	}
	excerpt := results[0].Excerpt()
	if !strings.HasPrefix(content, strings.TrimSuffix(excerpt, "...")) {
		t.Errorf("title-only match should take the leading window: %q", excerpt)
	}
}

func TestFallbackExcerpt_ThaiRuneSafe(t *testing.T) {
	content := strings.Repeat("อาหารไทยอร่อยมาก ", 20) + "ต้มยำกุ้ง" + strings.Repeat(" รสจัดจ้าน", 20)
	articles := []domart.Article{makeArticle(1, "t", content)}

	results := FallbackMatch(articles, "ต้มยำกุ้ง")
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	excerpt := results[0].Excerpt()
	if !utf8.ValidString(excerpt) {
		t.Error("excerpt split a multi-byte rune")
	}
	if n := utf8.RuneCountInString(excerpt); n > 106 {
		t.Errorf("excerpt is %d runes, want at most 106", n)
	}
	if !strings.Contains(excerpt, "ต้มยำกุ้ง") {
		t.Errorf("excerpt should contain the match: %q", excerpt)
	}
}

func TestFallbackExcerpt_FoldChangesByteLength(t *testing.T) {
	// U+212A (Kelvin sign) is 3 bytes but lowercases to a 1-byte 'k', so
	// the match position must be tracked in runes, not folded bytes.
	content := strings.Repeat("K", 200) + "needle" + strings.Repeat(" tail", 40)
	articles := []domart.Article{makeArticle(1, "t", content)}

	results := FallbackMatch(articles, "needle")
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	excerpt := results[0].Excerpt()
	if !utf8.ValidString(excerpt) {
		t.Error("excerpt split a multi-byte rune")
	}
	if !strings.Contains(excerpt, "needle") {
		t.Errorf("window drifted off the match: %q", excerpt)
	}
	if n := utf8.RuneCountInString(excerpt); n > 106 {
		t.Errorf("excerpt is %d runes, want at most 106", n)
	}
}

func TestFallbackExcerpt_NoHighlightMarkers(t *testing.T) {
	articles := []domart.Article{makeArticle(1, "t", "plain needle content")}
	results := FallbackMatch(articles, "needle")
	if strings.Contains(results[0].Excerpt(), "<mark>") {
		t.Error("fallback excerpts carry no highlight markers")
	}
}
