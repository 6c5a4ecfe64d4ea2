package article

import "sort"

// DistinctCategories extracts the sorted set of non-empty categories from
// an article list.
func DistinctCategories(articles []Article) []string {
	seen := make(map[string]struct{}, len(articles))
	var categories []string
	for i := range articles {
		c := articles[i].Category()
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
