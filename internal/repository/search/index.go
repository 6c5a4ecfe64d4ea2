package search

import (
	"github.com/kailas-cloud/articledex/internal/db"
	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// Field weights order relevance contributions: a title match outranks a
// content match, which outranks author and category matches.
const (
	titleWeight    = 4
	contentWeight  = 3
	authorWeight   = 2
	categoryWeight = 1
)

// IndexDefinition builds the weighted FT index definition backing one
// language profile. Profiles without a stemmer index every field NOSTEM.
func IndexDefinition(p language.Profile) *db.IndexDefinition {
	noStem := p.Stemming() == ""
	return &db.IndexDefinition{
		Name:     p.IndexName(),
		Prefixes: []string{p.ArticleKeyPrefix()},
		Language: p.Stemming(),
		Fields: []db.IndexField{
			{Name: "title", Weight: titleWeight, NoStem: noStem},
			{Name: "content", Weight: contentWeight, NoStem: noStem},
			{Name: "author", Weight: authorWeight, NoStem: noStem},
			{Name: "category", Weight: categoryWeight, NoStem: noStem},
		},
	}
}
