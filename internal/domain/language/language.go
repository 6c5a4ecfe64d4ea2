// Package language defines the two language profiles the service indexes.
// A profile selects tokenization rules and the article set a query runs
// against; the two sets are never mixed in one query.
package language

import (
	"github.com/kailas-cloud/articledex/internal/domain"
)

// Profile is a language-scoped search pipeline configuration.
type Profile struct {
	code     string
	stemming string // FT.CREATE LANGUAGE clause; "" disables stemming
}

var (
	// English is the default profile: english stemming.
	English = Profile{code: "en", stemming: "english"}
	// Thai tokenizes without stemming, mirroring a plain "simple"
	// text-search configuration.
	Thai = Profile{code: "th"}
)

// Profiles lists every supported profile.
func Profiles() []Profile {
	return []Profile{English, Thai}
}

// Parse resolves a profile from its code. Empty input selects English.
func Parse(code string) (Profile, error) {
	switch code {
	case "", English.code:
		return English, nil
	case Thai.code:
		return Thai, nil
	default:
		return Profile{}, domain.ErrUnknownLanguage
	}
}

// Code returns the profile code ("en", "th").
func (p Profile) Code() string { return p.code }

// Stemming returns the engine language used for stemming, or "" when the
// profile indexes without stemming.
func (p Profile) Stemming() string { return p.stemming }

// IndexName returns the FT index name backing this profile.
func (p Profile) IndexName() string {
	return domain.KeyPrefix + "articles:" + p.code + ":idx"
}

// ArticleKeyPrefix returns the key prefix under which this profile's
// articles are stored.
func (p Profile) ArticleKeyPrefix() string {
	return domain.KeyPrefix + "articles:" + p.code + ":"
}

// CounterKey returns the key of the ID allocation counter. It lives outside
// ArticleKeyPrefix so key scans only see articles.
func (p Profile) CounterKey() string {
	return domain.KeyPrefix + "seq:" + p.code
}
