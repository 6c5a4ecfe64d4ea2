package redis

import "github.com/redis/rueidis"

// NewStoreForTest wraps an existing (usually mocked) rueidis client.
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{client: c}
}
