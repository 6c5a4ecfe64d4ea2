// Package domain holds the core article-search domain model shared by
// repositories, use cases, and transports.
package domain

// KeyPrefix namespaces every key the service writes to the store.
const KeyPrefix = "articledex:"
