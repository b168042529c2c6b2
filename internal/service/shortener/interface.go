// Package shortener provides interfaces for types to be in compliance with.
package shortener

import "context"

// Client defines a set of methods for types implementing Client.
type Client interface {
	Shorten(ctx context.Context, apiKey string, longURL string) (shortURL string, err error)
}
