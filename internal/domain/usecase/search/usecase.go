package search

import "context"

type UseCase interface {
	// Search returns the directory entries containing query, start-matches first, capped at MaxResults.
	// Queries shorter than two characters after trimming return an empty result without delay.
	Search(ctx context.Context, query string) []string

	// MaxResults returns the configured result cap
	MaxResults() int
}
