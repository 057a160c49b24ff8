package db

import "context"

// FavoritesGateway stores the ordered favorite locations of each session
type FavoritesGateway interface {
	// Init replaces the list of owner with locations
	Init(ctx context.Context, owner string, locations []string) error

	// List returns the locations of owner in insertion order
	List(ctx context.Context, owner string) ([]string, error)

	// Append adds location at the end of the list
	Append(ctx context.Context, owner string, location string) error

	// RemoveAll removes every entry equal to location and returns how many were removed
	RemoveAll(ctx context.Context, owner string, location string) (int, error)

	// Delete drops the whole list of owner
	Delete(ctx context.Context, owner string) error
}
