package favorites

import (
	"context"
	"errors"

	"weather-pulse/internal/domain/entity"
)

// ErrEmptyLocation is returned by Add when the location is blank after trimming.
var ErrEmptyLocation = errors.New("location must not be empty")

// DefaultLocations seed every new favorites list.
var DefaultLocations = []string{"San Francisco, CA", "New York, NY", "London, UK", "Tokyo, JP", "Sydney, AU"}

type UseCase interface {
	// Init seeds the list of owner with the default locations, replacing anything stored
	Init(ctx context.Context, owner string) error

	// List returns every favorite of owner with the card data of a freshly generated snapshot
	List(ctx context.Context, owner string) ([]entity.Favorite, error)

	// Add appends the trimmed location
	Add(ctx context.Context, owner string, location string) error

	// Remove drops every entry equal to location
	Remove(ctx context.Context, owner string, location string) error

	// Drop forgets the list of owner
	Drop(ctx context.Context, owner string) error
}
