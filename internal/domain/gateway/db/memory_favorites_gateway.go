package db

import (
	"context"
	"sync"
)

type memoryFavoritesGateway struct {
	mu    sync.RWMutex
	lists map[string][]string
}

var _ FavoritesGateway = (*memoryFavoritesGateway)(nil)

func NewMemoryFavoritesGateway() FavoritesGateway {
	return &memoryFavoritesGateway{lists: make(map[string][]string)}
}

func (g *memoryFavoritesGateway) Init(_ context.Context, owner string, locations []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lists[owner] = append([]string(nil), locations...)
	return nil
}

func (g *memoryFavoritesGateway) List(_ context.Context, owner string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string{}, g.lists[owner]...), nil
}

func (g *memoryFavoritesGateway) Append(_ context.Context, owner string, location string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lists[owner] = append(g.lists[owner], location)
	return nil
}

func (g *memoryFavoritesGateway) RemoveAll(_ context.Context, owner string, location string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.lists[owner]
	kept := make([]string, 0, len(current))
	for _, entry := range current {
		if entry != location {
			kept = append(kept, entry)
		}
	}
	g.lists[owner] = kept
	return len(current) - len(kept), nil
}

func (g *memoryFavoritesGateway) Delete(_ context.Context, owner string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.lists, owner)
	return nil
}
