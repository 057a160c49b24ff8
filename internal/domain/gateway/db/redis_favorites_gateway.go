package db

import (
	"context"
	"fmt"

	"weather-pulse/pkg/redis"
)

// redisFavoritesGateway keeps each list as a Redis LIST under <namespace>:favorites:<owner>
type redisFavoritesGateway struct {
	client *redis.Client
}

var _ FavoritesGateway = (*redisFavoritesGateway)(nil)

func NewRedisFavoritesGateway(client *redis.Client) FavoritesGateway {
	return &redisFavoritesGateway{client: client}
}

func (g *redisFavoritesGateway) key(owner string) string {
	return g.client.Key("favorites", owner)
}

func (g *redisFavoritesGateway) Init(ctx context.Context, owner string, locations []string) error {
	key := g.key(owner)

	pipe := g.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(locations) > 0 {
		values := make([]interface{}, len(locations))
		for i, location := range locations {
			values[i] = location
		}
		pipe.RPush(ctx, key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to init favorites: %w", err)
	}
	return nil
}

func (g *redisFavoritesGateway) List(ctx context.Context, owner string) ([]string, error) {
	locations, err := g.client.LRange(ctx, g.key(owner), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if locations == nil {
		locations = []string{}
	}
	return locations, nil
}

func (g *redisFavoritesGateway) Append(ctx context.Context, owner string, location string) error {
	if err := g.client.RPush(ctx, g.key(owner), location); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (g *redisFavoritesGateway) RemoveAll(ctx context.Context, owner string, location string) (int, error) {
	removed, err := g.client.LRem(ctx, g.key(owner), 0, location)
	if err != nil {
		return 0, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return int(removed), nil
}

func (g *redisFavoritesGateway) Delete(ctx context.Context, owner string) error {
	if err := g.client.Delete(ctx, g.key(owner)); err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}
	return nil
}
