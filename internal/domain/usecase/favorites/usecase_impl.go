package favorites

import (
	"context"
	"fmt"
	"strings"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/gateway/db"
	"weather-pulse/internal/domain/usecase/forecast"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"

	"go.uber.org/zap"
)

type favoritesUseCase struct {
	gateway  db.FavoritesGateway
	forecast forecast.UseCase
	defaults []string
}

// NewFavoritesUseCase returns the favorites list. Empty defaults fall back to DefaultLocations.
func NewFavoritesUseCase(gateway db.FavoritesGateway, forecastUseCase forecast.UseCase, defaults []string) UseCase {
	if len(defaults) == 0 {
		defaults = DefaultLocations
	}
	return &favoritesUseCase{
		gateway:  gateway,
		forecast: forecastUseCase,
		defaults: append([]string(nil), defaults...),
	}
}

func (uc *favoritesUseCase) Init(ctx context.Context, owner string) error {
	if err := uc.gateway.Init(ctx, owner, uc.defaults); err != nil {
		return fmt.Errorf("failed to seed favorites: %w", err)
	}
	return nil
}

func (uc *favoritesUseCase) List(ctx context.Context, owner string) ([]entity.Favorite, error) {
	locations, err := uc.gateway.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	favorites := make([]entity.Favorite, 0, len(locations))
	for _, location := range locations {
		favorites = append(favorites, Card(uc.forecast.Generate(location)))
	}
	return favorites, nil
}

func (uc *favoritesUseCase) Add(ctx context.Context, owner string, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}

	if err := uc.gateway.Append(ctx, owner, location); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	log.Info(msg.GetMessage("favorites.added", location, owner), zap.String("session_id", owner))
	return nil
}

func (uc *favoritesUseCase) Remove(ctx context.Context, owner string, location string) error {
	removed, err := uc.gateway.RemoveAll(ctx, owner, location)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	log.Info(msg.GetMessage("favorites.removed", location, owner),
		zap.String("session_id", owner), zap.Int("removed", removed))
	return nil
}

func (uc *favoritesUseCase) Drop(ctx context.Context, owner string) error {
	return uc.gateway.Delete(ctx, owner)
}

// Card extracts what a favorites card shows from snapshot.
func Card(snapshot entity.WeatherSnapshot) entity.Favorite {
	name, _, _ := strings.Cut(snapshot.Location, ",")

	precip := 0
	if len(snapshot.Hourly) > 0 {
		precip = snapshot.Hourly[0].PrecipChance
	}

	return entity.Favorite{
		Location:     snapshot.Location,
		Name:         strings.TrimSpace(name),
		Condition:    snapshot.Condition,
		CurrentTemp:  snapshot.CurrentTemp,
		High:         snapshot.High,
		Low:          snapshot.Low,
		PrecipChance: precip,
	}
}
