package model

import "weather-pulse/internal/domain/entity"

type WeatherQuery struct {
	Location string `query:"location"`
	Unit     string `query:"unit" validate:"omitempty,oneof=C F"`
}

type LocationSearchResponse struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
}

// InsightRequest accepts an empty location; it is served like any other name.
type InsightRequest struct {
	Location string `json:"location"`
}

type InsightResponse struct {
	Location string `json:"location"`
	Insight  string `json:"insight"`
}

type AboutResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	About   string `json:"about"`
}

// FavoritesResponse lists the cards of a session in its display unit
type FavoritesResponse struct {
	Unit      entity.TempUnit   `json:"unit"`
	Favorites []entity.Favorite `json:"favorites"`
}
