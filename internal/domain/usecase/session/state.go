package session

import "weather-pulse/internal/domain/entity"

// SearchState is the search box as the presentation layer sees it.
type SearchState struct {
	Open        bool     `json:"open"`
	Term        string   `json:"term"`
	Suggestions []string `json:"suggestions"`
	Loading     bool     `json:"loading"`
}

// State is a copy of everything a session shows. Weather is expressed in Unit.
type State struct {
	ID             string                 `json:"id"`
	Tab            entity.NavTab          `json:"tab"`
	DarkMode       bool                   `json:"darkMode"`
	Unit           entity.TempUnit        `json:"unit"`
	Notifications  bool                   `json:"notifications"`
	TimeOfDay      entity.TimeOfDay       `json:"timeOfDay"`
	Weather        entity.WeatherSnapshot `json:"weather"`
	Insight        string                 `json:"insight"`
	InsightLoading bool                   `json:"insightLoading"`
	Search         SearchState            `json:"search"`
}
