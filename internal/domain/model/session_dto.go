package model

// SearchRequest drives the search box. A nil field leaves that part untouched.
type SearchRequest struct {
	Open *bool   `json:"open"`
	Term *string `json:"term"`
}

type LocationRequest struct {
	Location       string `json:"location" validate:"required"`
	FromSuggestion bool   `json:"fromSuggestion"`
}

type FavoriteRequest struct {
	Location string `json:"location" validate:"required"`
}

type TabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=home hourly daily favorites settings"`
}

type SettingsRequest struct {
	DarkMode      *bool   `json:"darkMode"`
	Unit          *string `json:"unit" validate:"omitempty,oneof=C F"`
	Notifications *bool   `json:"notifications"`
}
