package forecast

import "weather-pulse/internal/domain/entity"

type UseCase interface {
	// Generate builds a mock snapshot for location. It never fails; an empty location is valid.
	Generate(location string) entity.WeatherSnapshot
}
