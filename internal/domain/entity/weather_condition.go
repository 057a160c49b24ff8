package entity

import (
	"encoding/json"
	"fmt"
)

// WeatherCondition is the closed set of conditions the app knows how to show.
type WeatherCondition int

const (
	Sunny WeatherCondition = iota
	Cloudy
	Rainy
	Snowy
	Stormy
)

// Conditions lists every condition in declaration order. The mock generator indexes it cyclically.
var Conditions = []WeatherCondition{Sunny, Cloudy, Rainy, Snowy, Stormy}

var conditionNames = [...]string{"Sunny", "Cloudy", "Rainy", "Snowy", "Stormy"}

func (c WeatherCondition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return fmt.Sprintf("WeatherCondition(%d)", int(c))
	}
	return conditionNames[c]
}

// ParseWeatherCondition accepts the capitalised name of a condition.
func ParseWeatherCondition(name string) (WeatherCondition, error) {
	for i, n := range conditionNames {
		if n == name {
			return WeatherCondition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather condition %q", name)
}

func (c WeatherCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *WeatherCondition) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseWeatherCondition(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
