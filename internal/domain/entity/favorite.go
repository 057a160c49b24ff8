package entity

// Favorite is a saved location together with the snapshot shown on its card.
type Favorite struct {
	Location     string           `json:"location"`
	Name         string           `json:"name"`
	Condition    WeatherCondition `json:"condition"`
	CurrentTemp  float64          `json:"currentTemp"`
	High         float64          `json:"high"`
	Low          float64          `json:"low"`
	PrecipChance int              `json:"precipChance"`
}

// Convert returns the card with temperatures moved from Celsius to unit.
func (f Favorite) Convert(unit TempUnit) Favorite {
	if !unit.Valid() || unit == Celsius {
		return f
	}
	out := f
	out.CurrentTemp = ConvertTemp(f.CurrentTemp, Celsius, unit)
	out.High = ConvertTemp(f.High, Celsius, unit)
	out.Low = ConvertTemp(f.Low, Celsius, unit)
	return out
}
