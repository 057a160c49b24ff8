package entity

type HourlyPoint struct {
	Time         string           `json:"time"`
	Temp         float64          `json:"temp"`
	Condition    WeatherCondition `json:"condition"`
	PrecipChance int              `json:"precipChance"`
}

type DailyPoint struct {
	Day          string           `json:"day"`
	MinTemp      float64          `json:"minTemp"`
	MaxTemp      float64          `json:"maxTemp"`
	Condition    WeatherCondition `json:"condition"`
	PrecipChance int              `json:"precipChance"`
}

// WeatherSnapshot is one wholesale weather result for a location. It is replaced, never
// updated in place; Convert returns a copy.
type WeatherSnapshot struct {
	Location    string           `json:"location"`
	CurrentTemp float64          `json:"currentTemp"`
	Condition   WeatherCondition `json:"condition"`
	High        float64          `json:"high"`
	Low         float64          `json:"low"`
	FeelsLike   float64          `json:"feelsLike"`
	Humidity    int              `json:"humidity"`
	WindSpeed   float64          `json:"windSpeed"`
	UVIndex     int              `json:"uvIndex"`
	Sunrise     string           `json:"sunrise"`
	Sunset      string           `json:"sunset"`
	Description string           `json:"description"`
	AQI         int              `json:"aqi"`
	Unit        TempUnit         `json:"unit"`
	Hourly      []HourlyPoint    `json:"hourly"`
	Daily       []DailyPoint     `json:"daily"`
}

// Convert returns a deep copy of the snapshot with temperatures expressed in unit.
func (s WeatherSnapshot) Convert(unit TempUnit) WeatherSnapshot {
	out := s
	out.Hourly = append([]HourlyPoint(nil), s.Hourly...)
	out.Daily = append([]DailyPoint(nil), s.Daily...)

	from := s.Unit
	if from == "" {
		from = Celsius
	}
	if !unit.Valid() || unit == from {
		out.Unit = from
		return out
	}

	conv := func(v float64) float64 { return ConvertTemp(v, from, unit) }
	out.Unit = unit
	out.CurrentTemp = conv(s.CurrentTemp)
	out.High = conv(s.High)
	out.Low = conv(s.Low)
	out.FeelsLike = conv(s.FeelsLike)
	for i := range out.Hourly {
		out.Hourly[i].Temp = conv(out.Hourly[i].Temp)
	}
	for i := range out.Daily {
		out.Daily[i].MinTemp = conv(out.Daily[i].MinTemp)
		out.Daily[i].MaxTemp = conv(out.Daily[i].MaxTemp)
	}
	return out
}
