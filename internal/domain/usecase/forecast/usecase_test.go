package forecast

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"weather-pulse/internal/domain/entity"

	"github.com/jonboulle/clockwork"
)

func newTestForecast(now time.Time) UseCase {
	return NewForecastUseCase(rand.New(rand.NewPCG(7, 11)), clockwork.NewFakeClockAt(now))
}

func TestGenerateConditionFollowsLocationLength(t *testing.T) {
	uc := newTestForecast(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		location string
		want     entity.WeatherCondition
	}{
		{"", entity.Sunny},
		{"Oslo, NO", entity.Snowy},          // 8
		{"Tokyo, JP", entity.Stormy},        // 9
		{"London, UK", entity.Sunny},        // 10
		{"San Francisco, CA", entity.Rainy}, // 17
		{"São Paulo, BR", entity.Snowy},     // 13, ã is one code unit
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			snap := uc.Generate(tt.location)
			if snap.Condition != tt.want {
				t.Errorf("Condition = %v, want %v", snap.Condition, tt.want)
			}
			want := "Expect " + strings.ToLower(tt.want.String()) + " conditions throughout the day."
			if snap.Description != want {
				t.Errorf("Description = %q", snap.Description)
			}
			if snap.Location != tt.location {
				t.Errorf("Location = %q", snap.Location)
			}
		})
	}
}

func TestSeedCountsUTF16Units(t *testing.T) {
	if got := Seed("🌧 Rain"); got != 7 {
		t.Errorf("Seed = %d, want 7 (surrogate pair counts twice)", got)
	}
	if got := Seed(""); got != 0 {
		t.Errorf("Seed(\"\") = %d", got)
	}
}

func TestGenerateSameLengthSameConditions(t *testing.T) {
	uc := newTestForecast(time.Now())

	a := uc.Generate("Lima, PE")
	b := uc.Generate("Rome, IT")
	if a.Condition != b.Condition {
		t.Fatalf("conditions differ: %v vs %v", a.Condition, b.Condition)
	}
	for i := range a.Hourly {
		if a.Hourly[i].Condition != b.Hourly[i].Condition {
			t.Errorf("hourly[%d] condition differs", i)
		}
	}
	for i := range a.Daily {
		if a.Daily[i].Condition != b.Daily[i].Condition {
			t.Errorf("daily[%d] condition differs", i)
		}
	}
}

func TestGenerateInvariants(t *testing.T) {
	uc := NewForecastUseCase(nil, nil)

	for _, location := range []string{"", "Oslo, NO", "San Francisco, CA", "Rio de Janeiro, BR"} {
		snap := uc.Generate(location)
		seed := Seed(location)

		if len(snap.Hourly) != HourlyPoints || len(snap.Daily) != DailyPoints {
			t.Fatalf("%q: got %d hourly and %d daily points", location, len(snap.Hourly), len(snap.Daily))
		}
		if snap.Low > snap.CurrentTemp || snap.CurrentTemp > snap.High {
			t.Errorf("%q: low %v current %v high %v", location, snap.Low, snap.CurrentTemp, snap.High)
		}
		if snap.Unit != entity.Celsius {
			t.Errorf("%q: unit %q", location, snap.Unit)
		}

		for i, h := range snap.Hourly {
			if h.PrecipChance < 0 || h.PrecipChance > 29 {
				t.Errorf("hourly[%d] precip %d", i, h.PrecipChance)
			}
			if h.Temp < 15 || h.Temp > 25 {
				t.Errorf("hourly[%d] temp %v", i, h.Temp)
			}
			if h.Condition != ConditionAt(seed, i) {
				t.Errorf("hourly[%d] condition %v", i, h.Condition)
			}
		}
		if snap.Hourly[0].Time != "0:00" || snap.Hourly[23].Time != "23:00" {
			t.Errorf("hourly labels %q..%q", snap.Hourly[0].Time, snap.Hourly[23].Time)
		}
		if snap.Hourly[0].Temp != 20 {
			t.Errorf("hourly[0] temp = %v", snap.Hourly[0].Temp)
		}

		for i, d := range snap.Daily {
			if d.MinTemp < 15 || d.MinTemp >= 20 || d.MaxTemp < 25 || d.MaxTemp >= 30 {
				t.Errorf("daily[%d] min %v max %v", i, d.MinTemp, d.MaxTemp)
			}
			if d.PrecipChance < 0 || d.PrecipChance > 59 {
				t.Errorf("daily[%d] precip %d", i, d.PrecipChance)
			}
		}
	}
}

func TestGenerateWeekdayLabelsStartToday(t *testing.T) {
	// 2026-10-16 is a Friday.
	uc := newTestForecast(time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC))

	snap := uc.Generate("Tokyo, JP")
	want := []string{"Fri", "Sat", "Sun", "Mon", "Tue", "Wed", "Thu"}
	for i, d := range snap.Daily {
		if d.Day != want[i] {
			t.Errorf("daily[%d].Day = %q, want %q", i, d.Day, want[i])
		}
	}
}

func TestGenerateFixedFields(t *testing.T) {
	snap := newTestForecast(time.Now()).Generate("Paris, France")

	if snap.CurrentTemp != 22 || snap.High != 26 || snap.Low != 18 || snap.FeelsLike != 24 {
		t.Errorf("temperatures %v/%v/%v/%v", snap.CurrentTemp, snap.High, snap.Low, snap.FeelsLike)
	}
	if snap.Humidity != 65 || snap.WindSpeed != 12 || snap.UVIndex != 4 || snap.AQI != 35 {
		t.Errorf("humidity %d wind %v uv %d aqi %d", snap.Humidity, snap.WindSpeed, snap.UVIndex, snap.AQI)
	}
	if snap.Sunrise != "06:30 AM" || snap.Sunset != "07:45 PM" {
		t.Errorf("sun %q %q", snap.Sunrise, snap.Sunset)
	}
}

func TestGenerateIsReproducibleWithSeededSource(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := newTestForecast(now).Generate("Berlin, DE")
	b := newTestForecast(now).Generate("Berlin, DE")

	for i := range a.Daily {
		if a.Daily[i] != b.Daily[i] {
			t.Errorf("daily[%d] differs: %+v vs %+v", i, a.Daily[i], b.Daily[i])
		}
	}
}

func TestGenerateRedrawsRandomFieldsButKeepsConditions(t *testing.T) {
	uc := NewForecastUseCase(nil, nil)
	first := uc.Generate("Oslo, NO")

	differs := false
	for trial := 0; trial < 50; trial++ {
		next := uc.Generate("Oslo, NO")

		if next.Condition != first.Condition {
			t.Fatalf("trial %d: condition %v, want %v", trial, next.Condition, first.Condition)
		}
		for i := range next.Hourly {
			if next.Hourly[i].Condition != first.Hourly[i].Condition {
				t.Fatalf("trial %d: hourly[%d] condition changed", trial, i)
			}
			if next.Hourly[i].PrecipChance != first.Hourly[i].PrecipChance {
				differs = true
			}
		}
		for i := range next.Daily {
			if next.Daily[i].Condition != first.Daily[i].Condition {
				t.Fatalf("trial %d: daily[%d] condition changed", trial, i)
			}
			d, f := next.Daily[i], first.Daily[i]
			if d.MinTemp != f.MinTemp || d.MaxTemp != f.MaxTemp || d.PrecipChance != f.PrecipChance {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("every call produced identical precipitation and daily temperatures")
	}
}
