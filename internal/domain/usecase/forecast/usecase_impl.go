package forecast

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf16"

	"weather-pulse/internal/domain/entity"

	"github.com/jonboulle/clockwork"
)

const (
	HourlyPoints = 24
	DailyPoints  = 7

	currentTemp = 22
	highTemp    = 26
	lowTemp     = 18
	feelsLike   = 24
	humidity    = 65
	windSpeed   = 12
	uvIndex     = 4
	aqi         = 35
	sunrise     = "06:30 AM"
	sunset      = "07:45 PM"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type forecastUseCase struct {
	clock clockwork.Clock

	mu   sync.Mutex
	rand *rand.Rand
}

// NewForecastUseCase returns the mock generator. Nil arguments fall back to wall time and
// an unseeded source.
func NewForecastUseCase(r *rand.Rand, clock clockwork.Clock) UseCase {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &forecastUseCase{clock: clock, rand: r}
}

func (uc *forecastUseCase) Generate(location string) entity.WeatherSnapshot {
	seed := Seed(location)
	condition := ConditionAt(seed, 0)

	uc.mu.Lock()
	hourly := uc.hourly(seed)
	daily := uc.daily(seed)
	uc.mu.Unlock()

	return entity.WeatherSnapshot{
		Location:    location,
		CurrentTemp: currentTemp,
		Condition:   condition,
		High:        highTemp,
		Low:         lowTemp,
		FeelsLike:   feelsLike,
		Humidity:    humidity,
		WindSpeed:   windSpeed,
		UVIndex:     uvIndex,
		Sunrise:     sunrise,
		Sunset:      sunset,
		Description: fmt.Sprintf("Expect %s conditions throughout the day.", strings.ToLower(condition.String())),
		AQI:         aqi,
		Unit:        entity.Celsius,
		Hourly:      hourly,
		Daily:       daily,
	}
}

func (uc *forecastUseCase) hourly(seed int) []entity.HourlyPoint {
	points := make([]entity.HourlyPoint, HourlyPoints)
	for i := range points {
		points[i] = entity.HourlyPoint{
			Time:         fmt.Sprintf("%d:00", i),
			Temp:         20 + math.Sin(float64(i)/3)*5,
			Condition:    ConditionAt(seed, i),
			PrecipChance: int(math.Floor(uc.rand.Float64() * 30)),
		}
	}
	return points
}

func (uc *forecastUseCase) daily(seed int) []entity.DailyPoint {
	today := int(uc.clock.Now().Weekday())
	points := make([]entity.DailyPoint, DailyPoints)
	for i := range points {
		points[i] = entity.DailyPoint{
			Day:          weekdayLabels[(today+i)%7],
			MinTemp:      15 + uc.rand.Float64()*5,
			MaxTemp:      25 + uc.rand.Float64()*5,
			Condition:    ConditionAt(seed, i),
			PrecipChance: int(math.Floor(uc.rand.Float64() * 60)),
		}
	}
	return points
}

// Seed is the length of location in UTF-16 code units.
func Seed(location string) int {
	return len(utf16.Encode([]rune(location)))
}

// ConditionAt is the condition the generator assigns to offset i for a given seed.
func ConditionAt(seed, i int) entity.WeatherCondition {
	return entity.Conditions[(seed+i)%len(entity.Conditions)]
}
