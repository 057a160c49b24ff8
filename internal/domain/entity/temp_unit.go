package entity

type TempUnit string

const (
	Celsius    TempUnit = "C"
	Fahrenheit TempUnit = "F"
)

func (u TempUnit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// ConvertTemp converts v between the two supported units.
func ConvertTemp(v float64, from, to TempUnit) float64 {
	switch {
	case from == to:
		return v
	case from == Celsius && to == Fahrenheit:
		return v*9/5 + 32
	case from == Fahrenheit && to == Celsius:
		return (v - 32) * 5 / 9
	default:
		return v
	}
}
