package weather

import "math"

var compassSectors = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Temperature converts a stored Celsius value to the display unit and
// rounds to the nearest integer, ties away from zero.
func Temperature(celsius float64, units Units) int {
	if units == UnitsImperial {
		return int(math.Round(celsius*9/5 + 32))
	}
	return int(math.Round(celsius))
}

// TempUnit returns the display symbol for the unit system.
func TempUnit(units Units) string {
	if units == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// Speed converts a stored m/s value to km/h (metric) or mph (imperial),
// rounded to one decimal.
func Speed(metersPerSecond float64, units Units) float64 {
	if units == UnitsImperial {
		return math.Round(metersPerSecond*2.237*10) / 10
	}
	return math.Round(metersPerSecond*3.6*10) / 10
}

// SpeedUnit returns the display label for the unit system.
func SpeedUnit(units Units) string {
	if units == UnitsImperial {
		return "mph"
	}
	return "km/h"
}

// WindCompass maps degrees onto one of 16 compass sectors of 22.5° each.
// 360 wraps back to N.
func WindCompass(degrees float64) string {
	index := int(math.Round(degrees/22.5)) % 16
	return compassSectors[index]
}
