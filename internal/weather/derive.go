package weather

import "fmt"

// Color tokens for rendered views. Values are 24-bit RGB.
const (
	colorLightBlue = 0xADD8E6
	colorBlue      = 0x3498DB
	colorTeal      = 0x1ABC9C
	colorGreen     = 0x2ECC71
	colorGold      = 0xF1C40F
	colorOrange    = 0xE67E22
	colorRed       = 0xE74C3C
	colorPurple    = 0x9B59B6
	colorGrey      = 0x979C9F
)

// UVRiskLevel classifies a UV index. Boundaries are half-open on the low
// end: exactly 3.0 is Moderate.
func UVRiskLevel(uvIndex float64) string {
	switch {
	case uvIndex < 3:
		return "Low"
	case uvIndex < 6:
		return "Moderate"
	case uvIndex < 8:
		return "High"
	case uvIndex < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

// PressureInfo carries the icon token and advisory phrase for a pressure
// bucket.
type PressureInfo struct {
	Icon   string
	Advice string
}

// PressureTrend buckets barometric pressure into five contiguous ranges,
// evaluated top-down with first match winning. 980 exactly falls into the
// lowest bucket.
func PressureTrend(pressureHpa int) PressureInfo {
	switch {
	case pressureHpa > 1020:
		return PressureInfo{Icon: "🔼", Advice: "High pressure - clear skies likely"}
	case pressureHpa > 1013:
		return PressureInfo{Icon: "↗️", Advice: "Rising - improving conditions"}
	case pressureHpa > 1000:
		return PressureInfo{Icon: "➡️", Advice: "Stable conditions"}
	case pressureHpa > 980:
		return PressureInfo{Icon: "↘️", Advice: "Falling - weather may worsen"}
	default:
		return PressureInfo{Icon: "🔻", Advice: "Low pressure - storms possible"}
	}
}

// MoonInfo describes one of the eight named lunar phases.
type MoonInfo struct {
	Icon         string
	Phase        string
	Illumination int
}

// MoonPhaseInfo maps a 0-1 lunar cycle fraction onto a named phase with an
// approximate illumination percentage. New moon pins illumination to 0 and
// full moon to 100.
func MoonPhaseInfo(fraction float64) MoonInfo {
	illumination := int(fraction * 200)
	if fraction > 0.5 {
		illumination = int((1 - fraction) * 200)
	}

	switch {
	case fraction < 0.0625:
		return MoonInfo{Icon: "🌑", Phase: "New Moon", Illumination: 0}
	case fraction < 0.1875:
		return MoonInfo{Icon: "🌒", Phase: "Waxing Crescent", Illumination: illumination}
	case fraction < 0.3125:
		return MoonInfo{Icon: "🌓", Phase: "First Quarter", Illumination: illumination}
	case fraction < 0.4375:
		return MoonInfo{Icon: "🌔", Phase: "Waxing Gibbous", Illumination: illumination}
	case fraction < 0.5625:
		return MoonInfo{Icon: "🌕", Phase: "Full Moon", Illumination: 100}
	case fraction < 0.6875:
		return MoonInfo{Icon: "🌖", Phase: "Waning Gibbous", Illumination: illumination}
	case fraction < 0.8125:
		return MoonInfo{Icon: "🌗", Phase: "Last Quarter", Illumination: illumination}
	default:
		return MoonInfo{Icon: "🌘", Phase: "Waning Crescent", Illumination: illumination}
	}
}

// StandardAQI converts the provider's 1-5 air-quality scale to an
// approximate standard 0-500 value. Out-of-range input falls back to 100.
func StandardAQI(owmScale int) int {
	switch owmScale {
	case 1:
		return 25
	case 2:
		return 75
	case 3:
		return 125
	case 4:
		return 200
	case 5:
		return 400
	default:
		return 100
	}
}

// StandardAQIRange labels the bracket a standard AQI value falls into.
func StandardAQIRange(aqi int) string {
	switch {
	case aqi <= 50:
		return "(0-50)"
	case aqi <= 100:
		return "(51-100)"
	case aqi <= 150:
		return "(101-150)"
	case aqi <= 200:
		return "(151-200)"
	case aqi <= 300:
		return "(201-300)"
	case aqi <= 400:
		return "(301-400)"
	case aqi <= 500:
		return "(401-500)"
	default:
		return "(500+)"
	}
}

type aqiLevel struct {
	Name   string
	Icon   string
	Color  int
	Advice string
}

var aqiLevels = map[int]aqiLevel{
	1: {"Good", "💚", colorGreen, "Air quality is excellent. Perfect for all outdoor activities! 🏃‍♂️🚴‍♀️"},
	2: {"Fair", "💛", colorGold, "Air quality is acceptable for most people. Enjoy outdoor activities! 🚶‍♀️"},
	3: {"Moderate", "🧡", colorOrange, "Moderate air quality. Sensitive individuals should limit prolonged outdoor exertion. ⚠️"},
	4: {"Poor", "❤️", colorRed, "Unhealthy air quality. Everyone should reduce outdoor activities. Consider wearing a mask. 😷"},
	5: {"Very Poor", "💜", colorPurple, "Very unhealthy air quality. Avoid outdoor activities. Stay indoors and use air purifiers. 🏠"},
}

func lookupAQILevel(index int) aqiLevel {
	if level, ok := aqiLevels[index]; ok {
		return level
	}
	return aqiLevel{"Unknown", "❓", colorGrey, "Monitor air quality regularly."}
}

// TemperatureColor picks a view color hint from the Celsius temperature.
func TemperatureColor(celsius float64) int {
	switch {
	case celsius <= -10:
		return colorLightBlue
	case celsius <= 0:
		return colorBlue
	case celsius <= 10:
		return colorTeal
	case celsius <= 20:
		return colorGreen
	case celsius <= 30:
		return colorGold
	case celsius <= 35:
		return colorOrange
	default:
		return colorRed
	}
}

// ConditionIcon maps a provider condition code to a display icon.
func ConditionIcon(conditionID int) string {
	switch {
	case conditionID < 300:
		return "⛈️"
	case conditionID < 400:
		return "🌦️"
	case conditionID < 600:
		return "🌧️"
	case conditionID < 700:
		return "❄️"
	case conditionID < 800:
		return "🌫️"
	case conditionID == 800:
		return "☀️"
	case conditionID == 801:
		return "🌤️"
	case conditionID == 802:
		return "⛅"
	default:
		return "☁️"
	}
}

// SevereWeatherWarnings runs the independent threshold checks over current
// conditions. Checks are non-exclusive and emitted in a fixed order; an
// empty slice means no warning. The today entry is part of the contract so
// day-scoped checks can be added without changing callers.
func SevereWeatherWarnings(current Observation, today DayEntry) []string {
	var warnings []string

	temp := current.Temp
	switch {
	case temp <= -20:
		warnings = append(warnings, "🥶 **Extreme Cold**: Dangerous conditions - limit outdoor exposure")
	case temp >= 40:
		warnings = append(warnings, "🔥 **Extreme Heat**: Heat emergency conditions - stay hydrated and cool")
	case temp >= 35:
		warnings = append(warnings, "🌡️ **Very Hot**: High heat stress risk - take frequent breaks")
	case temp <= -10:
		warnings = append(warnings, "❄️ **Very Cold**: Frostbite risk - dress warmly")
	}

	windKmh := current.WindSpeed * 3.6
	if windKmh >= 60 {
		warnings = append(warnings, "💨 **High Wind Warning**: Dangerous wind speeds - avoid outdoor activities")
	} else if windKmh >= 40 {
		warnings = append(warnings, "🌬️ **Strong Winds**: Use caution outdoors - secure loose objects")
	}

	if current.FeelsLike >= 40 {
		warnings = append(warnings, fmt.Sprintf("🔥 **Heat Index Warning**: Feels like %.0f°C - heat exhaustion risk", current.FeelsLike))
	} else if current.FeelsLike <= -25 {
		warnings = append(warnings, fmt.Sprintf("🧊 **Wind Chill Warning**: Feels like %.0f°C - frostbite risk", current.FeelsLike))
	}

	if current.UVIndex >= 11 {
		warnings = append(warnings, "☀️ **Extreme UV**: Avoid sun exposure - use maximum protection")
	} else if current.UVIndex >= 8 {
		warnings = append(warnings, "🌞 **Very High UV**: Limit midday sun exposure")
	}

	id := current.Condition.ID
	switch {
	case id >= 200 && id < 300:
		warnings = append(warnings, "⛈️ **Thunderstorms**: Lightning risk - seek shelter indoors")
	case id >= 600 && id < 700:
		if current.Snow1h != nil && *current.Snow1h > 5 {
			warnings = append(warnings, "❄️ **Heavy Snow**: Poor visibility and travel conditions")
		}
	case id >= 500 && id < 600:
		if current.Rain1h != nil && *current.Rain1h > 10 {
			warnings = append(warnings, "🌧️ **Heavy Rain**: Flooding possible - avoid low-lying areas")
		}
	}

	if current.Humidity >= 90 && temp >= 25 {
		warnings = append(warnings, "💧 **High Humidity**: Uncomfortable conditions - heat stress risk")
	} else if current.Humidity <= 20 {
		warnings = append(warnings, "🏜️ **Very Dry**: Fire risk elevated - stay hydrated")
	}

	return warnings
}
