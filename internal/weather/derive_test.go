package weather

import (
	"strings"
	"testing"
)

func TestUVRiskLevel(t *testing.T) {
	tests := []struct {
		uv   float64
		want string
	}{
		{0, "Low"},
		{2.9, "Low"},
		{3, "Moderate"},
		{5.9, "Moderate"},
		{6, "High"},
		{7.9, "High"},
		{8, "Very High"},
		{10.9, "Very High"},
		{11, "Extreme"},
		{15, "Extreme"},
	}
	for _, tt := range tests {
		if got := UVRiskLevel(tt.uv); got != tt.want {
			t.Errorf("UVRiskLevel(%v) = %q, want %q", tt.uv, got, tt.want)
		}
	}
}

func TestPressureTrend(t *testing.T) {
	tests := []struct {
		hpa      int
		wantIcon string
	}{
		{1030, "🔼"},
		{1021, "🔼"},
		{1020, "↗️"},
		{1014, "↗️"},
		{1013, "➡️"},
		{1001, "➡️"},
		{1000, "↘️"},
		{981, "↘️"},
		{980, "🔻"},
		{950, "🔻"},
	}
	for _, tt := range tests {
		if got := PressureTrend(tt.hpa); got.Icon != tt.wantIcon {
			t.Errorf("PressureTrend(%d).Icon = %q, want %q", tt.hpa, got.Icon, tt.wantIcon)
		}
	}
}

func TestMoonPhaseInfo(t *testing.T) {
	tests := []struct {
		fraction  string
		value     float64
		wantPhase string
		wantIllum int
	}{
		{"new moon", 0, "New Moon", 0},
		{"new moon boundary", 0.06, "New Moon", 0},
		{"waxing crescent", 0.1, "Waxing Crescent", 20},
		{"first quarter", 0.25, "First Quarter", 50},
		{"waxing gibbous", 0.4, "Waxing Gibbous", 80},
		{"full moon", 0.5, "Full Moon", 100},
		{"waning gibbous", 0.6, "Waning Gibbous", 80},
		{"last quarter", 0.75, "Last Quarter", 50},
		{"waning crescent", 0.95, "Waning Crescent", 10},
	}
	for _, tt := range tests {
		t.Run(tt.fraction, func(t *testing.T) {
			got := MoonPhaseInfo(tt.value)
			if got.Phase != tt.wantPhase {
				t.Errorf("phase = %q, want %q", got.Phase, tt.wantPhase)
			}
			if got.Illumination != tt.wantIllum {
				t.Errorf("illumination = %d, want %d", got.Illumination, tt.wantIllum)
			}
		})
	}
}

func TestStandardAQI(t *testing.T) {
	tests := []struct {
		scale int
		want  int
	}{
		{1, 25}, {2, 75}, {3, 125}, {4, 200}, {5, 400},
		{0, 100}, {6, 100}, {-1, 100},
	}
	for _, tt := range tests {
		if got := StandardAQI(tt.scale); got != tt.want {
			t.Errorf("StandardAQI(%d) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestStandardAQIRange(t *testing.T) {
	tests := []struct {
		aqi  int
		want string
	}{
		{25, "(0-50)"},
		{50, "(0-50)"},
		{75, "(51-100)"},
		{125, "(101-150)"},
		{200, "(151-200)"},
		{300, "(201-300)"},
		{400, "(301-400)"},
		{500, "(401-500)"},
		{501, "(500+)"},
	}
	for _, tt := range tests {
		if got := StandardAQIRange(tt.aqi); got != tt.want {
			t.Errorf("StandardAQIRange(%d) = %q, want %q", tt.aqi, got, tt.want)
		}
	}
}

func TestLookupAQILevel(t *testing.T) {
	if got := lookupAQILevel(1); got.Name != "Good" {
		t.Errorf("level 1 = %q, want Good", got.Name)
	}
	if got := lookupAQILevel(5); got.Name != "Very Poor" {
		t.Errorf("level 5 = %q, want Very Poor", got.Name)
	}
	got := lookupAQILevel(9)
	if got.Name != "Unknown" || got.Icon != "❓" {
		t.Errorf("out-of-range level = %+v, want Unknown fallback", got)
	}
}

func TestTemperatureColor(t *testing.T) {
	tests := []struct {
		celsius float64
		want    int
	}{
		{-15, colorLightBlue},
		{-10, colorLightBlue},
		{-5, colorBlue},
		{0, colorBlue},
		{5, colorTeal},
		{15, colorGreen},
		{25, colorGold},
		{32, colorOrange},
		{36, colorRed},
	}
	for _, tt := range tests {
		if got := TemperatureColor(tt.celsius); got != tt.want {
			t.Errorf("TemperatureColor(%v) = %#x, want %#x", tt.celsius, got, tt.want)
		}
	}
}

func TestConditionIcon(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{200, "⛈️"},
		{300, "🌦️"},
		{500, "🌧️"},
		{600, "❄️"},
		{741, "🌫️"},
		{800, "☀️"},
		{801, "🌤️"},
		{802, "⛅"},
		{803, "☁️"},
		{804, "☁️"},
	}
	for _, tt := range tests {
		if got := ConditionIcon(tt.id); got != tt.want {
			t.Errorf("ConditionIcon(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestSevereWeatherWarningsAccumulate(t *testing.T) {
	rain := 12.0
	current := Observation{
		Temp:      41,
		FeelsLike: 45,
		Humidity:  15,
		WindSpeed: 17, // 61.2 km/h
		UVIndex:   11,
		Rain1h:    &rain,
		Condition: Condition{ID: 501},
	}
	warnings := SevereWeatherWarnings(current, DayEntry{})
	if len(warnings) != 6 {
		t.Fatalf("got %d warnings, want 6: %v", len(warnings), warnings)
	}
	wantOrder := []string{"Extreme Heat", "High Wind Warning", "Heat Index Warning", "Extreme UV", "Heavy Rain", "Very Dry"}
	for i, fragment := range wantOrder {
		if !strings.Contains(warnings[i], fragment) {
			t.Errorf("warnings[%d] = %q, want to contain %q", i, warnings[i], fragment)
		}
	}
}

func TestSevereWeatherWarningsEmpty(t *testing.T) {
	current := Observation{
		Temp:      20,
		FeelsLike: 20,
		Humidity:  50,
		WindSpeed: 3,
		UVIndex:   4,
		Condition: Condition{ID: 800},
	}
	if warnings := SevereWeatherWarnings(current, DayEntry{}); len(warnings) != 0 {
		t.Errorf("mild conditions produced warnings: %v", warnings)
	}
}

func TestSevereWeatherWarningsPrecipitationThresholds(t *testing.T) {
	lightSnow := 3.0
	current := Observation{
		Temp: 0, FeelsLike: 0, Humidity: 50, UVIndex: 1,
		Snow1h:    &lightSnow,
		Condition: Condition{ID: 601},
	}
	if warnings := SevereWeatherWarnings(current, DayEntry{}); len(warnings) != 0 {
		t.Errorf("snow below 5mm/h produced warnings: %v", warnings)
	}

	heavySnow := 6.0
	current.Snow1h = &heavySnow
	warnings := SevereWeatherWarnings(current, DayEntry{})
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Heavy Snow") {
		t.Errorf("snow above 5mm/h: got %v, want single Heavy Snow warning", warnings)
	}
}
