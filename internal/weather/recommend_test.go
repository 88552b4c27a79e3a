package weather

import (
	"strings"
	"testing"
	"time"
)

func TestClothingRecommendation(t *testing.T) {
	tests := []struct {
		name        string
		tempC       float64
		conditionID int
		windMps     float64
		want        string
		wantOK      bool
	}{
		{"hot clear", 28, 800, 2, "Light clothing, sunglasses", true},
		{"hot cloudy", 26, 803, 2, "Light clothing, maybe a light layer", true},
		{"hot rain", 30, 500, 2, "Light clothing + waterproof jacket", true},
		{"hot snow code falls through", 25, 600, 2, "", false},
		{"mild rain", 18, 521, 2, "Light jacket + waterproof layer", true},
		{"mild windy", 18, 800, 6, "Light jacket, windbreaker recommended", true},
		{"mild default", 18, 800, 2, "Light jacket or sweater", true},
		{"cool snow", 7, 601, 2, "Warm coat, gloves, winter boots", true},
		{"cool rain", 7, 500, 2, "Warm jacket + waterproof outer layer", true},
		{"cool default", 7, 800, 2, "Warm jacket, long pants", true},
		{"cold", 0, 800, 2, "Heavy coat, gloves, warm layers", true},
		{"frigid", -10, 800, 2, "Heavy winter gear, multiple layers", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClothingRecommendation(tt.tempC, tt.conditionID, tt.windMps)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCurrentActivityRecommendation(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		id   int
		wind float64
		uv   float64
		hum  int
		pop  int
		want string
	}{
		{"ideal", 20, 800, 5, 4, 50, 10, "Perfect for outdoor activities! 🌟"},
		{"warm outdoor list", 22, 801, 5, 4, 50, 10, "Great for: swimming 🏊, hiking 🥾, cycling 🚴"},
		{"cool outdoor list", 12, 801, 5, 4, 50, 10, "Great for: walking 🚶, jogging 🏃, outdoor sports ⚽"},
		{"outdoor with sunscreen", 22, 801, 5, 7, 50, 10, "Great for: swimming 🏊, hiking 🥾, cycling 🚴, wear sunscreen ☂️"},
		{"rain likely", 18, 500, 5, 4, 50, 70, "Indoor activities recommended ☔ - museums, shopping, reading 📚"},
		{"rain possible", 18, 500, 5, 4, 50, 40, "Light rain possible - bring umbrella ☂️ for short outings"},
		{"snow", 0, 600, 5, 1, 50, 10, "Winter activities! ❄️ - skiing, snowboarding, winter walks"},
		{"freezing", -5, 800, 20, 1, 50, 10, "Bundle up! 🧥 - ice skating, winter sports, or cozy indoor time ☕"},
		{"hot humid", 33, 804, 5, 4, 80, 10, "Stay cool! 🧊 - swimming, air-conditioned spaces, early morning activities"},
		{"hot dry", 33, 804, 5, 4, 40, 10, "Hot weather! 🌡️ - pool time, early/late outdoor activities, stay hydrated"},
		{"gale", 15, 804, 30, 4, 50, 10, "Windy conditions 💨 - indoor activities or sheltered outdoor spots"},
		{"high uv", 15, 804, 5, 9, 50, 10, "High UV! ☀️ - seek shade, wear protection, outdoor activities before 10am/after 4pm"},
		{"fallback", 8, 804, 5, 4, 50, 10, "Check conditions and dress appropriately! 👕"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentActivityRecommendation(tt.temp, tt.id, tt.wind, tt.uv, tt.hum, tt.pop)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurrentActivityRecommendationNeverEmpty(t *testing.T) {
	for _, temp := range []float64{-30, -5, 0, 10, 20, 30, 45} {
		for _, id := range []int{200, 300, 500, 600, 741, 800, 802, 804} {
			if got := CurrentActivityRecommendation(temp, id, 5, 4, 50, 10); got == "" {
				t.Errorf("empty recommendation for temp=%v id=%d", temp, id)
			}
		}
	}
}

func TestDailyActivityRecommendation(t *testing.T) {
	tests := []struct {
		name   string
		max    float64
		min    float64
		id     int
		pop    int
		wind   float64
		uv     float64
		want   string
		wantOK bool
	}{
		{"perfect", 24, 16, 800, 10, 10, 5, "Perfect day for outdoor plans!", true},
		{"great", 18, 10, 802, 20, 10, 5, "Great day for outdoor activities", true},
		{"rainy", 18, 10, 500, 20, 10, 5, "Plan indoor activities", true},
		{"wet without rain code", 18, 10, 804, 70, 10, 5, "Plan indoor activities", true},
		{"scorching", 35, 25, 804, 10, 10, 5, "Early morning/evening outdoor time", true},
		{"cold", 2, -3, 804, 10, 10, 5, "Winter activities or indoor plans", true},
		{"windy", 10, 5, 804, 10, 30, 5, "Sheltered activities recommended", true},
		{"uv", 10, 5, 804, 10, 10, 9, "Sun protection essential", true},
		{"no match", 10, 5, 804, 10, 10, 5, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DailyActivityRecommendation(tt.max, tt.min, tt.id, tt.pop, tt.wind, tt.uv)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSeasonalContext(t *testing.T) {
	tests := []struct {
		name   string
		month  time.Month
		max    float64
		wantOK bool
		frag   string
	}{
		{"warm winter", time.January, 18, true, "Unusually warm for winter"},
		{"cold winter", time.February, -8, true, "Very cold winter day"},
		{"normal winter", time.December, 5, false, ""},
		{"warm spring", time.April, 27, true, "Warm spring day"},
		{"cool spring", time.March, 2, true, "Cool spring day"},
		{"hot summer", time.July, 38, true, "Very hot summer day"},
		{"cool summer", time.August, 15, true, "Cool summer day"},
		{"normal summer", time.June, 28, false, ""},
		{"warm autumn", time.October, 27, true, "Warm autumn day"},
		{"cool autumn", time.November, 5, true, "Cool autumn day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SeasonalContext(tt.month, tt.max)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && !strings.Contains(got, tt.frag) {
				t.Errorf("got %q, want to contain %q", got, tt.frag)
			}
		})
	}
}
