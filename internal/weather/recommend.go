package weather

import (
	"strings"
	"time"
)

// ClothingRecommendation picks a clothing suggestion from a priority-ordered
// decision table over temperature bands with condition sub-branches. The
// second return is false when no branch matches; only the warmest band can
// fall through (condition codes 600-799 have no branch there), and callers
// must not substitute a default.
func ClothingRecommendation(tempC float64, conditionID int, windSpeedMps float64) (string, bool) {
	switch {
	case tempC >= 25:
		switch {
		case conditionID == 800:
			return "Light clothing, sunglasses", true
		case conditionID >= 801 && conditionID <= 804:
			return "Light clothing, maybe a light layer", true
		case conditionID >= 200 && conditionID < 600:
			return "Light clothing + waterproof jacket", true
		}
		return "", false
	case tempC >= 15:
		switch {
		case conditionID >= 200 && conditionID < 600:
			return "Light jacket + waterproof layer", true
		case windSpeedMps > 5:
			return "Light jacket, windbreaker recommended", true
		}
		return "Light jacket or sweater", true
	case tempC >= 5:
		switch {
		case conditionID >= 600 && conditionID < 700:
			return "Warm coat, gloves, winter boots", true
		case conditionID >= 200 && conditionID < 600:
			return "Warm jacket + waterproof outer layer", true
		}
		return "Warm jacket, long pants", true
	case tempC >= -5:
		return "Heavy coat, gloves, warm layers", true
	default:
		return "Heavy winter gear, multiple layers", true
	}
}

// CurrentActivityRecommendation walks an ordered rule list, first match
// wins, and always returns a non-empty string. popPercent is the chance of
// precipitation as an integer percentage.
func CurrentActivityRecommendation(tempC float64, conditionID int, windSpeedMps float64, uvIndex float64, humidity int, popPercent int) string {
	if tempC >= 15 && tempC <= 25 && conditionID == 800 && windSpeedMps < 15 && uvIndex < 8 {
		return "Perfect for outdoor activities! 🌟"
	}

	clearish := conditionID == 800 || conditionID == 801 || conditionID == 802
	if tempC >= 10 && tempC <= 30 && clearish && windSpeedMps < 20 && popPercent < 30 {
		var activities []string
		if tempC >= 20 {
			activities = append(activities, "swimming 🏊", "hiking 🥾", "cycling 🚴")
		} else {
			activities = append(activities, "walking 🚶", "jogging 🏃", "outdoor sports ⚽")
		}
		if uvIndex > 6 {
			activities = append(activities, "wear sunscreen ☂️")
		}
		return "Great for: " + strings.Join(activities, ", ")
	}

	if conditionID >= 500 && conditionID < 600 {
		if popPercent > 60 {
			return "Indoor activities recommended ☔ - museums, shopping, reading 📚"
		}
		return "Light rain possible - bring umbrella ☂️ for short outings"
	}

	if conditionID >= 600 && conditionID < 700 {
		return "Winter activities! ❄️ - skiing, snowboarding, winter walks"
	}

	if tempC < 0 {
		return "Bundle up! 🧥 - ice skating, winter sports, or cozy indoor time ☕"
	}

	if tempC > 30 {
		if humidity > 70 {
			return "Stay cool! 🧊 - swimming, air-conditioned spaces, early morning activities"
		}
		return "Hot weather! 🌡️ - pool time, early/late outdoor activities, stay hydrated"
	}

	if windSpeedMps > 25 {
		return "Windy conditions 💨 - indoor activities or sheltered outdoor spots"
	}

	if uvIndex > 8 {
		return "High UV! ☀️ - seek shade, wear protection, outdoor activities before 10am/after 4pm"
	}

	return "Check conditions and dress appropriately! 👕"
}

// DailyActivityRecommendation evaluates an ordered rule list for a forecast
// day. Temperatures are Celsius; wind arrives already converted to the
// display unit. Returns false when no rule matches.
func DailyActivityRecommendation(tempMaxC, tempMinC float64, conditionID int, popPercent int, windSpeedConverted float64, uvIndex float64) (string, bool) {
	if tempMaxC >= 20 && tempMaxC <= 28 && tempMinC >= 15 &&
		(conditionID == 800 || conditionID == 801) && popPercent < 20 {
		return "Perfect day for outdoor plans!", true
	}

	clearish := conditionID == 800 || conditionID == 801 || conditionID == 802
	if tempMaxC >= 15 && tempMaxC <= 30 && clearish && popPercent < 40 {
		return "Great day for outdoor activities", true
	}

	if (conditionID >= 500 && conditionID < 600) || popPercent > 60 {
		return "Plan indoor activities", true
	}

	if tempMaxC > 32 {
		return "Early morning/evening outdoor time", true
	}

	if tempMaxC < 5 {
		return "Winter activities or indoor plans", true
	}

	if windSpeedConverted > 25 {
		return "Sheltered activities recommended", true
	}

	if uvIndex > 8 {
		return "Sun protection essential", true
	}

	return "", false
}

// SeasonalContext produces a note when the day's high is anomalous for the
// calendar season. Seasons are Northern-hemisphere only; the source data
// carries no hemisphere information, so this is a documented limitation.
// Returns false when the temperature is within the normal band.
func SeasonalContext(month time.Month, tempMaxC float64) (string, bool) {
	switch month {
	case time.December, time.January, time.February:
		if tempMaxC > 15 {
			return "🌡️ Unusually warm for winter - enjoy the mild weather!", true
		}
		if tempMaxC < -5 {
			return "❄️ Very cold winter day - typical winter conditions", true
		}
	case time.March, time.April, time.May:
		if tempMaxC > 25 {
			return "🌸 Warm spring day - great weather for outdoor activities!", true
		}
		if tempMaxC < 5 {
			return "🌧️ Cool spring day - still transitioning from winter", true
		}
	case time.June, time.July, time.August:
		if tempMaxC > 35 {
			return "☀️ Very hot summer day - stay cool and hydrated!", true
		}
		if tempMaxC < 20 {
			return "🌤️ Cool summer day - pleasant break from the heat", true
		}
	case time.September, time.October, time.November:
		if tempMaxC > 25 {
			return "🍂 Warm autumn day - beautiful weather for outdoor activities!", true
		}
		if tempMaxC < 10 {
			return "🍁 Cool autumn day - sweater weather begins", true
		}
	}
	return "", false
}
