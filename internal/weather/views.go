package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MaxSectionLength is the hard per-section limit of the presentation
// boundary (platform embed-field constraint).
const MaxSectionLength = 1020

const truncationMarker = "... [truncated]"

// Section is one labeled block of a rendered view.
type Section struct {
	Name   string
	Value  string
	Inline bool
}

// View is the structured, human-readable rendering of a snapshot subset.
type View struct {
	Title       string
	Description string
	Sections    []Section
	Color       int
	Footer      string
}

// TruncateSection caps text at MaxSectionLength, cutting at the last space
// at or before the limit minus marker room and appending the marker. Text
// already within the limit is returned unchanged.
func TruncateSection(text string) string {
	if len(text) <= MaxSectionLength {
		return text
	}
	cut := text[:MaxSectionLength-len(truncationMarker)]
	if i := strings.LastIndexByte(cut, ' '); i >= 0 {
		cut = cut[:i]
	}
	return cut + truncationMarker
}

// Render dispatches on the selection's tab. Unknown tabs render the
// current-conditions view.
func Render(snap *Snapshot, loc Location, sel ViewSelection) *View {
	switch sel.Tab {
	case TabHourly:
		return HourlyView(snap, loc, sel.Units)
	case TabDaily:
		return DailyView(snap, loc, sel.Units)
	case TabDetails:
		return DetailsView(snap, loc, sel.Units)
	case TabActivities:
		return ActivitiesView(snap, loc, sel.Units)
	case TabAirQuality:
		return AirQualityView(snap, loc)
	default:
		return CurrentView(snap, loc, sel.Units)
	}
}

// CurrentView renders the streamlined current-conditions view.
func CurrentView(snap *Snapshot, loc Location, units Units) *View {
	current := snap.Current
	today := snap.Daily[0]

	view := &View{
		Title:       fmt.Sprintf("%s Current Weather", ConditionIcon(current.Condition.ID)),
		Description: fmt.Sprintf("📍 **%s**\n%s", loc.DisplayName(), titleWords(current.Condition.Description)),
		Color:       TemperatureColor(current.Temp),
	}

	tempUnit := TempUnit(units)
	temp := Temperature(current.Temp, units)
	feelsLike := Temperature(current.FeelsLike, units)

	tempText := fmt.Sprintf("**%d%s**", temp, tempUnit)
	if math.Abs(current.Temp-current.FeelsLike) > 1 {
		tempText += fmt.Sprintf(" (feels like %d%s)", feelsLike, tempUnit)
	}
	if rec, ok := ClothingRecommendation(current.Temp, current.Condition.ID, current.WindSpeed); ok {
		tempText += fmt.Sprintf("\n👕 *%s*", rec)
	}
	view.Sections = append(view.Sections, Section{Name: "🌡️ Temperature", Value: tempText, Inline: true})

	speedUnit := SpeedUnit(units)
	windText := fmt.Sprintf("Speed: %.1f %s", Speed(current.WindSpeed, units), speedUnit)
	if current.WindDeg != nil {
		windText += "\nDirection: " + WindCompass(*current.WindDeg)
	}
	if current.WindGust != nil {
		windText += fmt.Sprintf("\nGusts: %.1f %s", Speed(*current.WindGust, units), speedUnit)
	}
	view.Sections = append(view.Sections, Section{Name: "💨 Wind", Value: windText, Inline: true})

	trend := PressureTrend(current.Pressure)
	atmText := fmt.Sprintf("Humidity: %d%%\nPressure: %d hPa %s\n*%s*",
		current.Humidity, current.Pressure, trend.Icon, trend.Advice)
	view.Sections = append(view.Sections, Section{Name: "💧 Atmosphere", Value: atmText, Inline: true})

	uvText := fmt.Sprintf("UV Index: %s (%s)", formatFloat(current.UVIndex), UVRiskLevel(current.UVIndex))
	if current.Visibility != nil {
		uvText += fmt.Sprintf("\nVisibility: %.1f km", float64(*current.Visibility)/1000)
	}
	if current.UVIndex > 3 {
		uvText += "\n☂️ *Use sun protection*"
	}
	view.Sections = append(view.Sections, Section{Name: "☀️ UV & Visibility", Value: uvText, Inline: true})

	if current.Rain1h != nil || current.Snow1h != nil {
		var parts []string
		if current.Rain1h != nil {
			parts = append(parts, fmt.Sprintf("Rain: %smm/h", formatFloat(*current.Rain1h)))
		}
		if current.Snow1h != nil {
			parts = append(parts, fmt.Sprintf("Snow: %smm/h", formatFloat(*current.Snow1h)))
		}
		view.Sections = append(view.Sections, Section{Name: "🌧️ Precipitation", Value: strings.Join(parts, "\n"), Inline: true})
	}

	pop := popPercent(today.Pop)
	outlookText := fmt.Sprintf("High: %d%s\nLow: %d%s\nRain chance: %d%%",
		Temperature(today.TempMax, units), tempUnit,
		Temperature(today.TempMin, units), tempUnit, pop)
	if pop > 60 {
		outlookText += "\n☔ *Expect rain today*"
	} else if pop > 30 {
		outlookText += "\n🌦️ *Possible showers*"
	}
	view.Sections = append(view.Sections, Section{Name: "📊 Today's Outlook", Value: outlookText, Inline: true})

	// Official alerts and the synthetic conditions notice are mutually
	// exclusive in display.
	if len(snap.Alerts) > 0 {
		alert := snap.Alerts[0]
		alertText := fmt.Sprintf("⚠️ **%s**\n%s", alert.Event, alert.Description)
		view.Sections = append(view.Sections, Section{Name: "🚨 Weather Alert", Value: TruncateSection(alertText)})
	} else if warnings := SevereWeatherWarnings(current, today); len(warnings) > 0 {
		view.Sections = append(view.Sections, Section{Name: "⚠️ Conditions Notice", Value: TruncateSection(strings.Join(warnings, "\n"))})
	}

	activityRec := CurrentActivityRecommendation(current.Temp, current.Condition.ID,
		current.WindSpeed, current.UVIndex, current.Humidity, pop)
	view.Sections = append(view.Sections, Section{Name: "🎯 Activity Suggestions", Value: TruncateSection(activityRec)})

	view.Footer = fmt.Sprintf("🕒 %s local time: %s • Use buttons for more details",
		loc.Name, localTime(current.Dt, snap.TimezoneOffset).Format("15:04"))
	return view
}

// HourlyView renders the next 12 hourly entries.
func HourlyView(snap *Snapshot, loc Location, units Units) *View {
	hours := snap.Hourly
	if len(hours) > 12 {
		hours = hours[:12]
	}

	tempUnit := TempUnit(units)
	speedUnit := SpeedUnit(units)

	var b strings.Builder
	for i, hour := range hours {
		timeStr := "Now"
		if i > 0 {
			timeStr = localTime(hour.Dt, snap.TimezoneOffset).Format("15:04")
		}

		fmt.Fprintf(&b, "**%s**: %s %d%s", timeStr, ConditionIcon(hour.Condition.ID),
			Temperature(hour.Temp, units), tempUnit)

		if math.Abs(hour.Temp-hour.FeelsLike) > 2 {
			fmt.Fprintf(&b, " (feels %d%s)", Temperature(hour.FeelsLike, units), tempUnit)
		}
		if wind := Speed(hour.WindSpeed, units); wind > 10 {
			fmt.Fprintf(&b, " • 💨 %.1f%s", wind, speedUnit)
		}
		if pop := popPercent(hour.Pop); pop > 0 {
			fmt.Fprintf(&b, " • %d%% ☔", pop)
		}
		b.WriteByte('\n')
	}

	return &View{
		Title:       "⏰ 12-Hour Forecast",
		Description: fmt.Sprintf("📍 **%s**", loc.DisplayName()),
		Color:       colorBlue,
		Sections: []Section{
			{Name: "🕐 Next 12 Hours", Value: strings.TrimSpace(b.String())},
		},
		Footer: "💡 Feels-like temp shown when significantly different • Wind shown if >10km/h",
	}
}

// DailyView renders the first seven daily entries with per-day context and
// activity recommendations for the first three.
func DailyView(snap *Snapshot, loc Location, units Units) *View {
	days := snap.Daily
	if len(days) > 7 {
		days = days[:7]
	}

	unitLetter := strings.TrimPrefix(TempUnit(units), "°")

	var b strings.Builder
	for i, day := range days {
		dayName := dayLabel(day.Dt, snap.TimezoneOffset, i, "Mon")
		pop := popPercent(day.Pop)
		wind := Speed(day.WindSpeed, units)

		fmt.Fprintf(&b, "**%s**: %s %d°/%d°%s", dayName, ConditionIcon(day.Condition.ID),
			Temperature(day.TempMax, units), Temperature(day.TempMin, units), unitLetter)

		if pop > 60 {
			fmt.Fprintf(&b, " • ☔ %d%% rain", pop)
		} else if pop > 30 {
			fmt.Fprintf(&b, " • 🌦️ %d%% chance", pop)
		}
		if wind > 20 {
			b.WriteString(" • 💨 Windy")
		}
		if day.UVIndex > 7 {
			b.WriteString(" • ☀️ High UV")
		}

		fmt.Fprintf(&b, "\n*%s*", titleWords(day.Condition.Description))

		if i < 3 {
			if activity, ok := DailyActivityRecommendation(day.TempMax, day.TempMin,
				day.Condition.ID, pop, wind, day.UVIndex); ok {
				fmt.Fprintf(&b, "\n🎯 *%s*", activity)
			}
		}
		b.WriteString("\n\n")
	}

	view := &View{
		Title:       "📅 7-Day Forecast",
		Description: fmt.Sprintf("📍 **%s**", loc.DisplayName()),
		Color:       colorGreen,
		Sections: []Section{
			{Name: "🗓️ Extended Forecast", Value: TruncateSection(strings.TrimSpace(b.String()))},
		},
	}

	if note, ok := SeasonalContext(snapshotMonth(snap), snap.Daily[0].TempMax); ok {
		view.Sections = append(view.Sections, Section{Name: "🍂 Seasonal Note", Value: note})
	}
	return view
}

// DetailsView renders astronomy, extended atmospheric data and comfort
// analysis.
func DetailsView(snap *Snapshot, loc Location, units Units) *View {
	current := snap.Current

	view := &View{
		Title:       "📊 Weather Details",
		Description: fmt.Sprintf("📍 **%s**", loc.DisplayName()),
		Color:       colorBlue,
	}

	sunrise := localTime(current.Sunrise, snap.TimezoneOffset)
	sunset := localTime(current.Sunset, snap.TimezoneOffset)
	dayLength := sunset.Sub(sunrise)
	moon := MoonPhaseInfo(snap.Daily[0].MoonPhase)

	astroText := fmt.Sprintf("🌅 **Sunrise:** %s\n🌇 **Sunset:** %s\n⏰ **Day length:** %dh %dm\n%s **%s** (%d%%)",
		sunrise.Format("15:04"), sunset.Format("15:04"),
		int(dayLength.Hours()), int(dayLength.Minutes())%60,
		moon.Icon, moon.Phase, moon.Illumination)
	view.Sections = append(view.Sections, Section{Name: "🌅 Astronomy", Value: astroText})

	tempUnit := TempUnit(units)
	trend := PressureTrend(current.Pressure)
	atmText := fmt.Sprintf("**Humidity:** %d%%\n**Pressure:** %d hPa %s\n*%s*\n",
		current.Humidity, current.Pressure, trend.Icon, trend.Advice)
	if current.DewPoint != nil {
		atmText += fmt.Sprintf("**Dew Point:** %d%s\n", Temperature(*current.DewPoint, units), tempUnit)
	}
	atmText += fmt.Sprintf("**Cloud Cover:** %d%%", current.Clouds)
	view.Sections = append(view.Sections, Section{Name: "🌫️ Atmospheric Details", Value: atmText, Inline: true})

	uvText := fmt.Sprintf("**UV Index:** %s/11 (%s)\n", formatFloat(current.UVIndex), UVRiskLevel(current.UVIndex))
	if current.Visibility != nil {
		uvText += fmt.Sprintf("**Visibility:** %.1f km\n", float64(*current.Visibility)/1000)
	}
	switch {
	case current.UVIndex >= 11:
		uvText += "🚨 *Extreme - avoid sun exposure*"
	case current.UVIndex >= 8:
		uvText += "⚠️ *Very high - limit exposure*"
	case current.UVIndex >= 6:
		uvText += "☂️ *High - use sun protection*"
	case current.UVIndex >= 3:
		uvText += "🧴 *Moderate - consider protection*"
	default:
		uvText += "✅ *Low - minimal protection needed*"
	}
	view.Sections = append(view.Sections, Section{Name: "☀️ UV & Visibility Details", Value: uvText, Inline: true})

	var analysis strings.Builder
	windKmh := current.WindSpeed * 3.6
	switch {
	case windKmh > 30:
		analysis.WriteString("💨 **Strong winds** - outdoor activities affected\n")
	case windKmh > 15:
		analysis.WriteString("🌬️ **Breezy conditions** - light items may blow around\n")
	default:
		analysis.WriteString("🍃 **Calm winds** - favorable for outdoor activities\n")
	}
	switch {
	case current.Humidity > 80:
		analysis.WriteString("💧 **Very humid** - may feel uncomfortable\n")
	case current.Humidity > 60:
		analysis.WriteString("💦 **Moderately humid** - typical comfort levels\n")
	case current.Humidity < 30:
		analysis.WriteString("🏜️ **Dry air** - hydration important\n")
	default:
		analysis.WriteString("💨 **Comfortable humidity** - ideal conditions\n")
	}
	tempDiff := math.Abs(current.Temp - current.FeelsLike)
	switch {
	case tempDiff > 5:
		fmt.Fprintf(&analysis, "🌡️ **Significant feel difference** - feels %.0f°C different", tempDiff)
	case tempDiff > 2:
		analysis.WriteString("🌡️ **Noticeable feel difference** - dress accordingly")
	default:
		analysis.WriteString("🌡️ **Temperature feels accurate** - minimal wind/humidity effect")
	}
	view.Sections = append(view.Sections, Section{Name: "🔍 Weather Analysis", Value: analysis.String()})

	if note, ok := SeasonalContext(snapshotMonth(snap), snap.Daily[0].TempMax); ok {
		view.Sections = append(view.Sections, Section{Name: "🍂 Seasonal Context", Value: note})
	}

	view.Footer = fmt.Sprintf("🕒 %s local time: %s • Detailed weather analysis",
		loc.Name, localTime(current.Dt, snap.TimezoneOffset).Format("15:04"))
	return view
}

// ActivitiesView renders activity planning, safety and timing guidance.
func ActivitiesView(snap *Snapshot, loc Location, units Units) *View {
	current := snap.Current
	today := snap.Daily[0]
	todayPop := popPercent(today.Pop)

	view := &View{
		Title:       "🎯 Activity Recommendations",
		Description: fmt.Sprintf("📍 **%s**", loc.DisplayName()),
		Color:       colorGreen,
	}

	rightNow := CurrentActivityRecommendation(current.Temp, current.Condition.ID,
		current.WindSpeed, current.UVIndex, current.Humidity, todayPop)
	view.Sections = append(view.Sections, Section{Name: "🕐 Right Now", Value: rightNow})

	days := snap.Daily
	if len(days) > 3 {
		days = days[:3]
	}
	unitLetter := strings.TrimPrefix(TempUnit(units), "°")

	var planning strings.Builder
	for i, day := range days {
		pop := popPercent(day.Pop)
		wind := Speed(day.WindSpeed, units)

		fmt.Fprintf(&planning, "**%s** %s %d°/%d°%s\n", dayLabel(day.Dt, snap.TimezoneOffset, i, "Monday"),
			ConditionIcon(day.Condition.ID),
			Temperature(day.TempMax, units), Temperature(day.TempMin, units), unitLetter)

		if activity, ok := DailyActivityRecommendation(day.TempMax, day.TempMin,
			day.Condition.ID, pop, wind, day.UVIndex); ok {
			fmt.Fprintf(&planning, "🎯 *%s*\n", activity)
		} else {
			planning.WriteString("🎯 *Check conditions and plan accordingly*\n")
		}
		planning.WriteByte('\n')
	}
	view.Sections = append(view.Sections, Section{Name: "📅 3-Day Planning", Value: TruncateSection(strings.TrimSpace(planning.String()))})

	windKmh := current.WindSpeed * 3.6

	var safety strings.Builder
	if current.Temp >= 35 {
		safety.WriteString("🔥 **Heat Warning:** Stay hydrated, seek shade, limit outdoor time\n")
	} else if current.Temp <= -10 {
		safety.WriteString("❄️ **Cold Warning:** Bundle up, limit skin exposure, watch for ice\n")
	}
	if current.UVIndex >= 8 {
		safety.WriteString("☀️ **UV Warning:** Use SPF 30+, seek shade 10am-4pm, wear hat\n")
	} else if current.UVIndex >= 6 {
		safety.WriteString("🧴 **UV Caution:** Apply sunscreen, consider hat and sunglasses\n")
	}
	if windKmh >= 40 {
		safety.WriteString("💨 **Wind Warning:** Secure loose items, avoid tall trees\n")
	}
	if current.Rain1h != nil && *current.Rain1h > 5 {
		safety.WriteString("🌧️ **Heavy Rain:** Watch for flooding, drive carefully\n")
	} else if current.Snow1h != nil {
		safety.WriteString("❄️ **Snow Conditions:** Icy roads possible, allow extra time\n")
	}
	if current.Condition.ID >= 200 && current.Condition.ID < 300 {
		safety.WriteString("⛈️ **Storm Safety:** Stay indoors, avoid metal objects, unplug electronics\n")
	}
	if safety.Len() > 0 {
		view.Sections = append(view.Sections, Section{Name: "⚠️ Safety Reminders", Value: TruncateSection(strings.TrimSpace(safety.String()))})
	}

	var timing strings.Builder
	if current.UVIndex > 6 {
		timing.WriteString("☀️ **Best UV times:** Before 10am or after 4pm\n")
	}
	if current.Temp > 28 {
		timing.WriteString("🌡️ **Coolest times:** Early morning (6-9am) or evening (7-9pm)\n")
	} else if current.Temp < 5 {
		timing.WriteString("🌡️ **Warmest times:** Midday (11am-2pm) when sun is highest\n")
	}
	if windKmh > 20 {
		timing.WriteString("💨 **Calmer times:** Early morning typically has less wind\n")
	}
	if todayPop > 40 {
		fmt.Fprintf(&timing, "🌧️ **Rain chance:** %d%% today - check hourly forecast\n", todayPop)
	}
	if timing.Len() > 0 {
		view.Sections = append(view.Sections, Section{Name: "⏰ Optimal Timing", Value: TruncateSection(strings.TrimSpace(timing.String()))})
	}

	id := current.Condition.ID
	clearish := id == 800 || id == 801 || id == 802

	var suggestions strings.Builder
	if current.Temp >= 10 && current.Temp <= 25 && windKmh < 25 && clearish {
		suggestions.WriteString("⚽ **Sports:** Great conditions for outdoor sports!\n")
	}
	if id >= 801 && id <= 803 {
		suggestions.WriteString("📸 **Photography:** Nice lighting with some clouds\n")
	} else if id == 800 {
		suggestions.WriteString("📸 **Photography:** Clear skies - great for landscapes\n")
	}
	if current.Temp >= 22 && clearish {
		suggestions.WriteString("🏊 **Water activities:** Good conditions for swimming/water sports\n")
	}
	if current.Temp >= 5 && current.Temp <= 30 && windKmh < 30 && !(id >= 200 && id < 600) {
		suggestions.WriteString("🥾 **Hiking:** Good conditions for trail activities\n")
	}
	if current.Temp >= 10 && current.Temp <= 30 && windKmh < 20 && id != 500 {
		suggestions.WriteString("🌱 **Gardening:** Good conditions for outdoor garden work\n")
	}
	if suggestions.Len() > 0 {
		view.Sections = append(view.Sections, Section{Name: "🎨 Activity Suggestions", Value: TruncateSection(strings.TrimSpace(suggestions.String()))})
	}

	view.Footer = fmt.Sprintf("🕒 %s local time: %s • Activity planning guide",
		loc.Name, localTime(current.Dt, snap.TimezoneOffset).Format("15:04"))
	return view
}

// AirQualityView renders the air-pollution reading, or a single no-data
// section when the snapshot carries none.
func AirQualityView(snap *Snapshot, loc Location) *View {
	view := &View{
		Title:       "💨 Air Quality",
		Description: fmt.Sprintf("📍 **%s**", loc.DisplayName()),
		Color:       colorOrange,
	}

	aq := snap.AirQuality
	if aq == nil {
		view.Sections = append(view.Sections, Section{
			Name:  "❌ No Data",
			Value: "Air quality information is not available for this location.",
		})
		return view
	}

	level := lookupAQILevel(aq.Index)
	view.Color = level.Color

	standard := StandardAQI(aq.Index)
	view.Sections = append(view.Sections, Section{
		Name: "🌍 Overall Air Quality",
		Value: fmt.Sprintf("%s **%s**\n**Standard AQI: %d** %s\n*Provider Scale: %d/5*",
			level.Icon, level.Name, standard, StandardAQIRange(standard), aq.Index),
	})

	view.Sections = append(view.Sections, Section{
		Name: "🏭 Key Pollutants (μg/m³)",
		Value: fmt.Sprintf("**PM2.5:** %s\n**PM10:** %s\n**NO₂:** %s",
			formatFloat(aq.PM25), formatFloat(aq.PM10), formatFloat(aq.NO2)),
		Inline: true,
	})
	view.Sections = append(view.Sections, Section{
		Name: "💨 Other Components (μg/m³)",
		Value: fmt.Sprintf("**O₃:** %s\n**CO:** %s\n**SO₂:** %s",
			formatFloat(aq.O3), formatFloat(aq.CO), formatFloat(aq.SO2)),
		Inline: true,
	})

	view.Sections = append(view.Sections, Section{Name: "💡 Health Advice", Value: level.Advice})
	view.Sections = append(view.Sections, Section{
		Name:  "📊 About AQI Scale",
		Value: "Standard AQI: 0-50 Good • 51-100 Moderate • 101-150 Unhealthy for Sensitive • 151-200 Unhealthy • 201-300 Very Unhealthy • 301-500 Hazardous",
	})
	return view
}

// dayLabel names a forecast day: the first two entries are Today and
// Tomorrow, the rest use the local weekday in the given layout.
func dayLabel(dt int64, offsetSeconds, index int, weekdayLayout string) string {
	switch index {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return localTime(dt, offsetSeconds).Format(weekdayLayout)
	}
}

// snapshotMonth derives the local calendar month from the snapshot itself,
// keeping view assembly a pure function of its inputs.
func snapshotMonth(snap *Snapshot) time.Month {
	return localTime(snap.Current.Dt, snap.TimezoneOffset).Month()
}

func popPercent(fraction float64) int {
	return int(fraction * 100)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// titleWords capitalizes the first letter of each space-separated word,
// matching how provider descriptions are displayed.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
