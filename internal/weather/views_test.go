package weather

import (
	"fmt"
	"strings"
	"testing"
)

func testSnapshot() *Snapshot {
	windDeg := 220.0
	visibility := 10000
	dewPoint := 11.2

	snap := &Snapshot{
		Current: Observation{
			Dt:         1700000000, // 2023-11-14 22:13 UTC
			Sunrise:    1699975000,
			Sunset:     1700010000,
			Temp:       18.4,
			FeelsLike:  17.9,
			Humidity:   62,
			Pressure:   1015,
			DewPoint:   &dewPoint,
			UVIndex:    4.5,
			Clouds:     40,
			Visibility: &visibility,
			WindSpeed:  3.5,
			WindDeg:    &windDeg,
			Condition:  Condition{ID: 802, Main: "Clouds", Description: "scattered clouds"},
		},
		TimezoneOffset: 3600,
	}

	for i := 0; i < 24; i++ {
		snap.Hourly = append(snap.Hourly, HourEntry{
			Dt:        1700000000 + int64(i)*3600,
			Temp:      18 - float64(i)*0.5,
			FeelsLike: 18 - float64(i)*0.5,
			WindSpeed: 2,
			Pop:       0,
			Condition: Condition{ID: 802, Description: "scattered clouds"},
		})
	}
	for i := 0; i < 8; i++ {
		snap.Daily = append(snap.Daily, DayEntry{
			Dt:        1700000000 + int64(i)*86400,
			TempMin:   12,
			TempMax:   21,
			Pop:       0.1,
			WindSpeed: 4,
			UVIndex:   5,
			MoonPhase: 0.25,
			Condition: Condition{ID: 801, Description: "few clouds"},
		})
	}
	return snap
}

func testLocation() Location {
	return Location{Name: "Lisbon", Country: "PT"}
}

func TestTruncateSection(t *testing.T) {
	short := strings.Repeat("a", MaxSectionLength)
	if got := TruncateSection(short); got != short {
		t.Error("text at the limit was modified")
	}

	long := strings.Repeat("word ", 300)
	got := TruncateSection(long)
	if len(got) > MaxSectionLength {
		t.Errorf("truncated length %d exceeds %d", len(got), MaxSectionLength)
	}
	if !strings.HasSuffix(got, "... [truncated]") {
		t.Errorf("missing truncation marker: %q", got[len(got)-30:])
	}
	if strings.HasSuffix(strings.TrimSuffix(got, "... [truncated]"), " ") {
		t.Error("cut point left a trailing space before the marker")
	}
}

func TestTruncateSectionNoSpaces(t *testing.T) {
	long := strings.Repeat("x", 2000)
	got := TruncateSection(long)
	if len(got) > MaxSectionLength {
		t.Errorf("truncated length %d exceeds %d", len(got), MaxSectionLength)
	}
	if !strings.HasSuffix(got, "... [truncated]") {
		t.Error("missing truncation marker")
	}
}

func TestRenderDispatch(t *testing.T) {
	snap := testSnapshot()
	loc := testLocation()

	tests := []struct {
		tab       Tab
		wantTitle string
	}{
		{TabCurrent, "⛅ Current Weather"},
		{TabHourly, "⏰ 12-Hour Forecast"},
		{TabDaily, "📅 7-Day Forecast"},
		{TabDetails, "📊 Weather Details"},
		{TabActivities, "🎯 Activity Recommendations"},
		{TabAirQuality, "💨 Air Quality"},
		{Tab("bogus"), "⛅ Current Weather"},
	}
	for _, tt := range tests {
		view := Render(snap, loc, ViewSelection{Tab: tt.tab, Units: UnitsMetric})
		if view.Title != tt.wantTitle {
			t.Errorf("Render(%s).Title = %q, want %q", tt.tab, view.Title, tt.wantTitle)
		}
	}
}

func TestViewSectionsWithinLimit(t *testing.T) {
	snap := testSnapshot()
	snap.Alerts = []Alert{{Event: "Storm", Description: strings.Repeat("severe weather ahead ", 200)}}
	loc := testLocation()

	for _, tab := range []Tab{TabCurrent, TabHourly, TabDaily, TabDetails, TabActivities, TabAirQuality} {
		view := Render(snap, loc, ViewSelection{Tab: tab, Units: UnitsMetric})
		for _, section := range view.Sections {
			if len(section.Value) > MaxSectionLength {
				t.Errorf("%s section %q is %d bytes, limit %d", tab, section.Name, len(section.Value), MaxSectionLength)
			}
		}
	}
}

func TestCurrentViewAlertSuppressesSyntheticWarnings(t *testing.T) {
	snap := testSnapshot()
	snap.Current.Temp = 42 // would trigger synthetic extreme heat
	snap.Current.FeelsLike = 42
	loc := testLocation()

	view := CurrentView(snap, loc, UnitsMetric)
	if sectionByName(view, "⚠️ Conditions Notice") == nil {
		t.Fatal("expected synthetic conditions notice without official alerts")
	}

	snap.Alerts = []Alert{{Event: "Heat Warning", Description: "Official advisory."}}
	view = CurrentView(snap, loc, UnitsMetric)
	if sectionByName(view, "⚠️ Conditions Notice") != nil {
		t.Error("synthetic warnings shown alongside an official alert")
	}
	alert := sectionByName(view, "🚨 Weather Alert")
	if alert == nil || !strings.Contains(alert.Value, "Heat Warning") {
		t.Errorf("alert section = %+v", alert)
	}
}

func TestCurrentViewUnits(t *testing.T) {
	snap := testSnapshot()
	loc := testLocation()

	metric := CurrentView(snap, loc, UnitsMetric)
	if temp := sectionByName(metric, "🌡️ Temperature"); temp == nil || !strings.Contains(temp.Value, "**18°C**") {
		t.Errorf("metric temperature section = %+v", temp)
	}

	imperial := CurrentView(snap, loc, UnitsImperial)
	if temp := sectionByName(imperial, "🌡️ Temperature"); temp == nil || !strings.Contains(temp.Value, "**65°F**") {
		t.Errorf("imperial temperature section = %+v", temp)
	}
	if wind := sectionByName(imperial, "💨 Wind"); wind == nil || !strings.Contains(wind.Value, "mph") {
		t.Errorf("imperial wind section = %+v", wind)
	}
}

func TestCurrentViewFooterUsesSnapshotTime(t *testing.T) {
	snap := testSnapshot()
	view := CurrentView(snap, testLocation(), UnitsMetric)
	// dt 1700000000 is 22:13:20 UTC; offset +3600 makes it 23:13 local.
	want := "🕒 Lisbon local time: 23:13"
	if !strings.HasPrefix(view.Footer, want) {
		t.Errorf("footer = %q, want prefix %q", view.Footer, want)
	}
}

func TestHourlyViewWindow(t *testing.T) {
	snap := testSnapshot()
	view := HourlyView(snap, testLocation(), UnitsMetric)

	body := view.Sections[0].Value
	lines := strings.Split(body, "\n")
	if len(lines) != 12 {
		t.Fatalf("hourly view has %d lines, want 12", len(lines))
	}
	if !strings.HasPrefix(lines[0], "**Now**") {
		t.Errorf("first line = %q, want Now label", lines[0])
	}
	// Second entry is one hour after dt in local time.
	if !strings.HasPrefix(lines[1], "**00:13**") {
		t.Errorf("second line = %q, want 00:13 label", lines[1])
	}
}

func TestHourlyViewShortSequence(t *testing.T) {
	snap := testSnapshot()
	snap.Hourly = snap.Hourly[:3]
	view := HourlyView(snap, testLocation(), UnitsMetric)
	if lines := strings.Split(view.Sections[0].Value, "\n"); len(lines) != 3 {
		t.Errorf("got %d lines, want 3", len(lines))
	}
}

func TestDailyViewWindow(t *testing.T) {
	snap := testSnapshot()
	view := DailyView(snap, testLocation(), UnitsMetric)

	body := view.Sections[0].Value
	if got := strings.Count(body, "**Today**"); got != 1 {
		t.Errorf("Today appears %d times", got)
	}
	if got := strings.Count(body, "**Tomorrow**"); got != 1 {
		t.Errorf("Tomorrow appears %d times", got)
	}
	// 8 entries supplied, only 7 rendered.
	if got := strings.Count(body, "few clouds"); got != 0 {
		t.Errorf("raw description leaked: %d occurrences", got)
	}
	if got := strings.Count(body, "Few Clouds"); got != 7 {
		t.Errorf("rendered %d days, want 7", got)
	}
}

func TestDailyViewAnnotations(t *testing.T) {
	snap := testSnapshot()
	snap.Daily[2].Pop = 0.7
	snap.Daily[3].Pop = 0.4
	snap.Daily[4].WindSpeed = 7 // 25.2 km/h
	snap.Daily[5].UVIndex = 8

	body := DailyView(snap, testLocation(), UnitsMetric).Sections[0].Value
	if !strings.Contains(body, "☔ 70% rain") {
		t.Error("missing high rain annotation")
	}
	if !strings.Contains(body, "🌦️ 40% chance") {
		t.Error("missing moderate rain annotation")
	}
	if !strings.Contains(body, "💨 Windy") {
		t.Error("missing wind annotation")
	}
	if !strings.Contains(body, "☀️ High UV") {
		t.Error("missing UV annotation")
	}
}

func TestDetailsViewAstronomy(t *testing.T) {
	snap := testSnapshot()
	view := DetailsView(snap, testLocation(), UnitsMetric)

	astro := sectionByName(view, "🌅 Astronomy")
	if astro == nil {
		t.Fatal("missing astronomy section")
	}
	// Sunset minus sunrise is 35000s, 9h43m.
	if !strings.Contains(astro.Value, "**Day length:** 9h 43m") {
		t.Errorf("astronomy section = %q", astro.Value)
	}
	if !strings.Contains(astro.Value, "First Quarter") {
		t.Errorf("moon phase missing: %q", astro.Value)
	}
}

func TestActivitiesViewSafetySection(t *testing.T) {
	snap := testSnapshot()
	loc := testLocation()

	calm := ActivitiesView(snap, loc, UnitsMetric)
	if sectionByName(calm, "⚠️ Safety Reminders") != nil {
		t.Error("mild conditions produced safety reminders")
	}

	snap.Current.Temp = 36
	snap.Current.UVIndex = 9
	hot := ActivitiesView(snap, loc, UnitsMetric)
	safety := sectionByName(hot, "⚠️ Safety Reminders")
	if safety == nil {
		t.Fatal("hot conditions produced no safety section")
	}
	if !strings.Contains(safety.Value, "Heat Warning") || !strings.Contains(safety.Value, "UV Warning") {
		t.Errorf("safety section = %q", safety.Value)
	}
}

func TestAirQualityViewNoData(t *testing.T) {
	snap := testSnapshot()
	view := AirQualityView(snap, testLocation())
	if len(view.Sections) != 1 || view.Sections[0].Name != "❌ No Data" {
		t.Errorf("sections = %+v, want single no-data section", view.Sections)
	}
}

func TestAirQualityViewWithReading(t *testing.T) {
	snap := testSnapshot()
	snap.AirQuality = &AirQuality{Index: 2, PM25: 8.1, PM10: 14.2, NO2: 9.3, O3: 61.5, CO: 230.3, SO2: 1.9}
	view := AirQualityView(snap, testLocation())

	overall := sectionByName(view, "🌍 Overall Air Quality")
	if overall == nil {
		t.Fatal("missing overall section")
	}
	if !strings.Contains(overall.Value, "**Fair**") || !strings.Contains(overall.Value, "Standard AQI: 75") {
		t.Errorf("overall section = %q", overall.Value)
	}
	if view.Color != colorGold {
		t.Errorf("color = %#x, want %#x", view.Color, colorGold)
	}
	if pollutants := sectionByName(view, "🏭 Key Pollutants (μg/m³)"); pollutants == nil || !strings.Contains(pollutants.Value, "8.1") {
		t.Errorf("pollutants section = %+v", pollutants)
	}
}

func TestViewsArePureOverSnapshot(t *testing.T) {
	snap := testSnapshot()
	loc := testLocation()
	sel := ViewSelection{Tab: TabCurrent, Units: UnitsMetric}

	first := Render(snap, loc, sel)
	second := Render(snap, loc, sel)
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Error("repeated rendering of the same snapshot diverged")
	}
}

func sectionByName(v *View, name string) *Section {
	for i := range v.Sections {
		if v.Sections[i].Name == name {
			return &v.Sections[i]
		}
	}
	return nil
}
