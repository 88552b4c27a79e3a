package weather

import (
	"encoding/json"
	"fmt"
	"time"
)

// Units selects the measurement system applied at display time. Stored
// values are always metric (Celsius, m/s); conversion never mutates them.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Tab identifies one of the renderable views of a snapshot.
type Tab string

const (
	TabCurrent    Tab = "current"
	TabHourly     Tab = "hourly"
	TabDaily      Tab = "daily"
	TabDetails    Tab = "details"
	TabActivities Tab = "activities"
	TabAirQuality Tab = "air_quality"
)

// ViewSelection is the caller-owned UI state: which tab and which unit
// system to render. The presenter holds no state of its own.
type ViewSelection struct {
	Tab   Tab
	Units Units
}

// Condition is the provider's weather classification. The ID is bucketed
// by hundreds: <300 thunderstorm, 3xx drizzle, 4xx-5xx rain, 6xx snow,
// 7xx atmosphere, 800 clear, 801+ clouds.
type Condition struct {
	ID          int
	Main        string
	Description string
}

// Observation is a single point-in-time reading.
type Observation struct {
	Dt        int64
	Sunrise   int64
	Sunset    int64
	Temp      float64
	FeelsLike float64
	Humidity  int
	Pressure  int
	DewPoint  *float64
	UVIndex   float64
	Clouds    int
	// Visibility in meters, when reported.
	Visibility *int
	WindSpeed  float64
	WindDeg    *float64
	WindGust   *float64
	// Rain1h and Snow1h are precipitation volumes in mm/h.
	Rain1h    *float64
	Snow1h    *float64
	Condition Condition
}

// HourEntry is one entry of the hourly forecast sequence.
type HourEntry struct {
	Dt        int64
	Temp      float64
	FeelsLike float64
	WindSpeed float64
	// Pop is the probability of precipitation as a 0-1 fraction.
	Pop       float64
	Condition Condition
}

// DayEntry is one entry of the daily forecast sequence.
type DayEntry struct {
	Dt        int64
	TempMin   float64
	TempMax   float64
	Pop       float64
	WindSpeed float64
	UVIndex   float64
	// MoonPhase is the provider's 0-1 lunar cycle fraction.
	MoonPhase float64
	Condition Condition
}

// Alert is a provider-issued weather alert. The text is unvalidated and
// unbounded; renderers must truncate it.
type Alert struct {
	Event       string
	Description string
}

// AirQuality is a single air-pollution reading on the provider's 1-5 scale
// with component concentrations in ug/m3.
type AirQuality struct {
	Index int
	PM25  float64
	PM10  float64
	NO2   float64
	O3    float64
	CO    float64
	SO2   float64
}

// Snapshot bundles everything known about one location at one point in
// time. It is immutable once constructed; views are pure functions over it.
type Snapshot struct {
	Current Observation
	Hourly  []HourEntry
	Daily   []DayEntry
	Alerts  []Alert
	// AirQuality is nil when the air-pollution fetch was skipped or failed.
	AirQuality *AirQuality
	// TimezoneOffset is the signed offset from UTC in seconds, applied
	// uniformly to every timestamp in this snapshot.
	TimezoneOffset int
}

// Location is the resolved place a snapshot describes.
type Location struct {
	Name    string
	State   string
	Country string
}

// DisplayName concatenates name, state and country, skipping empty parts.
func (l Location) DisplayName() string {
	s := l.Name
	if l.State != "" {
		s += ", " + l.State
	}
	if l.Country != "" {
		s += ", " + l.Country
	}
	return s
}

// MalformedInputError reports a required field missing from a provider
// response. Optional fields never produce it.
type MalformedInputError struct {
	Field string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("weather: malformed snapshot: missing required field %q", e.Field)
}

// localTime converts a POSIX UTC timestamp to snapshot-local time.
func localTime(ts int64, offsetSeconds int) time.Time {
	return time.Unix(ts, 0).UTC().Add(time.Duration(offsetSeconds) * time.Second)
}

// Wire shapes for the One Call 3.0 response. Required fields are pointers
// so absence is distinguishable from zero.

type oneCallResponse struct {
	TimezoneOffset *int             `json:"timezone_offset"`
	Current        *currentWire     `json:"current"`
	Hourly         []hourWire       `json:"hourly"`
	Daily          []dayWire        `json:"daily"`
	Alerts         []alertWire      `json:"alerts"`
}

type conditionWire struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

type precipWire struct {
	OneHour *float64 `json:"1h"`
}

type currentWire struct {
	Dt         int64           `json:"dt"`
	Sunrise    int64           `json:"sunrise"`
	Sunset     int64           `json:"sunset"`
	Temp       *float64        `json:"temp"`
	FeelsLike  *float64        `json:"feels_like"`
	Humidity   *int            `json:"humidity"`
	Pressure   *int            `json:"pressure"`
	DewPoint   *float64        `json:"dew_point"`
	UVI        *float64        `json:"uvi"`
	Clouds     int             `json:"clouds"`
	Visibility *int            `json:"visibility"`
	WindSpeed  *float64        `json:"wind_speed"`
	WindDeg    *float64        `json:"wind_deg"`
	WindGust   *float64        `json:"wind_gust"`
	Rain       *precipWire     `json:"rain"`
	Snow       *precipWire     `json:"snow"`
	Weather    []conditionWire `json:"weather"`
}

type hourWire struct {
	Dt        int64           `json:"dt"`
	Temp      *float64        `json:"temp"`
	FeelsLike *float64        `json:"feels_like"`
	WindSpeed *float64        `json:"wind_speed"`
	Pop       float64         `json:"pop"`
	Weather   []conditionWire `json:"weather"`
}

type dayTempWire struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type dayWire struct {
	Dt        int64           `json:"dt"`
	Temp      *dayTempWire    `json:"temp"`
	Pop       float64         `json:"pop"`
	WindSpeed *float64        `json:"wind_speed"`
	UVI       *float64        `json:"uvi"`
	MoonPhase float64         `json:"moon_phase"`
	Weather   []conditionWire `json:"weather"`
}

type alertWire struct {
	Event       string `json:"event"`
	Description string `json:"description"`
}

type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI *int `json:"aqi"`
		} `json:"main"`
		Components struct {
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			CO   float64 `json:"co"`
			SO2  float64 `json:"so2"`
		} `json:"components"`
	} `json:"list"`
}

// DecodeOneCall parses a One Call 3.0 response into an immutable Snapshot.
// Missing required readings yield a MalformedInputError; optional fields
// (wind gust, dew point, uvi, precipitation) default to absent.
func DecodeOneCall(data []byte) (*Snapshot, error) {
	var resp oneCallResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("weather: decoding one call response: %w", err)
	}

	if resp.Current == nil {
		return nil, &MalformedInputError{Field: "current"}
	}
	if resp.TimezoneOffset == nil {
		return nil, &MalformedInputError{Field: "timezone_offset"}
	}
	if len(resp.Daily) == 0 {
		return nil, &MalformedInputError{Field: "daily"}
	}

	current, err := decodeObservation(resp.Current)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Current:        current,
		TimezoneOffset: *resp.TimezoneOffset,
	}

	for i, h := range resp.Hourly {
		entry, err := decodeHour(h, i)
		if err != nil {
			return nil, err
		}
		snap.Hourly = append(snap.Hourly, entry)
	}

	for i, d := range resp.Daily {
		entry, err := decodeDay(d, i)
		if err != nil {
			return nil, err
		}
		snap.Daily = append(snap.Daily, entry)
	}

	for _, a := range resp.Alerts {
		snap.Alerts = append(snap.Alerts, Alert{Event: a.Event, Description: a.Description})
	}

	return snap, nil
}

// DecodeAirPollution parses an air-pollution response. Callers attach the
// result to a snapshot; the reading is optional so a decode failure should
// degrade to a nil AirQuality rather than fail the whole request.
func DecodeAirPollution(data []byte) (*AirQuality, error) {
	var resp airPollutionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("weather: decoding air pollution response: %w", err)
	}
	if len(resp.List) == 0 || resp.List[0].Main.AQI == nil {
		return nil, &MalformedInputError{Field: "list[0].main.aqi"}
	}
	entry := resp.List[0]
	return &AirQuality{
		Index: *entry.Main.AQI,
		PM25:  entry.Components.PM25,
		PM10:  entry.Components.PM10,
		NO2:   entry.Components.NO2,
		O3:    entry.Components.O3,
		CO:    entry.Components.CO,
		SO2:   entry.Components.SO2,
	}, nil
}

func decodeObservation(w *currentWire) (Observation, error) {
	switch {
	case w.Temp == nil:
		return Observation{}, &MalformedInputError{Field: "current.temp"}
	case w.FeelsLike == nil:
		return Observation{}, &MalformedInputError{Field: "current.feels_like"}
	case w.Humidity == nil:
		return Observation{}, &MalformedInputError{Field: "current.humidity"}
	case w.Pressure == nil:
		return Observation{}, &MalformedInputError{Field: "current.pressure"}
	case len(w.Weather) == 0:
		return Observation{}, &MalformedInputError{Field: "current.weather"}
	}

	obs := Observation{
		Dt:         w.Dt,
		Sunrise:    w.Sunrise,
		Sunset:     w.Sunset,
		Temp:       *w.Temp,
		FeelsLike:  *w.FeelsLike,
		Humidity:   *w.Humidity,
		Pressure:   *w.Pressure,
		DewPoint:   w.DewPoint,
		Clouds:     w.Clouds,
		Visibility: w.Visibility,
		WindDeg:    w.WindDeg,
		WindGust:   w.WindGust,
		Condition: Condition{
			ID:          w.Weather[0].ID,
			Main:        w.Weather[0].Main,
			Description: w.Weather[0].Description,
		},
	}
	if w.UVI != nil {
		obs.UVIndex = *w.UVI
	}
	if w.WindSpeed != nil {
		obs.WindSpeed = *w.WindSpeed
	}
	if w.Rain != nil {
		obs.Rain1h = w.Rain.OneHour
	}
	if w.Snow != nil {
		obs.Snow1h = w.Snow.OneHour
	}
	return obs, nil
}

func decodeHour(w hourWire, index int) (HourEntry, error) {
	switch {
	case w.Temp == nil:
		return HourEntry{}, &MalformedInputError{Field: fmt.Sprintf("hourly[%d].temp", index)}
	case w.FeelsLike == nil:
		return HourEntry{}, &MalformedInputError{Field: fmt.Sprintf("hourly[%d].feels_like", index)}
	case len(w.Weather) == 0:
		return HourEntry{}, &MalformedInputError{Field: fmt.Sprintf("hourly[%d].weather", index)}
	}
	entry := HourEntry{
		Dt:        w.Dt,
		Temp:      *w.Temp,
		FeelsLike: *w.FeelsLike,
		Pop:       w.Pop,
		Condition: Condition{
			ID:          w.Weather[0].ID,
			Main:        w.Weather[0].Main,
			Description: w.Weather[0].Description,
		},
	}
	if w.WindSpeed != nil {
		entry.WindSpeed = *w.WindSpeed
	}
	return entry, nil
}

func decodeDay(w dayWire, index int) (DayEntry, error) {
	switch {
	case w.Temp == nil || w.Temp.Min == nil || w.Temp.Max == nil:
		return DayEntry{}, &MalformedInputError{Field: fmt.Sprintf("daily[%d].temp", index)}
	case len(w.Weather) == 0:
		return DayEntry{}, &MalformedInputError{Field: fmt.Sprintf("daily[%d].weather", index)}
	}
	entry := DayEntry{
		Dt:        w.Dt,
		TempMin:   *w.Temp.Min,
		TempMax:   *w.Temp.Max,
		Pop:       w.Pop,
		MoonPhase: w.MoonPhase,
		Condition: Condition{
			ID:          w.Weather[0].ID,
			Main:        w.Weather[0].Main,
			Description: w.Weather[0].Description,
		},
	}
	if w.WindSpeed != nil {
		entry.WindSpeed = *w.WindSpeed
	}
	if w.UVI != nil {
		entry.UVIndex = *w.UVI
	}
	return entry, nil
}
