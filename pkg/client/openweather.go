package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"skycord/internal/weather"
)

// ErrLocationNotFound is returned when geocoding yields no results.
var ErrLocationNotFound = fmt.Errorf("location not found")

type OpenWeatherClient struct {
	*BaseClient
	apiKey  string
	baseURL string
	geoURL  string
}

func NewOpenWeatherClient(apiKey string, config ClientConfig, logger *zap.Logger) *OpenWeatherClient {
	baseClient := NewBaseClient("openweather", config, logger)
	return &OpenWeatherClient{
		BaseClient: baseClient,
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org",
		geoURL:     "https://api.openweathermap.org/geo/1.0",
	}
}

type geocodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// Geocode resolves a free-form place name to coordinates and a display
// location. The first result wins.
func (c *OpenWeatherClient) Geocode(ctx context.Context, query string) (weather.Location, float64, float64, error) {
	u := fmt.Sprintf("%s/direct?q=%s&limit=1&appid=%s", c.geoURL, url.QueryEscape(query), c.apiKey)

	data, err := c.GetWithRetry(ctx, u)
	if err != nil {
		return weather.Location{}, 0, 0, fmt.Errorf("geocoding %q: %w", query, err)
	}

	var results []geocodeResult
	if err := json.Unmarshal(data, &results); err != nil {
		return weather.Location{}, 0, 0, fmt.Errorf("parsing geocode response: %w", err)
	}
	if len(results) == 0 {
		return weather.Location{}, 0, 0, ErrLocationNotFound
	}

	r := results[0]
	loc := weather.Location{Name: r.Name, State: r.State, Country: r.Country}
	return loc, r.Lat, r.Lon, nil
}

// OneCall fetches the full forecast bundle for the coordinates. Units are
// metric; display conversion happens at render time.
func (c *OpenWeatherClient) OneCall(ctx context.Context, lat, lon float64) (*weather.Snapshot, error) {
	u := fmt.Sprintf("%s/data/3.0/onecall?lat=%f&lon=%f&appid=%s&units=metric&exclude=minutely",
		c.baseURL, lat, lon, c.apiKey)

	data, err := c.GetWithRetry(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	return weather.DecodeOneCall(data)
}

// AirPollution fetches the current air-quality reading. Callers should
// treat failure as a missing reading, not a fatal error.
func (c *OpenWeatherClient) AirPollution(ctx context.Context, lat, lon float64) (*weather.AirQuality, error) {
	u := fmt.Sprintf("%s/data/2.5/air_pollution?lat=%f&lon=%f&appid=%s", c.baseURL, lat, lon, c.apiKey)

	data, err := c.GetWithRetry(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetching air pollution: %w", err)
	}

	return weather.DecodeAirPollution(data)
}

// FetchSnapshot resolves a place name and assembles a complete snapshot,
// degrading gracefully when the air-quality fetch fails.
func (c *OpenWeatherClient) FetchSnapshot(ctx context.Context, query string) (*weather.Snapshot, weather.Location, error) {
	loc, lat, lon, err := c.Geocode(ctx, query)
	if err != nil {
		return nil, weather.Location{}, err
	}

	snap, err := c.OneCall(ctx, lat, lon)
	if err != nil {
		return nil, weather.Location{}, err
	}

	aq, err := c.AirPollution(ctx, lat, lon)
	if err != nil {
		c.logger.Warn("Air quality fetch failed",
			zap.String("location", loc.Name),
			zap.Error(err))
	} else {
		snap.AirQuality = aq
	}

	return snap, loc, nil
}
