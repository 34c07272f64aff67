// Package openmeteo wraps the Open-Meteo forecast and geocoding APIs. Only
// the fields the dashboard widgets consume are parsed; every numeric field
// is rounded per widget expectations (whole units for temperatures and most
// metrics, one decimal for precipitation amounts and visibility).
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultForecastBase  = "https://api.open-meteo.com/v1/forecast"
	DefaultGeocodingBase = "https://geocoding-api.open-meteo.com/v1/search"

	userAgent = "HomeDock"
)

type Current struct {
	Temperature              float64 `json:"temperature"`
	FeelsLike                float64 `json:"feelsLike"`
	Humidity                 float64 `json:"humidity"`
	PrecipitationProbability float64 `json:"precipitationProbability"`
	Precipitation            float64 `json:"precipitation"`
	UvIndex                  float64 `json:"uvIndex"`
	WindSpeed                float64 `json:"windSpeed"`
	CloudCover               float64 `json:"cloudCover"`
	Pressure                 float64 `json:"pressure"`
	Visibility               float64 `json:"visibility"`
	WindDirection            float64 `json:"windDirection"`
	WindGust                 float64 `json:"windGust"`
	DewPoint                 float64 `json:"dewPoint"`
	Rain                     float64 `json:"rain"`
	Snowfall                 float64 `json:"snowfall"`
	Summary                  string  `json:"summary"`
	Icon                     string  `json:"icon"`
	Code                     int     `json:"code"`
}

type Daily struct {
	MinTemp float64 `json:"minTemp"`
	MaxTemp float64 `json:"maxTemp"`
	Sunrise string  `json:"sunrise"`
	Sunset  string  `json:"sunset"`
}

// Snapshot is one fetched weather observation.
type Snapshot struct {
	Current    Current `json:"current"`
	Daily      Daily   `json:"daily"`
	ObservedAt string  `json:"observedAt"`
}

// Location is a geocoding search hit.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Client struct {
	forecastBase  string
	geocodingBase string
	httpClient    *http.Client
}

func NewClient(forecastBase, geocodingBase string) *Client {
	if forecastBase == "" {
		forecastBase = DefaultForecastBase
	}
	if geocodingBase == "" {
		geocodingBase = DefaultGeocodingBase
	}
	return &Client{
		forecastBase:  forecastBase,
		geocodingBase: geocodingBase,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastResponse struct {
	Current *struct {
		Temperature         *float64 `json:"temperature_2m"`
		ApparentTemperature *float64 `json:"apparent_temperature"`
		RelativeHumidity    *float64 `json:"relative_humidity_2m"`
		WeatherCode         *float64 `json:"weather_code"`
		WindSpeed           *float64 `json:"wind_speed_10m"`
		WindDirection       *float64 `json:"wind_direction_10m"`
		WindGusts           *float64 `json:"wind_gusts_10m"`
		CloudCover          *float64 `json:"cloud_cover"`
		PressureMsl         *float64 `json:"pressure_msl"`
		Precipitation       *float64 `json:"precipitation"`
		Time                string   `json:"time"`
	} `json:"current"`
	Hourly struct {
		Time                     []string  `json:"time"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		Precipitation            []float64 `json:"precipitation"`
		UvIndex                  []float64 `json:"uv_index"`
		Visibility               []float64 `json:"visibility"`
		DewPoint                 []float64 `json:"dew_point_2m"`
		CloudCover               []float64 `json:"cloud_cover"`
		PressureMsl              []float64 `json:"pressure_msl"`
		WindDirection            []float64 `json:"wind_direction_10m"`
		WindGusts                []float64 `json:"wind_gusts_10m"`
		Rain                     []float64 `json:"rain"`
		Snowfall                 []float64 `json:"snowfall"`
	} `json:"hourly"`
	Daily struct {
		Time           []string  `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		Sunrise        []string  `json:"sunrise"`
		Sunset         []string  `json:"sunset"`
		UvIndexMax     []float64 `json:"uv_index_max"`
	} `json:"daily"`
}

// FetchWeather loads the current conditions for a coordinate. Callers are
// expected to substitute a fallback snapshot on error.
func (c *Client) FetchWeather(ctx context.Context, latitude, longitude float64) (*Snapshot, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", latitude))
	params.Set("longitude", fmt.Sprintf("%g", longitude))
	params.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,weather_code,wind_speed_10m,wind_direction_10m,wind_gusts_10m,cloud_cover,pressure_msl,precipitation")
	params.Set("hourly", "precipitation_probability,precipitation,uv_index,visibility,dew_point_2m,cloud_cover,pressure_msl,wind_direction_10m,wind_gusts_10m,rain,snowfall")
	params.Set("daily", "temperature_2m_max,temperature_2m_min,sunrise,sunset,uv_index_max")
	params.Set("timezone", "auto")

	var data forecastResponse
	if err := c.getJSON(ctx, c.forecastBase+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}
	if data.Current == nil {
		return nil, fmt.Errorf("openmeteo: response missing current block")
	}

	code := int(RoundWhole(data.Current.WeatherCode, 0))
	summary, icon := MapWeatherCode(code)
	hourlyIndex := ClosestIndex(data.Hourly.Time, data.Current.Time)

	precipitation := arrayValue(data.Hourly.Precipitation, hourlyIndex)
	if precipitation == nil {
		precipitation = data.Current.Precipitation
	}

	observedAt := data.Current.Time
	if observedAt == "" {
		observedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return &Snapshot{
		ObservedAt: observedAt,
		Daily: Daily{
			MinTemp: RoundWhole(arrayValue(data.Daily.TemperatureMin, 0), 0),
			MaxTemp: RoundWhole(arrayValue(data.Daily.TemperatureMax, 0), 0),
			Sunrise: formatClock(stringValue(data.Daily.Sunrise, 0)),
			Sunset:  formatClock(stringValue(data.Daily.Sunset, 0)),
		},
		Current: Current{
			Temperature:              RoundWhole(data.Current.Temperature, 0),
			FeelsLike:                RoundWhole(data.Current.ApparentTemperature, 0),
			Humidity:                 RoundWhole(data.Current.RelativeHumidity, 0),
			PrecipitationProbability: RoundWhole(arrayValue(data.Hourly.PrecipitationProbability, hourlyIndex), 0),
			Precipitation:            RoundTo(precipitation, 1, 0),
			UvIndex:                  RoundWhole(arrayValue(data.Daily.UvIndexMax, 0), 0),
			WindSpeed:                RoundWhole(data.Current.WindSpeed, 0),
			CloudCover:               RoundWhole(coalesce(data.Current.CloudCover, arrayValue(data.Hourly.CloudCover, hourlyIndex)), 0),
			Pressure:                 RoundWhole(coalesce(data.Current.PressureMsl, arrayValue(data.Hourly.PressureMsl, hourlyIndex)), 0),
			Visibility:               RoundTo(scale(arrayValue(data.Hourly.Visibility, hourlyIndex), 1.0/1000), 1, 0),
			WindDirection:            RoundWhole(coalesce(data.Current.WindDirection, arrayValue(data.Hourly.WindDirection, hourlyIndex)), 0),
			WindGust:                 RoundWhole(coalesce(data.Current.WindGusts, arrayValue(data.Hourly.WindGusts, hourlyIndex)), 0),
			DewPoint:                 RoundWhole(arrayValue(data.Hourly.DewPoint, hourlyIndex), 0),
			Rain:                     RoundTo(arrayValue(data.Hourly.Rain, hourlyIndex), 1, 0),
			Snowfall:                 RoundTo(arrayValue(data.Hourly.Snowfall, hourlyIndex), 1, 0),
			Summary:                  summary,
			Icon:                     icon,
			Code:                     code,
		},
	}, nil
}

type geocodingResponse struct {
	Results []struct {
		Name      string   `json:"name"`
		Admin1    string   `json:"admin1"`
		Country   string   `json:"country"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"results"`
}

// Search resolves place names to coordinates. Hits without coordinates are
// dropped.
func (c *Client) Search(ctx context.Context, query string) ([]Location, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "6")
	params.Set("language", "ko")
	params.Set("format", "json")

	var data geocodingResponse
	if err := c.getJSON(ctx, c.geocodingBase+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(data.Results))
	for _, item := range data.Results {
		if item.Latitude == nil || item.Longitude == nil {
			continue
		}
		name := item.Name
		if name == "" {
			name = "Unknown"
		}
		locations = append(locations, Location{
			Name:      name,
			Region:    item.Admin1,
			Country:   item.Country,
			Latitude:  *item.Latitude,
			Longitude: *item.Longitude,
		})
	}
	return locations, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openmeteo: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// RoundWhole rounds to the nearest integer, substituting fallback for
// missing or NaN values.
func RoundWhole(value *float64, fallback float64) float64 {
	if value == nil || math.IsNaN(*value) {
		return fallback
	}
	return math.Round(*value)
}

// RoundTo rounds to the given number of decimals, substituting fallback for
// missing or NaN values.
func RoundTo(value *float64, decimals int, fallback float64) float64 {
	if value == nil || math.IsNaN(*value) {
		return fallback
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(*value*factor) / factor
}

// MapWeatherCode translates a WMO weather code into a summary and icon.
func MapWeatherCode(code int) (string, string) {
	switch {
	case code == 0:
		return "Clear", "☀️"
	case code == 1 || code == 2:
		return "Partly cloudy", "🌤️"
	case code == 3:
		return "Overcast", "☁️"
	case code == 45 || code == 48:
		return "Fog", "🌫️"
	case code >= 51 && code <= 55:
		return "Drizzle", "🌦️"
	case code == 56 || code == 57:
		return "Freezing drizzle", "🌧️"
	case code >= 61 && code <= 65:
		return "Rain", "🌧️"
	case code == 66 || code == 67:
		return "Freezing rain", "🌧️"
	case code >= 71 && code <= 75:
		return "Snow", "❄️"
	case code == 77:
		return "Snow grains", "🌨️"
	case code >= 80 && code <= 82:
		return "Showers", "🌧️"
	case code == 85 || code == 86:
		return "Snow showers", "🌨️"
	case code == 95:
		return "Thunderstorm", "⛈️"
	case code == 96 || code == 99:
		return "Thunderstorm with hail", "⛈️"
	default:
		return "Changeable", "🌥️"
	}
}

// ClosestIndex picks the hourly slot nearest to the observation timestamp.
func ClosestIndex(times []string, target string) int {
	if len(times) == 0 || target == "" {
		return 0
	}
	targetTime, err := parseLocalTime(target)
	if err != nil {
		return 0
	}
	bestIndex := 0
	bestDiff := math.MaxFloat64
	for i, raw := range times {
		t, err := parseLocalTime(raw)
		if err != nil {
			continue
		}
		diff := math.Abs(t.Sub(targetTime).Seconds())
		if diff < bestDiff {
			bestDiff = diff
			bestIndex = i
		}
	}
	return bestIndex
}

// Open-Meteo emits local timestamps without a zone suffix.
func parseLocalTime(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func arrayValue(values []float64, index int) *float64 {
	if len(values) == 0 {
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index >= len(values) {
		index = len(values) - 1
	}
	v := values[index]
	return &v
}

func stringValue(values []string, index int) string {
	if index < 0 || index >= len(values) {
		return ""
	}
	return values[index]
}

func coalesce(primary, secondary *float64) *float64 {
	if primary != nil {
		return primary
	}
	return secondary
}

func scale(value *float64, factor float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value * factor
	return &v
}

// formatClock trims an ISO timestamp down to HH:MM.
func formatClock(value string) string {
	if value == "" {
		return "--:--"
	}
	parts := splitOnce(value, 'T')
	if parts == "" {
		return value
	}
	if len(parts) >= 5 {
		return parts[:5]
	}
	return parts
}

func splitOnce(value string, sep byte) string {
	for i := 0; i < len(value); i++ {
		if value[i] == sep {
			return value[i+1:]
		}
	}
	return ""
}
