package openmeteo

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestRoundWhole(t *testing.T) {
	assert.Equal(t, 23.0, RoundWhole(floatPtr(22.6), 0))
	assert.Equal(t, 22.0, RoundWhole(floatPtr(22.4), 0))
	assert.Equal(t, 0.0, RoundWhole(nil, 0))
	assert.Equal(t, 5.0, RoundWhole(nil, 5))
	assert.Equal(t, 5.0, RoundWhole(floatPtr(math.NaN()), 5))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.2, RoundTo(floatPtr(1.24), 1, 0))
	assert.Equal(t, 1.3, RoundTo(floatPtr(1.25), 1, 0))
	assert.Equal(t, 0.0, RoundTo(nil, 1, 0))
	assert.Equal(t, 9.9, RoundTo(floatPtr(math.NaN()), 1, 9.9))
}

func TestMapWeatherCode(t *testing.T) {
	cases := []struct {
		code    int
		summary string
	}{
		{0, "Clear"},
		{1, "Partly cloudy"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{45, "Fog"},
		{53, "Drizzle"},
		{63, "Rain"},
		{66, "Freezing rain"},
		{73, "Snow"},
		{77, "Snow grains"},
		{81, "Showers"},
		{86, "Snow showers"},
		{95, "Thunderstorm"},
		{99, "Thunderstorm with hail"},
		{42, "Changeable"},
	}
	for _, tc := range cases {
		summary, icon := MapWeatherCode(tc.code)
		assert.Equal(t, tc.summary, summary, "code %d", tc.code)
		assert.NotEmpty(t, icon, "code %d", tc.code)
	}
}

func TestClosestIndex(t *testing.T) {
	times := []string{
		"2024-05-01T10:00",
		"2024-05-01T11:00",
		"2024-05-01T12:00",
	}

	assert.Equal(t, 1, ClosestIndex(times, "2024-05-01T11:10"))
	assert.Equal(t, 2, ClosestIndex(times, "2024-05-01T18:00"))
	assert.Equal(t, 0, ClosestIndex(times, ""))
	assert.Equal(t, 0, ClosestIndex(nil, "2024-05-01T11:00"))
	assert.Equal(t, 0, ClosestIndex(times, "garbage"))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "06:52", formatClock("2024-05-01T06:52"))
	assert.Equal(t, "19:38", formatClock("2024-05-01T19:38:12"))
	assert.Equal(t, "--:--", formatClock(""))
	assert.Equal(t, "0652", formatClock("0652"))
}

func TestFetchWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "37.5665", r.URL.Query().Get("latitude"))
		assert.Equal(t, "auto", r.URL.Query().Get("timezone"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {
				"time": "2024-05-01T12:00",
				"temperature_2m": 22.4,
				"apparent_temperature": 23.6,
				"relative_humidity_2m": 48,
				"weather_code": 2,
				"wind_speed_10m": 5.2,
				"wind_direction_10m": 180,
				"wind_gusts_10m": 12.4,
				"cloud_cover": 35,
				"pressure_msl": 1012.4
			},
			"hourly": {
				"time": ["2024-05-01T11:00", "2024-05-01T12:00"],
				"precipitation_probability": [10, 20],
				"precipitation": [0.1, 0.26],
				"uv_index": [2, 3],
				"visibility": [9000, 12340],
				"dew_point_2m": [9, 10.4],
				"cloud_cover": [40, 50],
				"pressure_msl": [1010, 1011],
				"wind_direction_10m": [170, 175],
				"wind_gusts_10m": [11, 13],
				"rain": [0, 0.12],
				"snowfall": [0, 0]
			},
			"daily": {
				"time": ["2024-05-01"],
				"temperature_2m_max": [26.4],
				"temperature_2m_min": [17.6],
				"sunrise": ["2024-05-01T06:52"],
				"sunset": ["2024-05-01T19:38"],
				"uv_index_max": [5.4]
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	snap, err := client.FetchWeather(context.Background(), 37.5665, 126.978)
	require.NoError(t, err)

	assert.Equal(t, 22.0, snap.Current.Temperature)
	assert.Equal(t, 24.0, snap.Current.FeelsLike)
	assert.Equal(t, 48.0, snap.Current.Humidity)
	assert.Equal(t, "Partly cloudy", snap.Current.Summary)
	assert.Equal(t, 2, snap.Current.Code)
	// Hourly slot nearest to the observation time is index 1
	assert.Equal(t, 20.0, snap.Current.PrecipitationProbability)
	assert.Equal(t, 0.3, snap.Current.Precipitation)
	// Daily max, not the hourly series
	assert.Equal(t, 5.0, snap.Current.UvIndex)
	// Meters to km at one decimal
	assert.Equal(t, 12.3, snap.Current.Visibility)
	// Current block wins over hourly when present
	assert.Equal(t, 35.0, snap.Current.CloudCover)
	assert.Equal(t, 1012.0, snap.Current.Pressure)
	assert.Equal(t, 10.0, snap.Current.DewPoint)
	assert.Equal(t, 0.1, snap.Current.Rain)

	assert.Equal(t, 18.0, snap.Daily.MinTemp)
	assert.Equal(t, 26.0, snap.Daily.MaxTemp)
	assert.Equal(t, "06:52", snap.Daily.Sunrise)
	assert.Equal(t, "19:38", snap.Daily.Sunset)
	assert.Equal(t, "2024-05-01T12:00", snap.ObservedAt)
}

func TestFetchWeatherMissingCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hourly": {}, "daily": {}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchWeather(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestFetchWeatherUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchWeather(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "seoul", r.URL.Query().Get("name"))
		assert.Equal(t, "6", r.URL.Query().Get("count"))
		assert.Equal(t, "ko", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{
			"results": [
				{"name": "서울", "admin1": "서울특별시", "country": "대한민국", "latitude": 37.5665, "longitude": 126.978},
				{"name": "Seoul Station", "admin1": "Seoul"},
				{"name": "", "latitude": 1.0, "longitude": 2.0}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("", srv.URL)
	locations, err := client.Search(context.Background(), "seoul")
	require.NoError(t, err)

	// The hit without coordinates is dropped
	require.Len(t, locations, 2)
	assert.Equal(t, "서울", locations[0].Name)
	assert.Equal(t, "서울특별시", locations[0].Region)
	assert.Equal(t, 37.5665, locations[0].Latitude)
	assert.Equal(t, "Unknown", locations[1].Name)
}

func TestSearchEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("", srv.URL)
	locations, err := client.Search(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, locations)
}
