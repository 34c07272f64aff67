package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"homedock-be/internal/constant"
	"homedock-be/pkg/geoip"
	"homedock-be/pkg/openmeteo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeForecast struct {
	snapshot  *openmeteo.Snapshot
	fetchErr  error
	fetches   int
	lastLat   float64
	lastLon   float64
	locations []openmeteo.Location
	searchErr error
	searches  int
}

func (f *fakeForecast) FetchWeather(ctx context.Context, latitude, longitude float64) (*openmeteo.Snapshot, error) {
	f.fetches++
	f.lastLat = latitude
	f.lastLon = longitude
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.snapshot != nil {
		return f.snapshot, nil
	}
	return &openmeteo.Snapshot{
		ObservedAt: "2024-05-01T12:00",
		Daily:      openmeteo.Daily{MinTemp: 10, MaxTemp: 20, Sunrise: "06:00", Sunset: "19:00"},
		Current:    openmeteo.Current{Temperature: 15, Summary: "Overcast", Icon: "☁️", Code: 3},
	}, nil
}

func (f *fakeForecast) Search(ctx context.Context, query string) ([]openmeteo.Location, error) {
	f.searches++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.locations, nil
}

type fakeGeo struct {
	location  *geoip.Location
	lookupErr error
	lookups   int
	lastIP    string
}

func (f *fakeGeo) Lookup(ctx context.Context, ip string) (*geoip.Location, error) {
	f.lookups++
	f.lastIP = ip
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.location, nil
}

func newWeatherFixture() (*memStore, *fakeForecast, *fakeGeo, IWeatherService) {
	store := newMemStore()
	forecast := &fakeForecast{}
	geo := &fakeGeo{}
	svc := NewWeatherService(&memFactory{store: store}, forecast, geo, nopLogger{})
	return store, forecast, geo, svc
}

func TestGetWeatherDefaultsForPrivateIP(t *testing.T) {
	_, forecast, geo, svc := newWeatherFixture()

	resp, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "default", resp.Location.Source)
	assert.Equal(t, "서울", resp.Location.Name)
	assert.Equal(t, 37.5665, forecast.lastLat)
	assert.Equal(t, 126.978, forecast.lastLon)
	assert.Equal(t, 0, geo.lookups)
	assert.Equal(t, 15.0, resp.Current.Temperature)
}

func TestGetWeatherCachesSnapshot(t *testing.T) {
	_, forecast, _, svc := newWeatherFixture()

	first, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	second, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 1, forecast.fetches)
	assert.Same(t, first, second)
}

func TestGetWeatherRefetchesWhenKeyChanges(t *testing.T) {
	store, forecast, _, svc := newWeatherFixture()

	_, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	// Switching to a manual location changes the cache key
	config := DefaultDashboardConfig()
	config.WeatherMode = constant.WeatherModeManual
	config.WeatherLatitude = floatPtr(35.1796)
	config.WeatherLongitude = floatPtr(129.0756)
	config.WeatherName = strPtr("부산")
	store.config = config

	resp, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 2, forecast.fetches)
	assert.Equal(t, "manual", resp.Location.Source)
	assert.Equal(t, "부산", resp.Location.Name)
	assert.Equal(t, 35.1796, forecast.lastLat)
	assert.Equal(t, 129.0756, forecast.lastLon)
}

func TestGetWeatherRefetchesAfterExpiry(t *testing.T) {
	_, forecast, _, svc := newWeatherFixture()

	_, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	ws := svc.(*weatherService)
	ws.mu.Lock()
	ws.slot.expiresAt = time.Now().Add(-time.Minute)
	ws.mu.Unlock()

	_, err = svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 2, forecast.fetches)
}

func TestGetWeatherServesFallbackOnFetchError(t *testing.T) {
	_, forecast, _, svc := newWeatherFixture()
	forecast.fetchErr = errors.New("upstream down")

	resp, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 22.0, resp.Current.Temperature)
	assert.Equal(t, "Clear", resp.Current.Summary)
	assert.Equal(t, 18.0, resp.Daily.MinTemp)
	assert.Equal(t, "06:52", resp.Daily.Sunrise)
}

func TestGetWeatherResolvesPublicIP(t *testing.T) {
	_, forecast, geo, svc := newWeatherFixture()
	geo.location = &geoip.Location{
		Latitude:  35.1796,
		Longitude: 129.0756,
		City:      "Busan",
		Country:   "South Korea",
	}

	resp, err := svc.GetWeather(context.Background(), "203.0.113.10, 10.0.0.1")
	require.NoError(t, err)

	// First hop of the forwarded chain is what gets resolved
	assert.Equal(t, "203.0.113.10", geo.lastIP)
	assert.Equal(t, "ip", resp.Location.Source)
	assert.Equal(t, "Busan", resp.Location.Name)
	assert.Equal(t, "South Korea", resp.Location.Country)
	// Missing fields fall back to the default location labels
	assert.Equal(t, "서울특별시", resp.Location.Region)
	assert.Equal(t, 35.1796, forecast.lastLat)
}

func TestGetWeatherGeoFailureFallsBack(t *testing.T) {
	_, forecast, geo, svc := newWeatherFixture()
	geo.lookupErr = errors.New("rate limited")

	resp, err := svc.GetWeather(context.Background(), "203.0.113.10")
	require.NoError(t, err)

	assert.Equal(t, "default", resp.Location.Source)
	assert.Equal(t, 37.5665, forecast.lastLat)
}

func TestGetWeatherManualNeedsBothCoordinates(t *testing.T) {
	store, _, _, svc := newWeatherFixture()

	config := DefaultDashboardConfig()
	config.WeatherMode = constant.WeatherModeManual
	config.WeatherLatitude = floatPtr(35.1796)
	store.config = config

	resp, err := svc.GetWeather(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	// Half-configured manual mode behaves like auto
	assert.Equal(t, "default", resp.Location.Source)
}

func TestSearchLocationsShortQuery(t *testing.T) {
	_, forecast, _, svc := newWeatherFixture()

	locations, err := svc.SearchLocations(context.Background(), " a ")
	require.NoError(t, err)

	assert.Empty(t, locations)
	assert.Equal(t, 0, forecast.searches)
}

func TestSearchLocationsCachesResults(t *testing.T) {
	_, forecast, _, svc := newWeatherFixture()
	forecast.locations = []openmeteo.Location{{Name: "서울", Latitude: 37.5665, Longitude: 126.978}}

	first, err := svc.SearchLocations(context.Background(), "seoul")
	require.NoError(t, err)
	second, err := svc.SearchLocations(context.Background(), "seoul")
	require.NoError(t, err)

	assert.Equal(t, 1, forecast.searches)
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, "서울", first[0].Name)
}

func TestSearchLocationsFailureReturnsEmpty(t *testing.T) {
	_, forecast, _, svc := newWeatherFixture()
	forecast.searchErr = errors.New("upstream down")

	locations, err := svc.SearchLocations(context.Background(), "seoul")
	require.NoError(t, err)

	assert.NotNil(t, locations)
	assert.Empty(t, locations)
	assert.Equal(t, 1, forecast.searches)
}
