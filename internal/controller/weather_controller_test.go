package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"homedock-be/internal/dto"
	"homedock-be/internal/pkg/serverutils"
	"homedock-be/pkg/openmeteo"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWeatherService struct {
	lastIP    string
	lastQuery string
}

func (s *stubWeatherService) GetWeather(ctx context.Context, ip string) (*dto.WeatherResponse, error) {
	s.lastIP = ip
	return &dto.WeatherResponse{}, nil
}

func (s *stubWeatherService) SearchLocations(ctx context.Context, query string) ([]openmeteo.Location, error) {
	s.lastQuery = query
	return []openmeteo.Location{}, nil
}

func newWeatherApp(svc *stubWeatherService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewWeatherController(svc).RegisterRoutes(api)
	return app
}

func TestGetWeatherUsesForwardedHeader(t *testing.T) {
	svc := &stubWeatherService{}
	app := newWeatherApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/weather/v1", nil)
	req.Header.Set("x-forwarded-for", "203.0.113.10, 10.0.0.1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "203.0.113.10, 10.0.0.1", svc.lastIP)
}

func TestGetWeatherFallsBackToRealIPHeader(t *testing.T) {
	svc := &stubWeatherService{}
	app := newWeatherApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/weather/v1", nil)
	req.Header.Set("x-real-ip", "203.0.113.20")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "203.0.113.20", svc.lastIP)
}

func TestSearchLocationsRoute(t *testing.T) {
	svc := &stubWeatherService{}
	app := newWeatherApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/weather/v1/locations?query=seoul", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "seoul", svc.lastQuery)
}
