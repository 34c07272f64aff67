package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"homedock-be/internal/constant"
	"homedock-be/internal/dto"
	"homedock-be/internal/pkg/logger"
	"homedock-be/internal/repository/unitofwork"
	"homedock-be/pkg/geoip"
	"homedock-be/pkg/openmeteo"

	gocache "github.com/patrickmn/go-cache"
)

const (
	weatherCacheTTL = 10 * time.Minute
	searchCacheTTL  = time.Hour
)

// Seoul, the fallback location when nothing else resolves.
var defaultLocation = dto.WeatherLocation{
	Name:      "서울",
	Region:    "서울특별시",
	Country:   "대한민국",
	Latitude:  37.5665,
	Longitude: 126.978,
}

// ForecastProvider is the slice of the Open-Meteo client the service needs.
type ForecastProvider interface {
	FetchWeather(ctx context.Context, latitude, longitude float64) (*openmeteo.Snapshot, error)
	Search(ctx context.Context, query string) ([]openmeteo.Location, error)
}

// GeoResolver resolves public IPs to coordinates.
type GeoResolver interface {
	Lookup(ctx context.Context, ip string) (*geoip.Location, error)
}

type IWeatherService interface {
	GetWeather(ctx context.Context, ip string) (*dto.WeatherResponse, error)
	SearchLocations(ctx context.Context, query string) ([]openmeteo.Location, error)
}

type weatherService struct {
	uowFactory unitofwork.RepositoryFactory
	forecast   ForecastProvider
	geo        GeoResolver
	logger     logger.ILogger

	// Single-slot snapshot cache. One dashboard serves one household, so
	// one slot is enough; a different key evicts the previous snapshot.
	mu   sync.Mutex
	slot *weatherSlot

	searchCache *gocache.Cache
}

type weatherSlot struct {
	key       string
	payload   *dto.WeatherResponse
	expiresAt time.Time
}

func NewWeatherService(
	uowFactory unitofwork.RepositoryFactory,
	forecast ForecastProvider,
	geo GeoResolver,
	sysLogger logger.ILogger,
) IWeatherService {
	return &weatherService{
		uowFactory:  uowFactory,
		forecast:    forecast,
		geo:         geo,
		logger:      sysLogger,
		searchCache: gocache.New(searchCacheTTL, 10*time.Minute),
	}
}

func (s *weatherService) GetWeather(ctx context.Context, ip string) (*dto.WeatherResponse, error) {
	normalizedIP := geoip.NormalizeIP(firstForwardedIP(ip))

	manual, err := s.resolveManualLocation(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := normalizedIP
	if manual != nil {
		cacheKey = fmt.Sprintf("manual:%v,%v", manual.Latitude, manual.Longitude)
	}

	s.mu.Lock()
	if s.slot != nil && s.slot.key == cacheKey && time.Now().Before(s.slot.expiresAt) {
		payload := s.slot.payload
		s.mu.Unlock()
		return payload, nil
	}
	s.mu.Unlock()

	location := manual
	if location == nil {
		location = s.resolveLocation(ctx, normalizedIP)
	}

	snapshot, err := s.forecast.FetchWeather(ctx, location.Latitude, location.Longitude)
	if err != nil {
		s.logger.Warn("weather", "Forecast fetch failed, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		snapshot = fallbackSnapshot()
	}

	payload := &dto.WeatherResponse{
		Location:   *location,
		Current:    snapshot.Current,
		Daily:      snapshot.Daily,
		ObservedAt: snapshot.ObservedAt,
	}

	s.mu.Lock()
	s.slot = &weatherSlot{
		key:       cacheKey,
		payload:   payload,
		expiresAt: time.Now().Add(weatherCacheTTL),
	}
	s.mu.Unlock()

	return payload, nil
}

// SearchLocations never fails towards the caller; upstream errors collapse
// to an empty result.
func (s *weatherService) SearchLocations(ctx context.Context, query string) ([]openmeteo.Location, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < 2 {
		return []openmeteo.Location{}, nil
	}

	if cached, ok := s.searchCache.Get(trimmed); ok {
		return cached.([]openmeteo.Location), nil
	}

	locations, err := s.forecast.Search(ctx, trimmed)
	if err != nil {
		s.logger.Warn("weather", "Location search failed", map[string]interface{}{
			"query": trimmed,
			"error": err.Error(),
		})
		return []openmeteo.Location{}, nil
	}
	if locations == nil {
		locations = []openmeteo.Location{}
	}

	s.searchCache.Set(trimmed, locations, gocache.DefaultExpiration)
	return locations, nil
}

// resolveManualLocation returns the configured coordinate when weather mode
// is manual and both coordinates are set, nil otherwise.
func (s *weatherService) resolveManualLocation(ctx context.Context) (*dto.WeatherLocation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := uow.DashboardConfigRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil || config.WeatherMode != constant.WeatherModeManual {
		return nil, nil
	}
	if config.WeatherLatitude == nil || config.WeatherLongitude == nil {
		return nil, nil
	}

	location := dto.WeatherLocation{
		Name:      defaultLocation.Name,
		Region:    defaultLocation.Region,
		Country:   defaultLocation.Country,
		Latitude:  *config.WeatherLatitude,
		Longitude: *config.WeatherLongitude,
		Source:    "manual",
	}
	if config.WeatherName != nil {
		location.Name = *config.WeatherName
	}
	if config.WeatherRegion != nil {
		location.Region = *config.WeatherRegion
	}
	if config.WeatherCountry != nil {
		location.Country = *config.WeatherCountry
	}
	return &location, nil
}

func (s *weatherService) resolveLocation(ctx context.Context, ip string) *dto.WeatherLocation {
	if ip == "" || geoip.IsPrivateIP(ip) {
		loc := defaultLocation
		loc.Source = "default"
		return &loc
	}

	resolved, err := s.geo.Lookup(ctx, ip)
	if err != nil {
		s.logger.Warn("weather", "IP geolocation failed", map[string]interface{}{
			"ip":    ip,
			"error": err.Error(),
		})
		loc := defaultLocation
		loc.Source = "default"
		return &loc
	}

	location := dto.WeatherLocation{
		Name:      defaultLocation.Name,
		Region:    defaultLocation.Region,
		Country:   defaultLocation.Country,
		Latitude:  resolved.Latitude,
		Longitude: resolved.Longitude,
		Source:    "ip",
	}
	if resolved.City != "" {
		location.Name = resolved.City
	}
	if resolved.Region != "" {
		location.Region = resolved.Region
	}
	if resolved.Country != "" {
		location.Country = resolved.Country
	}
	return &location
}

// firstForwardedIP takes the client hop from a comma-separated
// x-forwarded-for chain.
func firstForwardedIP(raw string) string {
	if idx := strings.IndexByte(raw, ','); idx >= 0 {
		return strings.TrimSpace(raw[:idx])
	}
	return strings.TrimSpace(raw)
}

func fallbackSnapshot() *openmeteo.Snapshot {
	return &openmeteo.Snapshot{
		ObservedAt: time.Now().UTC().Format(time.RFC3339),
		Daily: openmeteo.Daily{
			MinTemp: 18,
			MaxTemp: 26,
			Sunrise: "06:52",
			Sunset:  "19:38",
		},
		Current: openmeteo.Current{
			Temperature:              22,
			FeelsLike:                24,
			Humidity:                 48,
			PrecipitationProbability: 0,
			Precipitation:            0,
			UvIndex:                  5,
			WindSpeed:                3,
			CloudCover:               35,
			Pressure:                 1012,
			Visibility:               10,
			WindDirection:            180,
			WindGust:                 6,
			DewPoint:                 12,
			Rain:                     0,
			Snowfall:                 0,
			Summary:                  "Clear",
			Icon:                     "☀️",
			Code:                     0,
		},
	}
}
