package bootstrap

import (
	"homedock-be/internal/config"
	"homedock-be/internal/controller"
	"homedock-be/internal/pkg/logger"
	"homedock-be/internal/repository/unitofwork"
	"homedock-be/internal/service"
	"homedock-be/pkg/geoip"
	"homedock-be/pkg/openmeteo"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	DashboardController controller.IDashboardController
	WeatherController   controller.IWeatherController

	// Exposed for main.go to run on startup
	SeedService service.ISeedService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Upstream clients
	meteoClient := openmeteo.NewClient(cfg.Weather.ForecastBase, cfg.Weather.GeocodingBase)
	geoClient := geoip.NewClient(cfg.Weather.GeoipBase)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger)
	weatherService := service.NewWeatherService(uowFactory, meteoClient, geoClient, sysLogger)
	seedService := service.NewSeedService(uowFactory, cfg.Auth, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService, cfg.Auth),
		DashboardController: controller.NewDashboardController(dashboardService),
		WeatherController:   controller.NewWeatherController(weatherService),
		SeedService:         seedService,
		Logger:              sysLogger,
	}
}
