package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Weather  WeatherConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret      string
	AdminEmail     string
	AdminPassword  string
	CookieSecure   bool
	CookieDomain   string
	CookieSameSite string
}

type WeatherConfig struct {
	ForecastBase  string
	GeocodingBase string
	GeoipBase     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", ""),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),
			AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
			CookieSecure:   getEnvAsBool("COOKIE_SECURE", false),
			CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
			CookieSameSite: getEnv("COOKIE_SAME_SITE", "Lax"),
		},
		Weather: WeatherConfig{
			ForecastBase:  getEnv("WEATHER_API_BASE", ""),
			GeocodingBase: getEnv("GEOCODING_API_BASE", ""),
			GeoipBase:     getEnv("GEOIP_API_BASE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	switch getEnv(key, "") {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return fallback
}
