package constant

// Option keys selectable for the lock-screen system summary panel.
const (
	SystemSummaryActiveServices = "activeServices"
	SystemSummaryAuthStatus     = "authStatus"
	SystemSummaryLastSync       = "lastSync"
	SystemSummaryCategoryCount  = "categoryCount"
	SystemSummaryFavoriteCount  = "favoriteCount"
)

// Option keys selectable for the weather widget meta rows.
const (
	WeatherMetaHumidity          = "humidity"
	WeatherMetaPrecipProbability = "precipitationProbability"
	WeatherMetaPrecipitation     = "precipitation"
	WeatherMetaUvIndex           = "uvIndex"
	WeatherMetaWindSpeed         = "windSpeed"
	WeatherMetaCloudCover        = "cloudCover"
	WeatherMetaPressure          = "pressure"
	WeatherMetaVisibility        = "visibility"
	WeatherMetaWindGust          = "windGust"
	WeatherMetaWindDirection     = "windDirection"
	WeatherMetaDewPoint          = "dewPoint"
	WeatherMetaRain              = "rain"
	WeatherMetaSnowfall          = "snowfall"
)

const (
	SystemSummaryMax = 4
	WeatherMetaMax   = 5
)

var SystemSummaryKeys = []string{
	SystemSummaryActiveServices,
	SystemSummaryAuthStatus,
	SystemSummaryLastSync,
	SystemSummaryCategoryCount,
	SystemSummaryFavoriteCount,
}

var WeatherMetaKeys = []string{
	WeatherMetaHumidity,
	WeatherMetaPrecipProbability,
	WeatherMetaPrecipitation,
	WeatherMetaUvIndex,
	WeatherMetaWindSpeed,
	WeatherMetaCloudCover,
	WeatherMetaPressure,
	WeatherMetaVisibility,
	WeatherMetaWindGust,
	WeatherMetaWindDirection,
	WeatherMetaDewPoint,
	WeatherMetaRain,
	WeatherMetaSnowfall,
}

var DefaultSystemSummaryOrder = []string{
	SystemSummaryActiveServices,
	SystemSummaryAuthStatus,
	SystemSummaryLastSync,
	SystemSummaryCategoryCount,
}

var DefaultWeatherMetaOrder = []string{
	WeatherMetaHumidity,
	WeatherMetaPrecipProbability,
	WeatherMetaPrecipitation,
	WeatherMetaUvIndex,
	WeatherMetaWindSpeed,
}

// Service link targets. Anything else (including the legacy "window" value
// stored by early versions) is coerced to TargetBlank.
const (
	TargetSelf  = "_self"
	TargetBlank = "_blank"
)

const (
	WeatherModeAuto   = "auto"
	WeatherModeManual = "manual"
)

const AuthCookieName = "homedock_token"
