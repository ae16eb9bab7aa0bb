package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:"CCL_ecommerce.db"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogOutput       string        `envconfig:"LOG_OUTPUT" default:"stderr"` // comma separated, e.g. "stderr,app.log"
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	DashboardTitle  string        `envconfig:"DASHBOARD_TITLE" default:"E-commerce Dashboard"`
	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	WeatherConfig
}

// WeatherConfig points the temperature proxy at the Open-Meteo archive.
type WeatherConfig struct {
	APIURL    string        `envconfig:"WEATHER_API_URL" default:"https://archive-api.open-meteo.com/v1/archive"`
	Latitude  float64       `envconfig:"WEATHER_LATITUDE" default:"50.6053"`
	Longitude float64       `envconfig:"WEATHER_LONGITUDE" default:"-3.5952"`
	Daily     string        `envconfig:"WEATHER_DAILY" default:"temperature_2m_max"`
	Timezone  string        `envconfig:"WEATHER_TIMEZONE" default:"GMT"`
	Timeout   time.Duration `envconfig:"WEATHER_TIMEOUT" default:"0s"` // 0 disables the client timeout
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LogOutputs splits LogOutput into zap output paths.
func (c *Config) LogOutputs() []string {
	var paths []string
	for _, p := range strings.Split(c.LogOutput, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return []string{"stderr"}
	}
	return paths
}
