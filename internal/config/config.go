package config

// Config holds runtime configuration for the feed service.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	Debug     bool
	Feed      FeedConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		LogLevel:  envOrDefault(envLogLevel, ""),
		LogFormat: envOrDefault(envLogFormat, ""),
		Debug:     boolEnvOrDefault(envDebug, false),
		Feed:      loadFeed(),
		Metrics:   loadMetrics(),
	}
}
