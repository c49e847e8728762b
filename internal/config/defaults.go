package config

import "time"

const (
	DefaultRegion             = RegionUS
	DefaultHTTPAddress        = ":8080"
	DefaultServerTimeout      = 10 * time.Minute
	DefaultRequestTimeout     = 30 * time.Second
	DefaultMaxRetries         = 3
	DefaultPollingInterval    = 2 * time.Second
	DefaultMaxPollingDuration = 60 * time.Second
	DefaultAppName            = "airs-adapter"
	DefaultTokenIssuer        = "airs-adapter"
)

func defaultConfig() *StructuredConfig {
	maxRetries := DefaultMaxRetries
	return &StructuredConfig{
		App: App{
			LogLevel:    "info",
			TokenIssuer: DefaultTokenIssuer,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			Region:         DefaultRegion,
			RequestTimeout: DefaultRequestTimeout,
		},
		Scan: Scan{
			MaxRetries:         &maxRetries,
			PollingInterval:    DefaultPollingInterval,
			MaxPollingDuration: DefaultMaxPollingDuration,
			AppName:            DefaultAppName,
		},
	}
}
