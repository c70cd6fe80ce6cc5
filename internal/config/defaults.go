package config

import "time"

const (
	defaultHTTPAddress      = ":3000"
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenIssuer      = "backend-mobile"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultMaxOpenConns     = 10
	defaultAdapterAddress   = "http://localhost:3000"
	defaultAdapterTimeout   = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
