package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token sent with every request, if set.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Version is the client build version.
	Version string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Unlike [GetStructuredConfig] it does not require server-side settings such
// as the token sign key or the database DSN.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Version: cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
