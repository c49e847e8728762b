// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the scan
// adapter. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version, log level
	// and the keys used to authenticate workflow hosts.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// surface exposed to workflow hosts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the credential and endpoint of the remote scan API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Scan holds the default per-item scan options and metadata.
	Scan Scan `envPrefix:"SCAN_"`

	// CLI holds settings used only by the command-line runner.
	CLI CLI `envPrefix:"CLI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret key used to verify bearer tokens presented
	// by workflow hosts. Authentication is disabled when empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of host bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. It must cover the longest async polling budget of a batch.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote scan API credential and endpoint selection.
type Adapter struct {
	// APIKey is sent in the x-pan-token header of every request.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// Region selects the endpoint: "us", "eu", "in" or "custom".
	// Env: ADAPTER_REGION
	Region string `env:"REGION"`

	// CustomEndpoint is the base URL used when Region is "custom".
	// Env: ADAPTER_CUSTOM_ENDPOINT
	CustomEndpoint string `env:"CUSTOM_ENDPOINT"`

	// Profile is the credential-level default security profile, either a
	// profile name or a profile UUID.
	// Env: ADAPTER_PROFILE
	Profile string `env:"PROFILE"`

	// RequestTimeout is the default timeout of a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Scan holds the default scan options and metadata applied to every item
// that does not override them.
type Scan struct {
	// MaxRetries is the number of retries after the first attempt of each
	// outbound call. Nil means the default.
	// Env: SCAN_MAX_RETRIES
	MaxRetries *int `env:"MAX_RETRIES"`

	// PollingInterval is the pause between two async result polls.
	// Env: SCAN_POLLING_INTERVAL
	PollingInterval time.Duration `env:"POLLING_INTERVAL"`

	// MaxPollingDuration bounds the lifetime of an async scan.
	// Env: SCAN_MAX_POLLING_DURATION
	MaxPollingDuration time.Duration `env:"MAX_POLLING_DURATION"`

	// AppName, AIModel and AppUser fill the request metadata.
	// Env: SCAN_APP_NAME, SCAN_AI_MODEL, SCAN_APP_USER
	AppName string `env:"APP_NAME"`
	AIModel string `env:"AI_MODEL"`
	AppUser string `env:"APP_USER"`

	// ContinueOnFail turns item failures into error records instead of
	// aborting the run.
	// Env: SCAN_CONTINUE_ON_FAIL
	ContinueOnFail bool `env:"CONTINUE_ON_FAIL"`
}

// CLI holds settings used only by cmd/scan.
type CLI struct {
	// InputPath is the JSON file with the items to process. "-" or empty
	// reads standard input.
	// Env: CLI_INPUT
	InputPath string `env:"INPUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
