package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid scan API settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidScanConfigs indicates invalid scan option defaults
	// (for example, a negative retry count or zero polling interval).
	ErrInvalidScanConfigs = errors.New("invalid scan configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrMissingAPIKey is returned when no scan API key is configured.
	ErrMissingAPIKey = errors.New("scan API key is not configured")
	// ErrUnknownRegion is returned for a region selector outside the known set.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrMissingCustomEndpoint is returned when region is custom but no
	// endpoint is configured.
	ErrMissingCustomEndpoint = errors.New("custom region requires an endpoint")
	// ErrInvalidCustomEndpoint is returned when the custom endpoint is not an
	// absolute http(s) URL.
	ErrInvalidCustomEndpoint = errors.New("invalid custom endpoint")
)
