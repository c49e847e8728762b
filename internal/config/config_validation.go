// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The region is resolved here so that an unknown region or a missing custom
// endpoint fails before any scan request is attempted.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.APIKey == "" {
		return ErrMissingAPIKey
	}

	if _, err := ResolveBaseURL(cfg.Adapter.Region, cfg.Adapter.CustomEndpoint); err != nil {
		return err
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Scan.MaxRetries != nil && *cfg.Scan.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative", ErrInvalidScanConfigs)
	}

	if cfg.Scan.PollingInterval <= 0 || cfg.Scan.MaxPollingDuration <= 0 {
		return fmt.Errorf("%w: polling interval and duration must be positive", ErrInvalidScanConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

// BaseURL returns the resolved scan API base URL. It is only valid on a
// config that passed validation.
func (cfg *StructuredConfig) BaseURL() string {
	baseURL, _ := ResolveBaseURL(cfg.Adapter.Region, cfg.Adapter.CustomEndpoint)
	return baseURL
}

// Retries returns the configured retry count or the default.
func (s Scan) Retries() int {
	if s.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *s.MaxRetries
}
