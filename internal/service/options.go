package service

import (
	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/models"
)

// OptionDefaults are the configured values an item falls back to when it
// does not override them.
type OptionDefaults struct {
	Profile            string
	Timeout            models.Duration
	MaxRetries         int
	PollingInterval    models.Duration
	MaxPollingDuration models.Duration
}

// NewOptionDefaults collects option defaults from the loaded config.
func NewOptionDefaults(adapterCfg config.Adapter, scanCfg config.Scan) OptionDefaults {
	return OptionDefaults{
		Profile:            adapterCfg.Profile,
		Timeout:            models.Duration(adapterCfg.RequestTimeout),
		MaxRetries:         scanCfg.Retries(),
		PollingInterval:    models.Duration(scanCfg.PollingInterval),
		MaxPollingDuration: models.Duration(scanCfg.MaxPollingDuration),
	}
}

// ResolveOptions merges item overrides over the defaults into the single
// options value every engine component receives. The profile string is
// classified once here as an id or a name.
func (d OptionDefaults) ResolveOptions(item models.ItemOptions) models.ScanOptions {
	profile := d.Profile
	if item.Profile != "" {
		profile = item.Profile
	}

	retries := d.MaxRetries
	if item.MaxRetries != nil && *item.MaxRetries >= 0 {
		retries = *item.MaxRetries
	}

	return models.ScanOptions{
		Profile:            models.ClassifyProfile(profile),
		Timeout:            firstPositive(item.Timeout, d.Timeout).Std(),
		MaxRetries:         retries,
		PollingInterval:    firstPositive(item.PollingInterval, d.PollingInterval).Std(),
		MaxPollingDuration: firstPositive(item.MaxPollingDuration, d.MaxPollingDuration).Std(),
	}
}

func firstPositive(values ...models.Duration) models.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
