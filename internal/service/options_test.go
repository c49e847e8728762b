package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func testDefaults() OptionDefaults {
	return NewOptionDefaults(
		config.Adapter{Profile: "corp-default", RequestTimeout: 30 * time.Second},
		config.Scan{MaxRetries: intPtr(3), PollingInterval: 2 * time.Second, MaxPollingDuration: time.Minute},
	)
}

func TestResolveOptions_Defaults(t *testing.T) {
	got := testDefaults().ResolveOptions(models.ItemOptions{})

	assert.Equal(t, models.ScanOptions{
		Profile:            models.ProfileByName("corp-default"),
		Timeout:            30 * time.Second,
		MaxRetries:         3,
		PollingInterval:    2 * time.Second,
		MaxPollingDuration: time.Minute,
	}, got)
}

func TestResolveOptions_Overrides(t *testing.T) {
	got := testDefaults().ResolveOptions(models.ItemOptions{
		Profile:            "strict",
		Timeout:            models.Duration(5 * time.Second),
		MaxRetries:         intPtr(0),
		PollingInterval:    models.Duration(500 * time.Millisecond),
		MaxPollingDuration: models.Duration(10 * time.Second),
	})

	assert.Equal(t, models.ScanOptions{
		Profile:            models.ProfileByName("strict"),
		Timeout:            5 * time.Second,
		MaxRetries:         0,
		PollingInterval:    500 * time.Millisecond,
		MaxPollingDuration: 10 * time.Second,
	}, got)
}

func TestResolveOptions_ProfileClassification(t *testing.T) {
	tests := []struct {
		name     string
		override string
		wantID   bool
	}{
		{name: "default name", override: "", wantID: false},
		{name: "name override", override: "Secure-AI", wantID: false},
		{name: "uuid override", override: "0F1E2D3C-4B5A-6978-8796-A5B4C3D2E1F0", wantID: true},
		{name: "almost uuid", override: "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f", wantID: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testDefaults().ResolveOptions(models.ItemOptions{Profile: tt.override})

			_, isID := got.Profile.ID()
			assert.Equal(t, tt.wantID, isID)

			wire := got.Profile.AIProfile()
			if tt.wantID {
				assert.Equal(t, tt.override, wire.ProfileID)
				assert.Empty(t, wire.ProfileName)
			} else {
				assert.NotEmpty(t, wire.ProfileName)
				assert.Empty(t, wire.ProfileID)
			}
		})
	}
}

func TestResolveOptions_NegativeRetriesIgnored(t *testing.T) {
	got := testDefaults().ResolveOptions(models.ItemOptions{MaxRetries: intPtr(-1)})
	assert.Equal(t, 3, got.MaxRetries)
}

func TestNewOptionDefaults_NilRetriesUsesConfigDefault(t *testing.T) {
	d := NewOptionDefaults(config.Adapter{}, config.Scan{})
	assert.Equal(t, config.DefaultMaxRetries, d.MaxRetries)
}
