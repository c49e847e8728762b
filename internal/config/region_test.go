package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		custom   string
		expected string
		wantErr  error
	}{
		{name: "us", region: "us", expected: "https://service.api.aisecurity.paloaltonetworks.com"},
		{name: "eu", region: "eu", expected: "https://service-de.api.aisecurity.paloaltonetworks.com"},
		{name: "in", region: "in", expected: "https://service-in.api.aisecurity.paloaltonetworks.com"},
		{name: "case and space insensitive", region: " US ", expected: "https://service.api.aisecurity.paloaltonetworks.com"},
		{name: "custom", region: "custom", custom: "https://airs.example.com/", expected: "https://airs.example.com"},
		{name: "custom without endpoint", region: "custom", wantErr: ErrMissingCustomEndpoint},
		{name: "custom not a url", region: "custom", custom: "airs.example.com", wantErr: ErrInvalidCustomEndpoint},
		{name: "custom ftp", region: "custom", custom: "ftp://airs.example.com", wantErr: ErrInvalidCustomEndpoint},
		{name: "unknown", region: "apac", wantErr: ErrUnknownRegion},
		{name: "empty", region: "", wantErr: ErrUnknownRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBaseURL(tt.region, tt.custom)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
