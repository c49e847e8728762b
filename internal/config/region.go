// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Region selectors accepted in [Adapter.Region].
const (
	RegionUS     = "us"
	RegionEU     = "eu"
	RegionIN     = "in"
	RegionCustom = "custom"
)

var regionBaseURLs = map[string]string{
	RegionUS: "https://service.api.aisecurity.paloaltonetworks.com",
	RegionEU: "https://service-de.api.aisecurity.paloaltonetworks.com",
	RegionIN: "https://service-in.api.aisecurity.paloaltonetworks.com",
}

// ResolveBaseURL maps a region selector to the scan API base URL. For
// [RegionCustom] the custom endpoint is validated and returned without a
// trailing slash.
func ResolveBaseURL(region, customEndpoint string) (string, error) {
	region = strings.ToLower(strings.TrimSpace(region))

	if region == RegionCustom {
		endpoint := strings.TrimRight(strings.TrimSpace(customEndpoint), "/")
		if endpoint == "" {
			return "", ErrMissingCustomEndpoint
		}
		u, err := url.Parse(endpoint)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return "", fmt.Errorf("%w: %q", ErrInvalidCustomEndpoint, customEndpoint)
		}
		return endpoint, nil
	}

	baseURL, ok := regionBaseURLs[region]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return baseURL, nil
}
