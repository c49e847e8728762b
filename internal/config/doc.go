// Package config provides configuration loading, merging, and validation
// facilities for the scan adapter.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. [ResolveBaseURL] maps the
// region selector to the scan API endpoint.
package config
