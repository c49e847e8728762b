// Package http implements the HTTP surface through which workflow hosts run
// scans.
//
// It exposes POST /api/scan, which takes a list of items and returns one
// output record per item (or per batch entry), and GET /api/version. Request
// tracing, access logging, response compression and optional bearer-token
// authentication are handled here before requests reach the scan service.
package http
