// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line scan runner.
//
// It reads a JSON list of items, runs them through the scan service in input
// order and writes the resulting records as JSON, so the adapter can be used
// from shell pipelines and workflow "execute command" steps without the HTTP
// server.
package client
