// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the local checks run on host input before any
// scan request is sent.
//
// Validator implementations accept optional field names to restrict which
// checks run. Content size limits per scan mode are enforced separately by
// [CheckContentSize] once the wire request has been built.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
