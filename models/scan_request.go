// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "unicode/utf8"

// ScanContent is one unit of content submitted for scanning. At least one of
// Prompt or Response is set.
type ScanContent struct {
	Prompt   string `json:"prompt,omitempty"`
	Response string `json:"response,omitempty"`
	Context  string `json:"context,omitempty"`
}

// Size returns the combined UTF-8 byte size of all populated fields.
//
// Go strings are byte sequences, so len already counts UTF-8 bytes for valid
// text. Invalid sequences are counted as the replacement rune they will be
// encoded as on the wire.
func (c ScanContent) Size() int {
	return encodedLen(c.Prompt) + encodedLen(c.Response) + encodedLen(c.Context)
}

// IsEmpty reports whether neither prompt nor response is set.
func (c ScanContent) IsEmpty() bool {
	return c.Prompt == "" && c.Response == ""
}

func encodedLen(s string) int {
	if utf8.ValidString(s) {
		return len(s)
	}

	n := 0
	for _, r := range s {
		n += utf8.RuneLen(r)
	}
	return n
}

// AIProfile is the wire form of a [ProfileRef]. Exactly one field is set.
type AIProfile struct {
	ProfileName string `json:"profile_name,omitempty"`
	ProfileID   string `json:"profile_id,omitempty"`
}

// ScanMetadata describes the calling application for the remote service's
// reporting.
type ScanMetadata struct {
	AppUser         string `json:"app_user,omitempty"`
	AIModel         string `json:"ai_model,omitempty"`
	ApplicationName string `json:"application_name,omitempty"`
}

// ScanRequest is the body sent to both the sync and async scan endpoints.
// It is built once per scan invocation and never modified afterwards.
type ScanRequest struct {
	// TransactionID correlates the request with the caller's own records.
	TransactionID string `json:"tr_id"`

	// AIProfile selects the security profile by name or by id.
	AIProfile AIProfile `json:"ai_profile"`

	// Metadata carries the application metadata.
	Metadata ScanMetadata `json:"metadata"`

	// Contents always holds exactly one element.
	Contents []ScanContent `json:"contents"`
}

// Content returns the single content element of the request, or the zero
// value if the request has none.
func (r ScanRequest) Content() ScanContent {
	if len(r.Contents) == 0 {
		return ScanContent{}
	}
	return r.Contents[0]
}
