// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Verdict actions returned by the remote service.
const (
	ActionAllow = "allow"
	ActionBlock = "block"
)

// Detection holds the per-side detection flags reported by the remote service.
// Only the flags the remote profile has enabled are present.
type Detection struct {
	DLP            bool `json:"dlp,omitempty"`
	Injection      bool `json:"injection,omitempty"`
	URLCats        bool `json:"url_cats,omitempty"`
	ToxicContent   bool `json:"toxic_content,omitempty"`
	MaliciousCode  bool `json:"malicious_code,omitempty"`
	Agent          bool `json:"agent,omitempty"`
	DBSecurity     bool `json:"db_security,omitempty"`
	TopicViolation bool `json:"topic_violation,omitempty"`
	Ungrounded     bool `json:"ungrounded,omitempty"`
}

// PatternDetection locates a single sensitive pattern inside masked content.
type PatternDetection struct {
	Pattern   string  `json:"pattern"`
	Locations [][]int `json:"locations,omitempty"`
}

// MaskedData is content with sensitive data replaced by the remote service.
//
// The remote service sends either a bare string or an object with the masked
// text and the detected patterns; both decode into this type.
type MaskedData struct {
	Data              string             `json:"data"`
	PatternDetections []PatternDetection `json:"pattern_detections,omitempty"`
}

// UnmarshalJSON implements [json.Unmarshaler].
func (m *MaskedData) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &m.Data)
	}

	type plain MaskedData
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*m = MaskedData(p)
	return nil
}

// VerdictMetadata is the metadata block of a verdict.
type VerdictMetadata struct {
	ScanTime string `json:"scan_time,omitempty"`
	AIModel  string `json:"ai_model,omitempty"`
	Profile  string `json:"profile,omitempty"`
}

// ScanVerdict is the result of a completed scan as produced by the remote
// service. It is treated as immutable once decoded.
type ScanVerdict struct {
	Action      string   `json:"action"`
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	ScanID      string   `json:"scan_id"`
	ReportID    string   `json:"report_id,omitempty"`
	TrID        string   `json:"tr_id,omitempty"`
	ProfileID   string   `json:"profile_id,omitempty"`
	ProfileName string   `json:"profile_name,omitempty"`
	Blocked     bool     `json:"blocked"`
	Violations  []string `json:"violations"`

	PromptDetected   *Detection `json:"prompt_detected,omitempty"`
	ResponseDetected *Detection `json:"response_detected,omitempty"`

	// DLP is the top-level DLP flag some profiles report in addition to
	// the per-side detections.
	DLP *bool `json:"dlp,omitempty"`

	PromptMaskedData   *MaskedData `json:"prompt_masked_data,omitempty"`
	ResponseMaskedData *MaskedData `json:"response_masked_data,omitempty"`

	Metadata VerdictMetadata `json:"metadata"`
}

// DLPDetected reports whether DLP fired on either side or at the top level.
func (v ScanVerdict) DLPDetected() bool {
	if v.DLP != nil && *v.DLP {
		return true
	}
	if v.PromptDetected != nil && v.PromptDetected.DLP {
		return true
	}
	return v.ResponseDetected != nil && v.ResponseDetected.DLP
}

// MaskedContent returns the masked text the verdict carries, preferring the
// prompt side, and whether one was present.
func (v ScanVerdict) MaskedContent() (string, bool) {
	if v.PromptMaskedData != nil {
		return v.PromptMaskedData.Data, true
	}
	if v.ResponseMaskedData != nil {
		return v.ResponseMaskedData.Data, true
	}
	return "", false
}
