// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// JobStatus is the lifecycle state of an async scan job.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// AsyncJobHandle is returned by the async submission endpoint and by the
// results endpoint while the job is still running.
type AsyncJobHandle struct {
	ScanID   string    `json:"scan_id"`
	ReportID string    `json:"report_id"`
	Status   JobStatus `json:"status"`
	Error    string    `json:"error,omitempty"`
}

// ScanResult is what the results endpoint returns: either a completed
// verdict or the handle of a job that has not finished yet. Exactly one of
// Verdict and Job is non-nil.
type ScanResult struct {
	Verdict *ScanVerdict
	Job     *AsyncJobHandle
}

// Completed reports whether the result carries a final verdict.
func (r ScanResult) Completed() bool {
	return r.Verdict != nil
}

// resultProbe holds the fields used to tell a verdict from a job handle.
type resultProbe struct {
	Status JobStatus `json:"status"`
	Action *string   `json:"action"`
}

// DecodeScanResult decodes a results endpoint body. The payload is a verdict
// when its status is completed or when it already has an action; otherwise
// it is a job handle.
func DecodeScanResult(body []byte) (ScanResult, error) {
	var probe resultProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		return ScanResult{}, fmt.Errorf("decode scan result: %w", err)
	}

	if probe.Status == JobStatusCompleted || probe.Action != nil {
		var verdict ScanVerdict
		if err := json.Unmarshal(body, &verdict); err != nil {
			return ScanResult{}, fmt.Errorf("decode scan verdict: %w", err)
		}
		return ScanResult{Verdict: &verdict}, nil
	}

	var job AsyncJobHandle
	if err := json.Unmarshal(body, &job); err != nil {
		return ScanResult{}, fmt.Errorf("decode scan job: %w", err)
	}
	return ScanResult{Job: &job}, nil
}
