// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/validators"
	"github.com/MKhiriev/go-airs-adapter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResults struct {
	result models.ScanResult
	err    error
	got    string
}

func (s *stubResults) GetScanResult(_ context.Context, scanID string, _ models.ScanOptions) (models.ScanResult, error) {
	s.got = scanID
	return s.result, s.err
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type dispatcherFixture struct {
	sync    *stubScanner
	async   *stubScanner
	results *stubResults
	d       *Dispatcher
}

func newDispatcherFixture() *dispatcherFixture {
	f := &dispatcherFixture{
		sync:    &stubScanner{},
		async:   &stubScanner{},
		results: &stubResults{},
	}
	scanners := map[models.ScanMode]Scanner{
		models.ScanModeSync:  f.sync,
		models.ScanModeAsync: f.async,
	}

	f.d = NewDispatcher(DispatcherDeps{
		Validator: validators.NewItemValidator(),
		Builder:   NewRequestBuilder(config.Scan{AppName: "app"}, fixedIDs("gen")),
		Defaults:  OptionDefaults{Profile: "default", Timeout: models.Duration(time.Second), MaxRetries: 1},
		Scanners:  scanners,
		Batch:     NewBatchCoordinator(scanners, BatchGroupSize, logger.Nop()),
		Masking:   NewMaskingService(scanners, logger.Nop()),
		Results:   f.results,
	}, logger.Nop())
	f.d.now = func() time.Time { return fixedNow }

	return f
}

func TestDispatcher_PromptScan(t *testing.T) {
	f := newDispatcherFixture()
	f.sync.scan = func(_ context.Context, req models.ScanRequest) (models.ScanVerdict, error) {
		return models.ScanVerdict{
			Action:     models.ActionAllow,
			Category:   "benign",
			Confidence: 0.99,
			ScanID:     "x",
			Metadata:   models.VerdictMetadata{Profile: "default"},
		}, nil
	}

	recs, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationPromptScan, Prompt: "test"})

	require.NoError(t, err)
	require.Len(t, recs, 1)
	rec := recs[0].Scan
	require.NotNil(t, rec)
	assert.Equal(t, models.OperationPromptScan, rec.Operation)
	assert.Equal(t, models.ScanModeSync, rec.Mode)
	assert.Equal(t, "gen", rec.TransactionID)
	assert.Equal(t, models.ActionAllow, rec.Action)
	assert.Equal(t, 0.99, rec.Confidence)
	assert.False(t, rec.Blocked)
	assert.Equal(t, []string{}, rec.Violations)
	assert.Equal(t, fixedNow, rec.Timestamp)
	assert.Nil(t, rec.BatchIndex)

	require.Len(t, f.sync.Calls(), 1)
	assert.Equal(t, models.AIProfile{ProfileName: "default"}, f.sync.Calls()[0].AIProfile)
	assert.Equal(t, "app", f.sync.Calls()[0].Metadata.ApplicationName)
}

func TestDispatcher_AsyncModeUsesAsyncScanner(t *testing.T) {
	f := newDispatcherFixture()

	recs, err := f.d.Dispatch(context.Background(), 0, models.Item{
		Operation: models.OperationDualScan,
		Mode:      models.ScanModeAsync,
		Prompt:    "p",
		Response:  "r",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ScanModeAsync, recs[0].Scan.Mode)
	assert.Len(t, f.async.Calls(), 1)
	assert.Empty(t, f.sync.Calls())
}

func TestDispatcher_BatchScan(t *testing.T) {
	f := newDispatcherFixture()
	items := make([]models.BatchItem, 7)
	for i := range items {
		items[i] = models.BatchItem{ItemType: models.ItemTypePrompt, Prompt: "p"}
	}

	recs, err := f.d.Dispatch(context.Background(), 0, models.Item{
		Operation:     models.OperationBatchScan,
		TransactionID: "batch",
		BatchItems:    items,
	})

	require.NoError(t, err)
	require.Len(t, recs, 7)
	for i, r := range recs {
		require.NotNil(t, r.Scan)
		require.NotNil(t, r.Scan.BatchIndex)
		assert.Equal(t, i, *r.Scan.BatchIndex)
		assert.Equal(t, fmt.Sprintf("batch-%d", i), r.Scan.TransactionID)
		assert.Equal(t, fmt.Sprintf("scan-batch-%d", i), r.Scan.ScanID)
		assert.Equal(t, models.OperationBatchScan, r.Scan.Operation)
	}
}

func TestDispatcher_MaskData(t *testing.T) {
	f := newDispatcherFixture()
	dlp := true
	f.sync.scan = func(_ context.Context, req models.ScanRequest) (models.ScanVerdict, error) {
		assert.Equal(t, "secret 123", req.Contents[0].Response)
		assert.Empty(t, req.Contents[0].Prompt)
		return models.ScanVerdict{
			Action:             models.ActionBlock,
			DLP:                &dlp,
			ResponseMaskedData: &models.MaskedData{Data: "secret XXX"},
		}, nil
	}

	recs, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationMaskData, Content: "secret 123"})

	require.NoError(t, err)
	rec := recs[0].Scan
	assert.Equal(t, "secret 123", *rec.OriginalContent)
	assert.Equal(t, "secret XXX", *rec.MaskedContent)
	assert.True(t, *rec.MaskApplied)
	assert.True(t, *rec.DLPDetected)
}

func TestDispatcher_GetScanResult(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		f := newDispatcherFixture()
		f.results.result = models.ScanResult{Job: &models.AsyncJobHandle{ScanID: "s-1", ReportID: "r-1", Status: models.JobStatusProcessing}}

		recs, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationGetScanResult, ScanID: "s-1"})

		require.NoError(t, err)
		assert.Equal(t, "s-1", f.results.got)
		assert.Equal(t, models.JobStatusProcessing, recs[0].Scan.Status)
		assert.Equal(t, "r-1", recs[0].Scan.ReportID)
		assert.Empty(t, recs[0].Scan.Action)
		assert.Equal(t, "gen", recs[0].Scan.TransactionID)
	})

	t.Run("keeps host transaction id", func(t *testing.T) {
		f := newDispatcherFixture()
		f.results.result = models.ScanResult{Job: &models.AsyncJobHandle{ScanID: "s-1", Status: models.JobStatusQueued}}

		recs, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationGetScanResult, ScanID: "s-1", TransactionID: "host-tr"})

		require.NoError(t, err)
		assert.Equal(t, "host-tr", recs[0].Scan.TransactionID)
	})

	t.Run("completed", func(t *testing.T) {
		f := newDispatcherFixture()
		f.results.result = models.ScanResult{Verdict: &models.ScanVerdict{Action: models.ActionBlock, Blocked: true}}

		recs, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationGetScanResult, ScanID: "s-2"})

		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, recs[0].Scan.Status)
		assert.Equal(t, "s-2", recs[0].Scan.ScanID)
		assert.True(t, recs[0].Scan.Blocked)
	})

	t.Run("failed", func(t *testing.T) {
		f := newDispatcherFixture()
		f.results.result = models.ScanResult{Job: &models.AsyncJobHandle{ScanID: "s-3", Status: models.JobStatusFailed, Error: "boom"}}

		_, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationGetScanResult, ScanID: "s-3"})

		assert.ErrorIs(t, err, ErrScanFailed)
		assert.EqualError(t, err, "scan failed: scan s-3: boom")
	})

	t.Run("failed without remote error", func(t *testing.T) {
		f := newDispatcherFixture()
		f.results.result = models.ScanResult{Job: &models.AsyncJobHandle{ScanID: "s-4", Status: models.JobStatusFailed}}

		_, err := f.d.Dispatch(context.Background(), 0, models.Item{Operation: models.OperationGetScanResult, ScanID: "s-4"})

		assert.ErrorIs(t, err, ErrScanFailed)
		assert.EqualError(t, err, "scan failed: scan s-4")
	})
}

func TestDispatcher_LocalErrorsMakeNoCall(t *testing.T) {
	tests := []struct {
		name    string
		item    models.Item
		wantErr error
	}{
		{name: "unknown operation", item: models.Item{Operation: "summarize", Prompt: "p"}, wantErr: validators.ErrUnknownOperation},
		{name: "missing batch items", item: models.Item{Operation: models.OperationBatchScan}, wantErr: validators.ErrNoBatchItems},
		{name: "too large", item: models.Item{Operation: models.OperationPromptScan, Prompt: string(make([]byte, validators.MaxSyncContentSize+1))}, wantErr: validators.ErrContentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatcherFixture()

			_, err := f.d.Dispatch(context.Background(), 0, tt.item)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.sync.Calls())
			assert.Empty(t, f.async.Calls())
		})
	}
}

func failingSecond(f *dispatcherFixture) []models.Item {
	f.sync.scan = func(_ context.Context, req models.ScanRequest) (models.ScanVerdict, error) {
		if req.Contents[0].Prompt == "bad" {
			return models.ScanVerdict{}, errors.New("remote exploded")
		}
		return models.ScanVerdict{Action: models.ActionAllow}, nil
	}
	return []models.Item{
		{Operation: models.OperationPromptScan, Prompt: "good"},
		{Operation: models.OperationPromptScan, Prompt: "bad"},
		{Operation: models.OperationPromptScan, Prompt: "good again"},
	}
}

func TestDispatcher_Run_ContinueOnFail(t *testing.T) {
	f := newDispatcherFixture()
	items := failingSecond(f)

	recs, err := f.d.Run(context.Background(), items, true)

	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.NotNil(t, recs[0].Scan)
	require.NotNil(t, recs[1].Error)
	assert.Equal(t, "remote exploded", recs[1].Error.Error)
	assert.Equal(t, 1, recs[1].Error.ItemIndex)
	assert.Equal(t, models.OperationPromptScan, recs[1].Error.Operation)
	assert.Equal(t, fixedNow, recs[1].Error.Timestamp)
	assert.NotNil(t, recs[2].Scan)

	body, err := json.Marshal(recs[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"remote exploded","operation":"promptScan","item_index":1,"timestamp":"2026-03-01T12:00:00Z"}`, string(body))
}

func TestDispatcher_Run_StopsOnFailure(t *testing.T) {
	f := newDispatcherFixture()
	items := failingSecond(f)

	recs, err := f.d.Run(context.Background(), items, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.Len(t, recs, 1)
	assert.Len(t, f.sync.Calls(), 2)
}
