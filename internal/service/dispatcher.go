// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/validators"
	"github.com/MKhiriev/go-airs-adapter/models"
)

// Dispatcher is the [ScanService] implementation. It validates an item,
// resolves its options, builds the requests, hands them to the component
// of its operation and turns the outcome into output records.
type Dispatcher struct {
	validator validators.Validator
	builder   *RequestBuilder
	defaults  OptionDefaults

	scanners map[models.ScanMode]Scanner
	batch    BatchCoordinator
	masking  MaskingService
	results  ResultService

	now func() time.Time

	logger *logger.Logger
}

// DispatcherDeps are the collaborators of a [Dispatcher].
type DispatcherDeps struct {
	Validator validators.Validator
	Builder   *RequestBuilder
	Defaults  OptionDefaults

	Scanners map[models.ScanMode]Scanner
	Batch    BatchCoordinator
	Masking  MaskingService
	Results  ResultService
}

func NewDispatcher(deps DispatcherDeps, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		validator: deps.Validator,
		builder:   deps.Builder,
		defaults:  deps.Defaults,
		scanners:  deps.Scanners,
		batch:     deps.Batch,
		masking:   deps.Masking,
		results:   deps.Results,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (d *Dispatcher) Run(ctx context.Context, items []models.Item, continueOnFail bool) ([]models.Record, error) {
	records := make([]models.Record, 0, len(items))

	for i, item := range items {
		recs, err := d.Dispatch(ctx, i, item)
		if err == nil {
			records = append(records, recs...)
			continue
		}

		if !continueOnFail {
			return records, fmt.Errorf("item %d: %w", i, err)
		}

		d.logger.Warn().Err(err).Int("item_index", i).Str("operation", string(item.Operation)).Msg("item failed, continuing")
		records = append(records, models.Record{Error: &models.ErrorRecord{
			Error:     err.Error(),
			Operation: item.Operation,
			ItemIndex: i,
			Timestamp: d.now(),
		}})
	}

	return records, nil
}

func (d *Dispatcher) Dispatch(ctx context.Context, index int, item models.Item) ([]models.Record, error) {
	if err := d.validator.Validate(ctx, item); err != nil {
		return nil, err
	}

	opts := d.defaults.ResolveOptions(item.Options)
	mode := item.Mode
	if mode == "" {
		mode = models.ScanModeSync
	}

	d.logger.Debug().
		Int("item_index", index).
		Str("operation", string(item.Operation)).
		Str("mode", string(mode)).
		Msg("dispatching item")

	switch item.Operation {
	case models.OperationPromptScan, models.OperationResponseScan, models.OperationDualScan:
		return d.dispatchScan(ctx, item, mode, opts)
	case models.OperationBatchScan:
		return d.dispatchBatch(ctx, item, mode, opts)
	case models.OperationMaskData:
		return d.dispatchMask(ctx, item, mode, opts)
	case models.OperationGetScanResult:
		return d.dispatchResult(ctx, item, opts)
	default:
		return nil, fmt.Errorf("%w: %q", validators.ErrUnknownOperation, item.Operation)
	}
}

func (d *Dispatcher) dispatchScan(ctx context.Context, item models.Item, mode models.ScanMode, opts models.ScanOptions) ([]models.Record, error) {
	req, err := d.builder.Build(item, opts)
	if err != nil {
		return nil, err
	}

	scanner, err := scannerFor(d.scanners, mode)
	if err != nil {
		return nil, err
	}

	verdict, err := scanner.Scan(ctx, req, opts)
	if err != nil {
		return nil, err
	}

	rec := d.newRecord(item.Operation, mode, req.TransactionID)
	rec.ApplyVerdict(verdict)
	return []models.Record{{Scan: rec}}, nil
}

func (d *Dispatcher) dispatchBatch(ctx context.Context, item models.Item, mode models.ScanMode, opts models.ScanOptions) ([]models.Record, error) {
	reqs, err := d.builder.BuildBatch(item, opts)
	if err != nil {
		return nil, err
	}

	verdicts, err := d.batch.ScanBatch(ctx, reqs, mode, opts)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, len(verdicts))
	for i, v := range verdicts {
		i := i // per-iteration copy; go.mod targets go1.21 (pre-1.22 loopvar semantics)
		rec := d.newRecord(item.Operation, mode, reqs[i].TransactionID)
		rec.ApplyVerdict(v)
		rec.BatchIndex = &i
		records[i] = models.Record{Scan: rec}
	}

	return records, nil
}

func (d *Dispatcher) dispatchMask(ctx context.Context, item models.Item, mode models.ScanMode, opts models.ScanOptions) ([]models.Record, error) {
	req, err := d.builder.Build(item, opts)
	if err != nil {
		return nil, err
	}

	outcome, err := d.masking.Mask(ctx, req, item.Content, mode, opts)
	if err != nil {
		return nil, err
	}

	rec := d.newRecord(item.Operation, mode, req.TransactionID)
	rec.ApplyVerdict(outcome.Verdict)
	rec.OriginalContent = &item.Content
	rec.MaskedContent = &outcome.MaskedContent
	rec.MaskApplied = &outcome.MaskApplied
	rec.DLPDetected = &outcome.DLPDetected

	return []models.Record{{Scan: rec}}, nil
}

func (d *Dispatcher) dispatchResult(ctx context.Context, item models.Item, opts models.ScanOptions) ([]models.Record, error) {
	result, err := d.results.GetScanResult(ctx, item.ScanID, opts)
	if err != nil {
		return nil, err
	}

	rec := d.newRecord(item.Operation, "", d.builder.transactionID(item))
	switch {
	case result.Completed():
		rec.ApplyVerdict(*result.Verdict)
		rec.Status = models.JobStatusCompleted
	case result.Job != nil:
		rec.ScanID = result.Job.ScanID
		rec.ReportID = result.Job.ReportID
		rec.Status = result.Job.Status
		if result.Job.Status == models.JobStatusFailed {
			return nil, jobFailedError(item.ScanID, result.Job.Error)
		}
	default:
		return nil, fmt.Errorf("scan %s: empty scan result", item.ScanID)
	}
	if rec.ScanID == "" {
		rec.ScanID = item.ScanID
	}

	return []models.Record{{Scan: rec}}, nil
}

func (d *Dispatcher) newRecord(op models.Operation, mode models.ScanMode, trID string) *models.ScanRecord {
	return &models.ScanRecord{
		Operation:     op,
		Mode:          mode,
		TransactionID: trID,
		Violations:    []string{},
		Timestamp:     d.now(),
	}
}
