// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/validators"
	"github.com/MKhiriev/go-airs-adapter/models"
)

// IDGenerator produces transaction ids for items that do not bring one.
type IDGenerator interface {
	Generate() string
}

// RequestBuilder turns a validated item into wire scan requests. Content
// size is checked against the item's mode before a request is returned, so
// an oversized request never leaves the builder.
type RequestBuilder struct {
	metadata models.ScanMetadata
	ids      IDGenerator
}

// NewRequestBuilder creates a RequestBuilder whose default application
// metadata comes from the scan config.
func NewRequestBuilder(scanCfg config.Scan, ids IDGenerator) *RequestBuilder {
	return &RequestBuilder{
		metadata: models.ScanMetadata{
			AppUser:         scanCfg.AppUser,
			AIModel:         scanCfg.AIModel,
			ApplicationName: scanCfg.AppName,
		},
		ids: ids,
	}
}

// Build creates the single request of a prompt, response, dual or mask item.
func (b *RequestBuilder) Build(item models.Item, opts models.ScanOptions) (models.ScanRequest, error) {
	var content models.ScanContent

	switch item.Operation {
	case models.OperationPromptScan:
		content = models.ScanContent{Prompt: item.Prompt}
	case models.OperationResponseScan:
		content = models.ScanContent{Response: item.Response}
	case models.OperationDualScan:
		content = models.ScanContent{Prompt: item.Prompt, Response: item.Response, Context: item.Context}
	case models.OperationMaskData:
		// DLP masking is attached to response-side fields
		content = models.ScanContent{Response: item.Content}
	default:
		return models.ScanRequest{}, fmt.Errorf("%w: %q cannot be built as a single request", validators.ErrUnknownOperation, item.Operation)
	}

	req, err := b.newRequest(b.transactionID(item), item, opts, content)
	if err != nil {
		return models.ScanRequest{}, err
	}

	return req, nil
}

// BuildBatch creates one request per batch entry, in entry order. The
// transaction id of entry i is the item's transaction id suffixed with -i.
func (b *RequestBuilder) BuildBatch(item models.Item, opts models.ScanOptions) ([]models.ScanRequest, error) {
	if len(item.BatchItems) == 0 {
		return nil, validators.ErrNoBatchItems
	}

	base := b.transactionID(item)
	reqs := make([]models.ScanRequest, 0, len(item.BatchItems))

	for i, bi := range item.BatchItems {
		content, err := batchContent(bi)
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}

		req, err := b.newRequest(fmt.Sprintf("%s-%d", base, i), item, opts, content)
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}

func (b *RequestBuilder) newRequest(trID string, item models.Item, opts models.ScanOptions, content models.ScanContent) (models.ScanRequest, error) {
	if content.IsEmpty() {
		return models.ScanRequest{}, validators.ErrEmptyContent
	}
	if opts.Profile.IsZero() {
		return models.ScanRequest{}, validators.ErrMissingProfile
	}

	req := models.ScanRequest{
		TransactionID: trID,
		AIProfile:     opts.Profile.AIProfile(),
		Metadata:      b.resolveMetadata(item.Metadata),
		Contents:      []models.ScanContent{content},
	}

	if err := validators.CheckContentSize(req, item.Mode); err != nil {
		return models.ScanRequest{}, err
	}

	return req, nil
}

// resolveMetadata fills the fields the item left empty from the configured
// metadata.
func (b *RequestBuilder) resolveMetadata(meta models.ScanMetadata) models.ScanMetadata {
	// Merge only fails on mismatched types
	_ = mergo.Merge(&meta, b.metadata)
	return meta
}

func (b *RequestBuilder) transactionID(item models.Item) string {
	if item.TransactionID != "" {
		return item.TransactionID
	}
	return b.ids.Generate()
}

func batchContent(bi models.BatchItem) (models.ScanContent, error) {
	switch bi.ItemType {
	case models.ItemTypePrompt:
		return models.ScanContent{Prompt: bi.Prompt}, nil
	case models.ItemTypeResponse:
		return models.ScanContent{Response: bi.Response}, nil
	case models.ItemTypeBoth:
		return models.ScanContent{Prompt: bi.Prompt, Response: bi.Response, Context: bi.Context}, nil
	default:
		return models.ScanContent{}, fmt.Errorf("%w: %q", validators.ErrInvalidItemType, bi.ItemType)
	}
}
