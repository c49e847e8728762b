package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-airs-adapter/models"
)

// Field name constants used to restrict Validate to a subset of checks.
const (
	// FieldOperation checks that the item names a known operation.
	FieldOperation = "operation"

	// FieldMode checks that the scan mode is empty (sync) or known.
	FieldMode = "mode"

	// FieldContent checks that the content fields required by the
	// operation are present.
	FieldContent = "content"

	// FieldBatchItems checks that a batch has entries and that each entry
	// is valid.
	FieldBatchItems = "batch_items"

	// FieldScanID checks that a result lookup names a scan.
	FieldScanID = "scan_id"

	// FieldItemType checks the item type of a batch entry.
	FieldItemType = "item_type"
)

// ItemValidator runs the local checks that must pass before any request for
// an item is built or sent.
type ItemValidator struct{}

// NewItemValidator returns a [Validator] for [models.Item] and
// [models.BatchItem] values.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.BatchItem:
		return v.validateBatchItem(ctx, value, fields...)
	case *models.BatchItem:
		return v.validateBatchItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(ctx context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperation, FieldMode, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			if !item.Operation.IsValid() {
				return fmt.Errorf("%w: %q", ErrUnknownOperation, item.Operation)
			}
		case FieldMode:
			if item.Mode != "" && !item.Mode.IsValid() {
				return fmt.Errorf("%w: %q", ErrUnknownMode, item.Mode)
			}
		case FieldContent:
			if err := v.validateItemContent(ctx, item); err != nil {
				return err
			}
		case FieldBatchItems:
			if err := v.validateBatchItems(ctx, item.BatchItems); err != nil {
				return err
			}
		case FieldScanID:
			if item.ScanID == "" {
				return ErrEmptyScanID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItemContent checks the fields the item's operation reads.
func (v *ItemValidator) validateItemContent(ctx context.Context, item models.Item) error {
	switch item.Operation {
	case models.OperationPromptScan:
		if item.Prompt == "" {
			return fmt.Errorf("%w: prompt", ErrEmptyContent)
		}
	case models.OperationResponseScan:
		if item.Response == "" {
			return fmt.Errorf("%w: response", ErrEmptyContent)
		}
	case models.OperationDualScan:
		if item.Prompt == "" || item.Response == "" {
			return fmt.Errorf("%w: prompt and response", ErrEmptyContent)
		}
	case models.OperationMaskData:
		if item.Content == "" {
			return fmt.Errorf("%w: content", ErrEmptyContent)
		}
	case models.OperationBatchScan:
		return v.validateBatchItems(ctx, item.BatchItems)
	case models.OperationGetScanResult:
		if item.ScanID == "" {
			return ErrEmptyScanID
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, item.Operation)
	}

	return nil
}

func (v *ItemValidator) validateBatchItems(ctx context.Context, items []models.BatchItem) error {
	if len(items) == 0 {
		return ErrNoBatchItems
	}
	for i, bi := range items {
		if err := v.validateBatchItem(ctx, bi); err != nil {
			return fmt.Errorf("batch item %d: %w", i, err)
		}
	}
	return nil
}

func (v *ItemValidator) validateBatchItem(ctx context.Context, item models.BatchItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemType, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldItemType:
			if !item.ItemType.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidItemType, item.ItemType)
			}
		case FieldContent:
			switch item.ItemType {
			case models.ItemTypePrompt:
				if item.Prompt == "" {
					return fmt.Errorf("%w: prompt", ErrEmptyContent)
				}
			case models.ItemTypeResponse:
				if item.Response == "" {
					return fmt.Errorf("%w: response", ErrEmptyContent)
				}
			case models.ItemTypeBoth:
				if item.Prompt == "" || item.Response == "" {
					return fmt.Errorf("%w: prompt and response", ErrEmptyContent)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
