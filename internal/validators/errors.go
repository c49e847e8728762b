package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-airs-adapter/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownMode      = errors.New("unknown scan mode")
	ErrEmptyContent     = errors.New("content is required")
	ErrNoBatchItems     = errors.New("batch items list cannot be empty")
	ErrInvalidItemType  = errors.New("invalid batch item type")
	ErrEmptyScanID      = errors.New("scan id is required")
	ErrContentTooLarge  = errors.New("content exceeds size limit")
	ErrMissingProfile   = errors.New("security profile is required")
)

// ContentSizeError reports a request whose content is larger than the limit
// of its scan mode. It matches [ErrContentTooLarge] with errors.Is.
type ContentSizeError struct {
	Size  int
	Mode  models.ScanMode
	Limit int
}

func (e *ContentSizeError) Error() string {
	return fmt.Sprintf("content size %d bytes exceeds %s mode limit of %d bytes", e.Size, e.Mode, e.Limit)
}

func (e *ContentSizeError) Is(target error) bool {
	return target == ErrContentTooLarge
}
