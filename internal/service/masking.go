package service

import (
	"context"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/models"
)

type maskingService struct {
	scanners map[models.ScanMode]Scanner

	logger *logger.Logger
}

// NewMaskingService returns a [MaskingService] that scans with the scanner
// registered for the requested mode.
func NewMaskingService(scanners map[models.ScanMode]Scanner, logger *logger.Logger) MaskingService {
	return &maskingService{scanners: scanners, logger: logger}
}

// Mask runs req and derives the masking outcome from the verdict. DLP
// detected without masked data is a valid outcome, not an error.
func (m *maskingService) Mask(ctx context.Context, req models.ScanRequest, original string, mode models.ScanMode, opts models.ScanOptions) (models.MaskingOutcome, error) {
	scanner, err := scannerFor(m.scanners, mode)
	if err != nil {
		return models.MaskingOutcome{}, err
	}

	verdict, err := scanner.Scan(ctx, req, opts)
	if err != nil {
		return models.MaskingOutcome{}, err
	}

	outcome := models.MaskingOutcome{
		Verdict:       verdict,
		DLPDetected:   verdict.DLPDetected(),
		MaskedContent: original,
	}
	if masked, ok := verdict.MaskedContent(); ok {
		outcome.MaskedContent = masked
		outcome.MaskApplied = true
	}

	m.logger.WithTransaction(req.TransactionID).Debug().
		Bool("dlp_detected", outcome.DLPDetected).
		Bool("mask_applied", outcome.MaskApplied).
		Msg("masking finished")

	return outcome, nil
}
