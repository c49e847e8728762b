package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/workers"
	"github.com/MKhiriev/go-airs-adapter/models"
)

// BatchGroupSize is the number of scans the remote API accepts at once.
const BatchGroupSize = workers.DefaultGroupSize

type batchCoordinator struct {
	scanners  map[models.ScanMode]Scanner
	groupSize int

	logger *logger.Logger
}

// NewBatchCoordinator returns a [BatchCoordinator] that runs requests in
// groups of groupSize (BatchGroupSize when not positive) using the scanner
// registered for the batch mode.
func NewBatchCoordinator(scanners map[models.ScanMode]Scanner, groupSize int, logger *logger.Logger) BatchCoordinator {
	if groupSize <= 0 {
		groupSize = BatchGroupSize
	}
	return &batchCoordinator{scanners: scanners, groupSize: groupSize, logger: logger}
}

func (b *batchCoordinator) ScanBatch(ctx context.Context, reqs []models.ScanRequest, mode models.ScanMode, opts models.ScanOptions) ([]models.ScanVerdict, error) {
	scanner, err := scannerFor(b.scanners, mode)
	if err != nil {
		return nil, err
	}

	b.logger.Debug().
		Int("requests", len(reqs)).
		Int("groups", len(workers.Groups(len(reqs), b.groupSize))).
		Str("mode", string(mode)).
		Msg("batch scan")

	verdicts, err := workers.RunGroups(ctx, len(reqs), b.groupSize, func(ctx context.Context, i int) (models.ScanVerdict, error) {
		v, err := scanner.Scan(ctx, reqs[i], opts)
		if err != nil {
			return models.ScanVerdict{}, fmt.Errorf("batch item %d: %w", i, err)
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return verdicts, nil
}

// scannerFor picks the scanner of mode. An empty mode means sync.
func scannerFor(scanners map[models.ScanMode]Scanner, mode models.ScanMode) (Scanner, error) {
	if mode == "" {
		mode = models.ScanModeSync
	}
	s, ok := scanners[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoScanner, mode)
	}
	return s, nil
}
