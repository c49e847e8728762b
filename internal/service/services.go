package service

import (
	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/retry"
	"github.com/MKhiriev/go-airs-adapter/internal/utils"
	"github.com/MKhiriev/go-airs-adapter/internal/validators"
	"github.com/MKhiriev/go-airs-adapter/models"
)

type Services struct {
	AppInfoService AppInfoService
	ScanService    ScanService
}

// NewServices wires the scan engine on top of api using the loaded config.
func NewServices(api adapter.ScanAPI, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		ScanService:    NewScanService(api, retry.NewExecutor(retry.DefaultPolicy(), retry.NewTransportClassifier(), logger), cfg, logger),
	}, nil
}

// NewScanService assembles the dispatcher and its components around api and
// executor.
func NewScanService(api adapter.ScanAPI, executor *retry.Executor, cfg config.StructuredConfig, logger *logger.Logger) ScanService {
	scanners := map[models.ScanMode]Scanner{
		models.ScanModeSync:  NewSyncScanner(api, executor, logger),
		models.ScanModeAsync: NewAsyncScanner(api, executor, logger),
	}

	return NewDispatcher(DispatcherDeps{
		Validator: validators.NewItemValidator(),
		Builder:   NewRequestBuilder(cfg.Scan, utils.NewUUIDGenerator()),
		Defaults:  NewOptionDefaults(cfg.Adapter, cfg.Scan),
		Scanners:  scanners,
		Batch:     NewBatchCoordinator(scanners, BatchGroupSize, logger),
		Masking:   NewMaskingService(scanners, logger),
		Results:   NewResultService(api, executor, logger),
	}, logger)
}
