package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/retry"
	"github.com/MKhiriev/go-airs-adapter/models"
)

// stubScanner is a hand-written Scanner; mockgen mocks for service
// interfaces would import this package back.
type stubScanner struct {
	mu    sync.Mutex
	calls []models.ScanRequest
	scan  func(ctx context.Context, req models.ScanRequest) (models.ScanVerdict, error)
}

func (s *stubScanner) Scan(ctx context.Context, req models.ScanRequest, _ models.ScanOptions) (models.ScanVerdict, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()

	if s.scan == nil {
		return models.ScanVerdict{Action: models.ActionAllow, ScanID: "scan-" + req.TransactionID}, nil
	}
	return s.scan(ctx, req)
}

func (s *stubScanner) Calls() []models.ScanRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ScanRequest(nil), s.calls...)
}

// fixedIDs returns the same transaction id every time.
type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func fastExecutor() *retry.Executor {
	return retry.NewExecutor(retry.Policy{BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}, nil, logger.Nop())
}

func testOptions() models.ScanOptions {
	return models.ScanOptions{
		Profile:            models.ProfileByName("default"),
		Timeout:            time.Second,
		MaxRetries:         2,
		PollingInterval:    time.Millisecond,
		MaxPollingDuration: 200 * time.Millisecond,
	}
}

func scanRequest(trID, prompt string) models.ScanRequest {
	return models.ScanRequest{
		TransactionID: trID,
		AIProfile:     models.AIProfile{ProfileName: "default"},
		Contents:      []models.ScanContent{{Prompt: prompt}},
	}
}
