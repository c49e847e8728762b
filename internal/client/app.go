package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/service"
	"github.com/MKhiriev/go-airs-adapter/models"
	"gopkg.in/yaml.v3"
)

// Output is the document written by [App.Run].
type Output struct {
	Records []models.Record `json:"records"`
	Error   string          `json:"error,omitempty"`
}

type App struct {
	scan           service.ScanService
	in             io.Reader
	out            io.Writer
	continueOnFail bool

	logger *logger.Logger
}

func NewApp(scan service.ScanService, in io.Reader, out io.Writer, continueOnFail bool, logger *logger.Logger) (*App, error) {
	if scan == nil {
		return nil, fmt.Errorf("scan service is not set")
	}
	return &App{
		scan:           scan,
		in:             in,
		out:            out,
		continueOnFail: continueOnFail,
		logger:         logger,
	}, nil
}

// Run reads the items, processes them and writes the records. The output is
// written even when the run aborts; the returned error then reports why.
func (a *App) Run(ctx context.Context) error {
	items, err := readItems(a.in)
	if err != nil {
		return err
	}
	a.logger.Info().Int("items", len(items)).Bool("continue_on_fail", a.continueOnFail).Msg("scan run started")

	records, runErr := a.scan.Run(ctx, items, a.continueOnFail)

	doc := Output{Records: records}
	if doc.Records == nil {
		doc.Records = []models.Record{}
	}
	if runErr != nil {
		doc.Error = runErr.Error()
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	if runErr != nil {
		a.logger.Err(runErr).Int("records", len(records)).Msg("scan run aborted")
		return runErr
	}
	a.logger.Info().Int("records", len(records)).Msg("scan run finished")
	return nil
}

// readItems accepts either a bare array of items or an object with an
// "items" array, the shape POST /api/scan takes. Input that is not JSON is
// read as YAML with the same field names.
func readItems(r io.Reader) ([]models.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] != '[' && data[0] != '{' {
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	}

	var items []models.Item
	switch {
	case len(data) > 0 && data[0] == '[':
		err = json.Unmarshal(data, &items)
	case len(data) > 0 && data[0] == '{':
		var doc struct {
			Items []models.Item `json:"items"`
		}
		err = json.Unmarshal(data, &doc)
		items = doc.Items
	default:
		return nil, ErrInvalidInput
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return items, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	switch doc.(type) {
	case []any, map[string]any:
	default:
		return nil, ErrInvalidInput
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return out, nil
}

// OpenInput opens path for reading, or returns stdin for "" and "-".
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
