package retry

import "github.com/MKhiriev/go-airs-adapter/internal/adapter"

// Classification tells the [Executor] whether a failed call may be retried.
type Classification int

const (
	// NonRetryable failures are returned to the caller after one attempt.
	NonRetryable Classification = iota

	// Retryable failures are attempted again while retries remain.
	Retryable
)

func (c Classification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// Classifier maps a call error to a [Classification].
type Classifier interface {
	Classify(err error) Classification
}

// TransportClassifier classifies errors produced by the scan API adapter.
//
// A [adapter.TransportError] of client kind (any 4xx, 429 included) is
// NonRetryable. Server and network failures are Retryable, and so is any
// error that did not come from the transport layer, such as a body that
// failed to decode.
type TransportClassifier struct{}

// NewTransportClassifier returns a ready to use [TransportClassifier].
func NewTransportClassifier() TransportClassifier {
	return TransportClassifier{}
}

// Classify implements [Classifier].
func (TransportClassifier) Classify(err error) Classification {
	if adapter.IsRetriable(err) {
		return Retryable
	}
	return NonRetryable
}
