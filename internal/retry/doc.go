// Package retry runs outbound scan API calls with bounded retries and
// exponential backoff.
//
// Failures are classified once by a [Classifier]: 4xx responses from the
// scan API are returned immediately, everything else is retried until the
// per-call retry budget is spent. Delays grow as base*2^attempt and are
// capped, using github.com/sethvargo/go-retry for the schedule and the
// sleep loop.
package retry
