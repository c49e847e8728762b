package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// mapHTTPError turns a non-2xx response into a [*TransportError]. It returns
// nil for 2xx responses.
func mapHTTPError(op string, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	te := &TransportError{
		Op:         op,
		StatusCode: status,
		Body:       truncateBody(strings.TrimSpace(string(resp.Body()))),
	}

	switch {
	case status == http.StatusBadRequest:
		te.Kind, te.Err = KindClient, ErrBadRequest
	case status == http.StatusUnauthorized:
		te.Kind, te.Err = KindClient, ErrUnauthorized
	case status == http.StatusForbidden:
		te.Kind, te.Err = KindClient, ErrForbidden
	case status == http.StatusNotFound:
		te.Kind, te.Err = KindClient, ErrNotFound
	case status >= 400 && status < 500:
		te.Kind, te.Err = KindClient, ErrClient
	default:
		te.Kind, te.Err = KindServer, ErrServer
	}

	return te
}

// mapRequestError wraps a failure that produced no response.
func mapRequestError(op string, err error) error {
	return &TransportError{
		Op:   op,
		Kind: KindNetwork,
		Err:  fmt.Errorf("%w: %w", ErrNetwork, err),
	}
}

func truncateBody(body string) string {
	if len(body) <= maxErrorBody {
		return body
	}
	return body[:maxErrorBody] + "..."
}
