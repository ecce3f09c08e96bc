package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the outbound transport for upstream APIs.
// Headers are applied as given on top of the client's defaults; a nil map sends only the defaults.
// A non-2xx status is not an error at this level; callers inspect StatusCode.
type HTTPClient interface {
	// Get may be retried by the implementation on 5xx or transport failures.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// Post is attempted exactly once.
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (Response, error)
}

// Response is the part of an HTTP response the core reads
type Response interface {
	StatusCode() int

	// Body must be closed by the caller.
	Body() io.ReadCloser

	// Header looks up a header case-insensitively, "" when absent.
	Header(key string) string
}
