package webdav

import (
	"bytes"
	"io"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

// retryCondition retries idempotent requests on network errors and on temporary HTTP errors.
// MOVE is never retried.
func retryCondition() resty.RetryConditionFunc {
	return func(response *resty.Response, err error) bool {
		if response == nil || response.Request == nil {
			return false
		}

		switch response.Request.Method {
		case http.MethodGet, http.MethodHead, MethodPropfind:
		default:
			return false
		}

		// On network errors - except hostname not found
		if err != nil {
			var dnsErr *net.DNSError
			return !errors.As(err, &dnsErr) || dnsErr.IsTemporary
		}

		switch response.StatusCode() {
		case
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			releaseBody(response)
			return true
		default:
			return false
		}
	}
}

// releaseBody buffers the unparsed body, so the connection is released before the retry,
// and the body is still readable if the retry count is exhausted.
func releaseBody(response *resty.Response) {
	raw := response.RawResponse
	if raw == nil || raw.Body == nil {
		return
	}
	data, _ := io.ReadAll(raw.Body)
	_ = raw.Body.Close()
	raw.Body = io.NopCloser(bytes.NewReader(data))
}
