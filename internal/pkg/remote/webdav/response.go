package webdav

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Response of a WebDAV request, the body must be closed by Client.Exhaust.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       io.ReadCloser
}

// body cancels the request context when closed.
type body struct {
	io.ReadCloser
	cancel context.CancelFunc
	once   sync.Once
}

func newResponse(res *resty.Response, cancel context.CancelFunc) *Response {
	raw := res.RawBody()
	if raw == nil {
		raw = http.NoBody
	}
	return &Response{
		StatusCode: res.StatusCode(),
		Status:     res.Status(),
		Header:     res.Header(),
		Body:       &body{ReadCloser: raw, cancel: cancel},
	}
}

// Exhaust reads the rest of the response body and closes it, so the connection can be reused.
// Nil response is ignored.
func (c *Client) Exhaust(res *Response) {
	if res == nil || res.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}

func (b *body) Close() error {
	var err error
	b.once.Do(func() {
		err = b.ReadCloser.Close()
		b.cancel()
	})
	return err
}
