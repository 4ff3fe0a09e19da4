// Package existence checks if a file or folder exists on the storage server.
package existence

import (
	"context"
	"net/http"

	"github.com/keboola/remote-files/internal/pkg/remote/result"
	"github.com/keboola/remote-files/internal/pkg/remote/webdav"
)

type Client interface {
	WebDAVURL(remotePath string) string
	Propfind(ctx context.Context, url string, depth string, opts ...webdav.RequestOption) (*webdav.Response, error)
	Exhaust(res *webdav.Response)
}

type Operation struct {
	remotePath      string
	successIfAbsent bool
	requestOpts     []webdav.RequestOption
}

// New creates the check, it succeeds if the path exists.
// If successIfAbsent is set, it succeeds if the path doesn't exist.
func New(remotePath string, successIfAbsent bool, opts ...webdav.RequestOption) *Operation {
	return &Operation{remotePath: remotePath, successIfAbsent: successIfAbsent, requestOpts: opts}
}

func (o *Operation) RemotePath() string {
	return o.remotePath
}

// Execute sends PROPFIND with "Depth: 0", the response is always exhausted.
func (o *Operation) Execute(ctx context.Context, c Client) result.Outcome {
	res, err := c.Propfind(ctx, c.WebDAVURL(o.remotePath), webdav.DepthZero, o.requestOpts...)
	if err != nil {
		return result.TransportFailure(err)
	}
	defer c.Exhaust(res)

	exists := res.StatusCode == http.StatusMultiStatus || res.StatusCode == http.StatusOK
	absent := res.StatusCode == http.StatusNotFound
	if (exists && !o.successIfAbsent) || (absent && o.successIfAbsent) {
		return result.Success(res.StatusCode, res.Status)
	}

	var serverMessage string
	if !absent {
		serverMessage = webdav.ReadServerMessage(res)
	}
	return result.ProtocolFailure(res.StatusCode, res.Status, serverMessage)
}
