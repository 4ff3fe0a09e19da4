package dependencies

import (
	"context"

	"github.com/keboola/remote-files/internal/pkg/remote/webdav"
)

// Remote contains dependencies for operations on the remote server.
type Remote interface {
	Base
	WebDAVClient() *webdav.Client
}

// remote dependencies container implements Remote interface.
type remote struct {
	Base
	webdavClient *webdav.Client
}

// NewRemoteDeps creates the WebDAV client and loads the server version.
// If the version cannot be loaded, a warning is logged and the strictest naming policy is used.
func NewRemoteDeps(ctx context.Context, d Base, opts ...webdav.Option) (Remote, error) {
	client, err := webdav.New(d, d.Config(), opts...)
	if err != nil {
		return nil, err
	}

	if client.ServerVersion() == nil {
		if v, err := client.FetchServerVersion(ctx); err != nil {
			d.Logger().Warnf(ctx, `Cannot determine the server version: %s`, err)
		} else {
			d.Logger().Debugf(ctx, `Server version "%s".`, v)
		}
	}

	return &remote{Base: d, webdavClient: client}, nil
}

func (v *remote) WebDAVClient() *webdav.Client {
	return v.webdavClient
}
