package webdav

import (
	"context"

	"github.com/keboola/remote-files/internal/pkg/remote/version"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

// ServerStatus is the response of the status endpoint.
type ServerStatus struct {
	Installed       bool   `json:"installed"`
	Maintenance     bool   `json:"maintenance"`
	Version         string `json:"version"`
	VersionString   string `json:"versionstring"`
	ProductName     string `json:"productname"`
	NeedsDBUpgrade  bool   `json:"needsDbUpgrade"`
	ExtendedSupport bool   `json:"extendedSupport"`
}

// FetchServerVersion loads the version from the status endpoint and stores it to the client.
func (c *Client) FetchServerVersion(ctx context.Context, opts ...RequestOption) (*version.Version, error) {
	cfg := newRequestConfig(c.cfg, opts)
	ctx, cancel := cfg.apply(ctx)
	defer cancel()

	res, err := c.resty.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.baseURL + StatusPath)
	if err != nil {
		return nil, errors.PrefixError(err, "cannot fetch server status")
	}
	if res.IsError() {
		return nil, errors.Errorf(`cannot fetch server status: unexpected status "%s"`, res.Status())
	}

	// The body is decoded regardless of the Content-Type header, some servers send "text/html"
	status := &ServerStatus{}
	if err := c.resty.JSONUnmarshal(res.Body(), status); err != nil {
		return nil, errors.Errorf("cannot fetch server status: invalid response body: %w", err)
	}
	if !status.Installed {
		return nil, errors.New("cannot fetch server status: server is not installed")
	}

	v, err := version.Parse(status.Version)
	if err != nil {
		return nil, errors.PrefixError(err, "cannot fetch server status")
	}

	c.setServerVersion(v)
	return v, nil
}
