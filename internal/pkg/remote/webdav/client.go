// Package webdav provides HTTP client for the WebDAV endpoint of the storage server.
//
// Responses are not parsed by the client, the caller must always call Client.Exhaust on a returned response.
package webdav

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/keboola/remote-files/internal/pkg/config"
	"github.com/keboola/remote-files/internal/pkg/log"
	"github.com/keboola/remote-files/internal/pkg/remote/remotepath"
	"github.com/keboola/remote-files/internal/pkg/remote/version"
	"github.com/keboola/remote-files/internal/pkg/telemetry"
)

const (
	MethodMove     = "MOVE"
	MethodPropfind = "PROPFIND"

	HeaderDestination = "Destination"
	HeaderOverwrite   = "Overwrite"
	HeaderDepth       = "Depth"

	DepthZero = "0"

	StatusPath = "/status.php"

	RetryWaitTime    = 100 * time.Millisecond
	RetryWaitTimeMax = 3 * time.Second
	DebugBodyLimit   = 32 * 1024
)

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
}

type Client struct {
	logger    log.Logger
	resty     *resty.Client
	baseURL   string
	webdavURL string
	cfg       config.Config
	lock      *sync.RWMutex
	serverVer *version.Version
}

type Option func(c *clientConfig)

type clientConfig struct {
	transport     http.RoundTripper
	serverVersion *version.Version
}

// WithTransport replaces the default HTTP transport, for example by a mocked transport in tests.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *clientConfig) {
		c.transport = transport
	}
}

// WithServerVersion sets the server version, so it doesn't have to be fetched by FetchServerVersion.
func WithServerVersion(v *version.Version) Option {
	return func(c *clientConfig) {
		c.serverVersion = v
	}
}

func New(d dependencies, cfg config.Config, opts ...Option) (*Client, error) {
	clientCfg := clientConfig{}
	for _, o := range opts {
		o(&clientCfg)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := d.Logger().WithComponent("webdav.client")

	transport := clientCfg.transport
	if transport == nil {
		var err error
		if transport, err = newTransport(d.Telemetry(), nil); err != nil {
			return nil, err
		}
	}

	c := &Client{
		logger:    logger,
		baseURL:   cfg.BaseURL,
		webdavURL: cfg.WebDAVURL(),
		cfg:       cfg,
		lock:      &sync.RWMutex{},
		serverVer: clientCfg.serverVersion,
	}

	c.resty = resty.New().
		SetLogger(newRestyLogger(logger)).
		SetTransport(transport).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(RetryWaitTime).
		SetRetryMaxWaitTime(RetryWaitTimeMax).
		AddRetryCondition(retryCondition()).
		SetJSONUnmarshaler(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal)

	if cfg.Username != "" || cfg.Password != "" {
		c.resty.SetBasicAuth(cfg.Username, cfg.Password)
	}

	// Log each request, secrets are hidden, see restyLogger
	if cfg.DebugHTTPClient {
		c.resty.SetDebug(true)
		c.resty.SetDebugBodyLimit(DebugBodyLimit)
	}
	c.resty.OnSuccess(func(_ *resty.Client, res *resty.Response) {
		c.logger.With(attribute.Int("http.status", res.StatusCode())).Debugf(res.Request.Context(), "%s %s | %d | %s", res.Request.Method, res.Request.URL, res.StatusCode(), res.Time())
	})
	c.resty.OnError(func(req *resty.Request, err error) {
		c.logger.Debugf(req.Context(), "%s %s | error: %s", req.Method, req.URL, err)
	})

	return c, nil
}

// RestyClient is exposed for tests, for example to mock the transport by httpmock.
func (c *Client) RestyClient() *resty.Client {
	return c.resty
}

// ServerVersion returns nil if the version is unknown.
func (c *Client) ServerVersion() *version.Version {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.serverVer
}

func (c *Client) setServerVersion(v *version.Version) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.serverVer = v
}

// WebDAVURL returns URL of the remote path, the path is encoded.
func (c *Client) WebDAVURL(remotePath string) string {
	if !strings.HasPrefix(remotePath, remotepath.Separator) {
		remotePath = remotepath.Separator + remotePath
	}
	return c.webdavURL + remotepath.EncodePath(remotePath)
}

// Move sends MOVE request, the request is never retried.
func (c *Client) Move(ctx context.Context, sourceURL, destinationURL string, overwrite bool, opts ...RequestOption) (*Response, error) {
	r := c.newRequest(opts)
	r.SetHeader(HeaderDestination, destinationURL)
	r.SetHeader(HeaderOverwrite, overwriteHeader(overwrite))
	return c.send(ctx, r, MethodMove, sourceURL)
}

// Propfind sends PROPFIND request with the Depth header.
func (c *Client) Propfind(ctx context.Context, url string, depth string, opts ...RequestOption) (*Response, error) {
	r := c.newRequest(opts)
	r.SetHeader(HeaderDepth, depth)
	return c.send(ctx, r, MethodPropfind, url)
}

func (c *Client) newRequest(opts []RequestOption) *requestWithConfig {
	return &requestWithConfig{Request: c.resty.R().SetDoNotParseResponse(true), config: newRequestConfig(c.cfg, opts)}
}

func (c *Client) send(ctx context.Context, r *requestWithConfig, method, url string) (*Response, error) {
	ctx, cancel := r.config.apply(ctx)
	res, err := r.SetContext(ctx).Execute(method, url)
	if err != nil {
		// Close the body of an unused response
		if res != nil && res.RawBody() != nil {
			_ = res.RawBody().Close()
		}
		cancel()
		return nil, err
	}
	return newResponse(res, cancel), nil
}

func overwriteHeader(overwrite bool) string {
	if overwrite {
		return "T"
	}
	return "F"
}
