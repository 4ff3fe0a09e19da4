package webdav

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/keboola/remote-files/internal/pkg/config"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

type ctxKey string

const connectionTimeoutCtxKey = ctxKey("connectionTimeout")

// RequestOption overrides the client configuration for a single request.
type RequestOption func(c *requestConfig)

type requestConfig struct {
	readTimeout       time.Duration
	connectionTimeout time.Duration
}

type requestWithConfig struct {
	*resty.Request
	config requestConfig
}

// WithReadTimeout limits the time to send the request and read the whole response.
func WithReadTimeout(v time.Duration) RequestOption {
	return func(c *requestConfig) {
		c.readTimeout = v
	}
}

// WithConnectionTimeout limits the time to establish a new connection.
func WithConnectionTimeout(v time.Duration) RequestOption {
	return func(c *requestConfig) {
		c.connectionTimeout = v
	}
}

func newRequestConfig(cfg config.Config, opts []RequestOption) requestConfig {
	c := requestConfig{readTimeout: cfg.ReadTimeout, connectionTimeout: cfg.ConnectionTimeout}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// apply timeouts to the request context, the cancel function must be called when the response body is closed.
func (c requestConfig) apply(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.connectionTimeout > 0 {
		ctx = context.WithValue(ctx, connectionTimeoutCtxKey, c.connectionTimeout)
	}
	if c.readTimeout > 0 {
		return context.WithTimeoutCause(ctx, c.readTimeout, errors.Errorf("read timeout %s exceeded", c.readTimeout))
	}
	return context.WithCancel(ctx)
}

func connectionTimeoutFromContext(ctx context.Context) (time.Duration, bool) {
	v, ok := ctx.Value(connectionTimeoutCtxKey).(time.Duration)
	return v, ok && v > 0
}
