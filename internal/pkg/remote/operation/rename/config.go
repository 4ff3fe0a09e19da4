package rename

import (
	"time"

	"github.com/keboola/remote-files/internal/pkg/remote/webdav"
	"github.com/keboola/remote-files/internal/pkg/telemetry"
)

type Option func(c *config)

type config struct {
	readTimeout         time.Duration
	connectionTimeout   time.Duration
	strictConflictCheck bool
	telemetry           telemetry.Telemetry
}

func WithReadTimeout(v time.Duration) Option {
	return func(c *config) {
		c.readTimeout = v
	}
}

func WithConnectionTimeout(v time.Duration) Option {
	return func(c *config) {
		c.connectionTimeout = v
	}
}

// WithStrictConflictCheck stops the operation if the existence check fails for another reason than "404 Not Found".
// By default, the destination is considered unused and the MOVE request is sent.
func WithStrictConflictCheck() Option {
	return func(c *config) {
		c.strictConflictCheck = true
	}
}

func WithTelemetry(v telemetry.Telemetry) Option {
	return func(c *config) {
		c.telemetry = v
	}
}

func newConfig(opts []Option) config {
	c := config{
		readTimeout:       DefaultReadTimeout,
		connectionTimeout: DefaultConnectionTimeout,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.telemetry == nil {
		c.telemetry = telemetry.NewNop()
	}
	return c
}

func (c config) requestOptions() []webdav.RequestOption {
	return []webdav.RequestOption{
		webdav.WithReadTimeout(c.readTimeout),
		webdav.WithConnectionTimeout(c.connectionTimeout),
	}
}
