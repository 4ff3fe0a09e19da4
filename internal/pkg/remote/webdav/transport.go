package webdav

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/net/http2"

	"github.com/keboola/remote-files/internal/pkg/telemetry"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

const (
	// KeepAlive specifies the interval between keep-alive probes.
	KeepAlive = 20 * time.Second
	// IdleConnTimeout closes unused connections.
	IdleConnTimeout = 30 * time.Second
	// TLSHandshakeTimeout specifies the timeout of TLS handshake.
	TLSHandshakeTimeout   = 10 * time.Second
	ExpectContinueTimeout = 2 * time.Second
	MaxIdleConns          = 32
	// HTTP2ReadIdleTimeout is the timeout after which a health check using ping frame will be carried out.
	HTTP2ReadIdleTimeout = 10 * time.Second
	HTTP2PingTimeout     = 5 * time.Second
)

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// newTransport creates HTTP transport, the connection timeout is taken from the request context.
// Trace context is sent to the server in the W3C and B3 formats.
func newTransport(tel telemetry.Telemetry, dial dialFunc) (http.RoundTripper, error) {
	if dial == nil {
		dial = (&net.Dialer{KeepAlive: KeepAlive}).DialContext
	}

	httpTransport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialWithTimeout(dial),
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   TLSHandshakeTimeout,
		ExpectContinueTimeout: ExpectContinueTimeout,
	}

	http2Transport, err := http2.ConfigureTransports(httpTransport)
	if err != nil {
		return nil, errors.PrefixError(err, "cannot configure HTTP2 transport")
	}
	http2Transport.ReadIdleTimeout = HTTP2ReadIdleTimeout
	http2Transport.PingTimeout = HTTP2PingTimeout

	// Wrap the transport with telemetry
	return otelhttp.NewTransport(
		httpTransport,
		otelhttp.WithTracerProvider(tel.TracerProvider()),
		otelhttp.WithMeterProvider(tel.MeterProvider()),
		otelhttp.WithPropagators(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, b3.New())),
	), nil
}

// dialWithTimeout limits the dial by the connection timeout from the request context, if any.
func dialWithTimeout(dial dialFunc) dialFunc {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		if timeout, ok := connectionTimeoutFromContext(ctx); ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeoutCause(ctx, timeout, errors.Errorf("connection timeout %s exceeded", timeout))
			defer cancel()
		}
		return dial(ctx, network, address)
	}
}
