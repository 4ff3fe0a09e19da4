package dependencies

import (
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-files/internal/pkg/config"
	"github.com/keboola/remote-files/internal/pkg/env"
	"github.com/keboola/remote-files/internal/pkg/log"
	"github.com/keboola/remote-files/internal/pkg/remote/version"
	"github.com/keboola/remote-files/internal/pkg/remote/webdav"
	"github.com/keboola/remote-files/internal/pkg/telemetry"
)

const (
	MockedBaseURL       = "https://files.mocked.transport.http"
	MockedServerVersion = "10.0.3.3"
)

// Mocked contains dependencies with the mocked HTTP transport.
type Mocked interface {
	Remote
	EnvsMutable() *env.Map
	DebugLogger() log.DebugLogger
	TestTelemetry() telemetry.ForTest
	MockedHTTPTransport() *httpmock.MockTransport
}

type MockedOption func(c *mockedConfig)

type mockedConfig struct {
	config        config.Config
	serverVersion *version.Version
}

// WithMockedConfig modifies the default mocked configuration.
func WithMockedConfig(fn func(cfg *config.Config)) MockedOption {
	return func(c *mockedConfig) {
		fn(&c.config)
	}
}

// WithMockedServerVersion sets the server version, nil means an unknown version.
func WithMockedServerVersion(v *version.Version) MockedOption {
	return func(c *mockedConfig) {
		c.serverVersion = v
	}
}

// mocked dependencies container implements Mocked interface.
type mocked struct {
	Remote
	envs                *env.Map
	debugLogger         log.DebugLogger
	telemetry           telemetry.ForTest
	mockedHTTPTransport *httpmock.MockTransport
}

func NewMocked(t *testing.T, opts ...MockedOption) Mocked {
	t.Helper()

	cfg := config.New()
	cfg.BaseURL = MockedBaseURL
	cfg.Username = "admin"
	cfg.Password = "my-secret"
	mockedCfg := mockedConfig{config: cfg, serverVersion: version.MustParse(MockedServerVersion)}
	for _, o := range opts {
		o(&mockedCfg)
	}

	envs := env.Empty()
	logger := log.NewDebugLogger()
	tel := telemetry.NewForTest(t)
	transport := httpmock.NewMockTransport()

	baseDeps := newBaseDeps(envs, logger, tel, mockedCfg.config)
	clientOpts := []webdav.Option{webdav.WithTransport(transport)}
	if mockedCfg.serverVersion != nil {
		clientOpts = append(clientOpts, webdav.WithServerVersion(mockedCfg.serverVersion))
	}

	// An unknown version is not fetched, the status endpoint is not mocked
	client, err := webdav.New(baseDeps, mockedCfg.config, clientOpts...)
	require.NoError(t, err)

	// Short retry delay in tests
	client.RestyClient().SetRetryWaitTime(1).SetRetryMaxWaitTime(1)

	return &mocked{
		Remote:              &remote{Base: baseDeps, webdavClient: client},
		envs:                envs,
		debugLogger:         logger,
		telemetry:           tel,
		mockedHTTPTransport: transport,
	}
}

func (v *mocked) EnvsMutable() *env.Map {
	return v.envs
}

func (v *mocked) DebugLogger() log.DebugLogger {
	return v.debugLogger
}

func (v *mocked) TestTelemetry() telemetry.ForTest {
	return v.telemetry
}

func (v *mocked) MockedHTTPTransport() *httpmock.MockTransport {
	return v.mockedHTTPTransport
}
