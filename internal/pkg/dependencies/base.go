// Package dependencies provides dependencies containers shared by remote operations and their tests.
package dependencies

import (
	"context"
	"io"

	"github.com/keboola/remote-files/internal/pkg/config"
	"github.com/keboola/remote-files/internal/pkg/env"
	"github.com/keboola/remote-files/internal/pkg/log"
	"github.com/keboola/remote-files/internal/pkg/telemetry"
)

// Base contains dependencies independent of the remote server.
type Base interface {
	Envs() env.Provider
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Config() config.Config
}

// base dependencies container implements Base interface.
type base struct {
	envs      env.Provider
	logger    log.Logger
	telemetry telemetry.Telemetry
	config    config.Config
}

func NewBaseDeps(envs env.Provider, logger log.Logger, tel telemetry.Telemetry, cfg config.Config) Base {
	return newBaseDeps(envs, logger, tel, cfg)
}

// NewBaseDepsFromArgs binds the configuration from flags and ENVs and creates the logger according to it.
func NewBaseDepsFromArgs(args []string, envs env.Provider, stdout, stderr io.Writer, tel telemetry.Telemetry) (Base, error) {
	cfg, err := config.Bind(args, envs)
	if err != nil {
		return nil, err
	}
	return NewBaseDepsFromConfig(cfg, envs, stdout, stderr, tel)
}

// NewBaseDepsFromConfig creates the logger according to the bound configuration.
func NewBaseDepsFromConfig(cfg config.Config, envs env.Provider, stdout, stderr io.Writer, tel telemetry.Telemetry) (Base, error) {
	logFormat, err := log.NewLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	if tel == nil {
		tel = telemetry.NewNop()
	}

	logger := log.NewCliLogger(stdout, stderr, logFormat, cfg.DebugHTTPClient)
	logger.Debugf(context.Background(), "Configuration:\n%s", cfg.Dump())
	return newBaseDeps(envs, logger, tel, cfg), nil
}

func newBaseDeps(envs env.Provider, logger log.Logger, tel telemetry.Telemetry, cfg config.Config) *base {
	return &base{
		envs:      envs,
		logger:    logger,
		telemetry: tel,
		config:    cfg,
	}
}

func (v *base) Envs() env.Provider {
	return v.envs
}

func (v *base) Logger() log.Logger {
	return v.logger
}

func (v *base) Telemetry() telemetry.Telemetry {
	return v.telemetry
}

func (v *base) Config() config.Config {
	return v.config
}
