// Package config contains configuration of the remote files client.
// The configuration can be bound from command line flags and ENV variables, see Bind.
package config

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/keboola/remote-files/internal/pkg/log"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
	"github.com/keboola/remote-files/internal/pkg/validator"
)

const (
	DefaultWebDAVPath        = "/remote.php/webdav"
	DefaultUserAgent         = "keboola-remote-files"
	DefaultReadTimeout       = 10 * time.Minute
	DefaultConnectionTimeout = 5 * time.Second
)

type Config struct {
	BaseURL           string        `configKey:"baseUrl" configUsage:"Base URL of the storage server." validate:"required,url" sensitive:"url"`
	WebDAVPath        string        `configKey:"webdavPath" configUsage:"Path of the WebDAV endpoint, relative to the base URL." validate:"required"`
	Username          string        `configKey:"username" configUsage:"Username for basic authentication."`
	Password          string        `configKey:"password" configUsage:"Password for basic authentication." sensitive:"true"`
	UserAgent         string        `configKey:"userAgent" configUsage:"User-Agent header of HTTP requests." validate:"required"`
	RetryCount        int           `configKey:"retryCount" configUsage:"Retries of idempotent requests, MOVE is never retried." validate:"min=0"`
	ReadTimeout       time.Duration `configKey:"readTimeout" configUsage:"Read timeout of a remote operation." validate:"required"`
	ConnectionTimeout time.Duration `configKey:"connectionTimeout" configUsage:"Connection timeout of a remote operation." validate:"required"`
	DebugHTTPClient   bool          `configKey:"debugHttpClient" configUsage:"Log HTTP client requests and responses as debug messages."`
	LogFormat         string        `configKey:"logFormat" configUsage:"Log format, \"console\" or \"json\"." validate:"required"`
}

func New() Config {
	return Config{
		WebDAVPath:        DefaultWebDAVPath,
		UserAgent:         DefaultUserAgent,
		RetryCount:        0,
		ReadTimeout:       DefaultReadTimeout,
		ConnectionTimeout: DefaultConnectionTimeout,
		LogFormat:         string(log.LogFormatConsole),
	}
}

func (c *Config) Normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.WebDAVPath = strings.TrimSpace(c.WebDAVPath)
	if c.WebDAVPath != "" {
		c.WebDAVPath = "/" + strings.Trim(c.WebDAVPath, "/")
	}
}

func (c *Config) Validate() error {
	errs := errors.NewMultiError()

	if err := validator.New().Validate(context.Background(), c); err != nil {
		errs.Append(err)
	}

	if c.BaseURL != "" {
		if u, err := url.Parse(c.BaseURL); err == nil && u.Scheme != "http" && u.Scheme != "https" {
			errs.Append(errors.Errorf(`"baseUrl" must use "http" or "https" scheme, found "%s"`, u.Scheme))
		}
	}
	if c.ReadTimeout < 0 || c.ConnectionTimeout < 0 {
		errs.Append(errors.New("timeouts cannot be negative"))
	}
	if _, err := log.NewLogFormat(c.LogFormat); err != nil {
		errs.Append(err)
	}

	return errs.ErrorOrNil()
}

// WebDAVURL is the base URL of the WebDAV endpoint, without a trailing slash.
func (c *Config) WebDAVURL() string {
	return c.BaseURL + c.WebDAVPath
}
