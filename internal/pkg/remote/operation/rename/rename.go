// Package rename renames a file or folder on the storage server.
//
// The new path is derived from the parent of the old path and the new name.
// The operation validates the new path, checks that the destination is not used
// and moves the file by a single non-overwriting MOVE request.
// The check and the move are not atomic, a destination created in between is rejected by the server.
package rename

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/keboola/remote-files/internal/pkg/log"
	"github.com/keboola/remote-files/internal/pkg/remote/operation/existence"
	"github.com/keboola/remote-files/internal/pkg/remote/remotepath"
	"github.com/keboola/remote-files/internal/pkg/remote/result"
	"github.com/keboola/remote-files/internal/pkg/remote/version"
	"github.com/keboola/remote-files/internal/pkg/remote/webdav"
	"github.com/keboola/remote-files/internal/pkg/telemetry"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

const (
	DefaultReadTimeout       = 10 * time.Minute
	DefaultConnectionTimeout = 5 * time.Second

	spanName     = "remote.operation.rename"
	counterName  = "remote.operation.rename.outcome"
	durationName = "remote.operation.rename.duration"
)

type Client interface {
	existence.Client
	ServerVersion() *version.Version
	Move(ctx context.Context, sourceURL, destinationURL string, overwrite bool, opts ...webdav.RequestOption) (*webdav.Response, error)
}

type Request struct {
	OldName       string
	OldRemotePath string
	NewName       string
	IsFolder      bool
}

type Operation struct {
	request       Request
	newRemotePath string
	config        config
	logger        log.Logger
	telemetry     telemetry.Telemetry
	counter       metric.Int64Counter
	duration      metric.Float64Histogram
}

// New resolves the new path, it fails if the old path has no parent.
func New(req Request, logger log.Logger, opts ...Option) (*Operation, error) {
	cfg := newConfig(opts)

	newRemotePath, err := remotepath.Resolve(req.OldRemotePath, req.NewName, req.IsFolder)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Operation{
		request:       req,
		newRemotePath: newRemotePath,
		config:        cfg,
		logger:        logger.WithComponent("remote.rename"),
		telemetry:     cfg.telemetry,
		counter:       cfg.telemetry.Meter().Counter(counterName, "Outcomes of the rename operation.", "{operation}"),
		duration:      cfg.telemetry.Meter().Histogram(durationName, "Duration of the rename operation.", "s"),
	}, nil
}

// Run creates and executes the operation.
// A path which cannot be resolved is reported as result.CodeInvalidCharacter.
func Run(ctx context.Context, c Client, logger log.Logger, req Request, opts ...Option) result.Outcome {
	op, err := New(req, logger, opts...)
	if err != nil {
		outcome := result.InvalidPath(err)
		logger.WithComponent("remote.rename").Errorf(ctx, `Rename "%s" to "%s": %s`, req.OldRemotePath, req.NewName, outcome.LogMessage())
		return outcome
	}
	return op.Execute(ctx, c)
}

func (o *Operation) Request() Request {
	return o.request
}

func (o *Operation) NewRemotePath() string {
	return o.newRemotePath
}

// Execute the operation, all failures are reported by the outcome.
func (o *Operation) Execute(ctx context.Context, c Client) (outcome result.Outcome) {
	startTime := time.Now()
	ctx, span := o.telemetry.Tracer().Start(ctx, spanName)
	span.SetAttributes(
		attribute.String("remote.path.old", o.request.OldRemotePath),
		attribute.String("remote.path.new", o.newRemotePath),
		attribute.Bool("remote.is_folder", o.request.IsFolder),
	)

	defer func() {
		attrs := []attribute.KeyValue{attribute.String("remote.outcome", outcome.Code.String())}
		span.SetAttributes(append(attrs, attribute.String("remote.outcome.reason", outcome.Reason()))...)
		if outcome.StatusCode != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", outcome.StatusCode))
		}
		o.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
		o.duration.Record(ctx, time.Since(startTime).Seconds(), metric.WithAttributes(attrs...))
		o.log(ctx, outcome)

		err := outcome.Err()
		span.End(&err)
	}()

	return o.execute(ctx, c)
}

func (o *Operation) execute(ctx context.Context, c Client) result.Outcome {
	if !o.isValid(c.ServerVersion()) {
		return result.InvalidCharacter()
	}

	if o.request.NewName == o.request.OldName {
		return result.NoOp()
	}

	if used, probe := o.targetPathIsUsed(ctx, c); used {
		return result.DestinationConflict()
	} else if o.config.strictConflictCheck && probe.StatusCode != http.StatusNotFound {
		return probe
	}

	res, err := c.Move(ctx, c.WebDAVURL(o.request.OldRemotePath), c.WebDAVURL(o.newRemotePath), false, o.config.requestOptions()...)
	if err != nil {
		return result.TransportFailure(err)
	}
	defer c.Exhaust(res)

	switch res.StatusCode {
	case http.StatusCreated, http.StatusNoContent:
		return result.Success(res.StatusCode, res.Status)
	default:
		return result.ProtocolFailure(res.StatusCode, res.Status, webdav.ReadServerMessage(res))
	}
}

func (o *Operation) isValid(serverVersion *version.Version) bool {
	return remotepath.IsValidName(o.request.NewName) &&
		remotepath.IsValidPath(o.newRemotePath, serverVersion.EnforcesForbiddenCharacters())
}

// targetPathIsUsed returns true if the existence check succeeded, the outcome of the check is returned too.
func (o *Operation) targetPathIsUsed(ctx context.Context, c Client) (bool, result.Outcome) {
	probe := existence.New(o.newRemotePath, false, o.config.requestOptions()...).Execute(ctx, c)
	return probe.IsSuccess(), probe
}

func (o *Operation) log(ctx context.Context, outcome result.Outcome) {
	logger := o.logger.With(
		attribute.String("remote.path.old", o.request.OldRemotePath),
		attribute.String("remote.path.new", o.newRemotePath),
		attribute.String("remote.outcome", outcome.Code.String()),
	)

	if outcome.Code == result.CodeTransportFailure {
		logger.Errorf(ctx, "Rename \"%s\" to \"%s\": %s\n%s", o.request.OldRemotePath, o.newRemotePath, outcome.LogMessage(), errors.Format(outcome.Cause, errors.FormatWithStack(), errors.FormatWithUnwrap()))
		return
	}

	logger.Infof(ctx, `Rename "%s" to "%s": %s`, o.request.OldRemotePath, o.newRemotePath, outcome.LogMessage())
}
