package result

import (
	"context"
	"crypto/x509"
	"io"
	"net"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

func TestOutcome_IsSuccess(t *testing.T) {
	t.Parallel()

	assert.True(t, Success(201, "").IsSuccess())
	assert.True(t, NoOp().IsSuccess())
	assert.False(t, InvalidCharacter().IsSuccess())
	assert.False(t, InvalidPath(errors.New("some error")).IsSuccess())
	assert.False(t, DestinationConflict().IsSuccess())
	assert.False(t, TransportFailure(errors.New("some error")).IsSuccess())
	assert.False(t, ProtocolFailure(403, "", "").IsSuccess())
}

func TestOutcome_LogMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		outcome  Outcome
		reason   string
		expected string
	}{
		{Outcome{Code: CodeOK}, "success", "succeeded"},
		{Success(201, ""), "success", `succeeded with status "201 Created"`},
		{NoOp(), "name unchanged", "nothing to do, the name is unchanged"},
		{InvalidCharacter(), "invalid character", "the new name contains a forbidden character"},
		{InvalidPath(errors.New("root has no parent")), "invalid character", "the new path is invalid: root has no parent"},
		{DestinationConflict(), "destination exists", "the destination already exists"},
		{
			TransportFailure(&net.OpError{Op: "dial", Net: "tcp", Err: os.ErrDeadlineExceeded}),
			"timeout",
			"transport failure (timeout): dial tcp: i/o timeout",
		},
		{ProtocolFailure(403, "403 Forbidden", ""), "forbidden", `protocol failure (forbidden): unexpected status "403 Forbidden"`},
		{
			ProtocolFailure(507, "", " Quota exceeded\n"),
			"quota exceeded",
			`protocol failure (quota exceeded): unexpected status "507 Insufficient Storage", server message "Quota exceeded"`,
		},
		{ProtocolFailure(502, "", ""), "server error", `protocol failure (server error): unexpected status "502 Bad Gateway"`},
		{ProtocolFailure(302, "", ""), "unexpected status", `protocol failure (unexpected status): unexpected status "302 Found"`},
	}

	for _, c := range cases {
		assert.Equal(t, c.reason, c.outcome.Reason(), c.expected)
		assert.Equal(t, c.expected, c.outcome.LogMessage())
	}
}

func TestOutcome_StatusReasons(t *testing.T) {
	t.Parallel()

	reasons := map[int]string{
		401: "unauthorized",
		403: "forbidden",
		404: "not found",
		409: "conflict",
		412: "precondition failed",
		423: "locked",
		507: "quota exceeded",
		500: "server error",
		400: "unexpected status",
	}
	for status, reason := range reasons {
		assert.Equal(t, reason, ProtocolFailure(status, "", "").Reason(), status)
	}
}

func TestOutcome_Err(t *testing.T) {
	t.Parallel()

	require.NoError(t, Success(204, "").Err())
	require.NoError(t, NoOp().Err())

	err := DestinationConflict().Err()
	require.Error(t, err)
	assert.Equal(t, "the destination already exists", err.Error())

	var outcomeErr *Error
	require.ErrorAs(t, err, &outcomeErr)
	assert.Equal(t, CodeDestinationConflict, outcomeErr.Outcome.Code)

	cause := &net.DNSError{Err: "no such host", Name: "files.invalid"}
	err = TransportFailure(cause).Err()
	var dnsErr *net.DNSError
	require.ErrorAs(t, err, &dnsErr)
	assert.Equal(t, "files.invalid", dnsErr.Name)
}

func TestCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", CodeOK.String())
	assert.Equal(t, "no_op", CodeNoOp.String())
	assert.Equal(t, "invalid_character", CodeInvalidCharacter.String())
	assert.Equal(t, "destination_conflict", CodeDestinationConflict.String())
	assert.Equal(t, "transport_failure", CodeTransportFailure.String())
	assert.Equal(t, "protocol_failure", CodeProtocolFailure.String())
	assert.Equal(t, "code(99)", Code(99).String())
}

func TestClassifyTransportError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err      error
		expected TransportKind
	}{
		{nil, TransportUnknown},
		{errors.New("some error"), TransportUnknown},
		{context.Canceled, TransportCancelled},
		{errors.Errorf("request failed: %w", context.Canceled), TransportCancelled},
		{context.DeadlineExceeded, TransportTimeout},
		{&url.Error{Op: "Move", URL: "https://files.example.com", Err: &net.OpError{Op: "dial", Err: os.ErrDeadlineExceeded}}, TransportTimeout},
		{&net.DNSError{Err: "no such host", Name: "files.invalid", IsNotFound: true}, TransportHostNotAvailable},
		{&net.DNSError{Err: "timeout", Name: "files.invalid", IsTimeout: true}, TransportTimeout},
		{&url.Error{Op: "parse", URL: "://", Err: errors.New("missing protocol scheme")}, TransportIncorrectAddress},
		{&url.Error{Op: "Move", URL: "https://files.example.com", Err: x509.UnknownAuthorityError{}}, TransportSSLError},
		{x509.HostnameError{Host: "files.example.com", Certificate: &x509.Certificate{}}, TransportSSLError},
		{&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, TransportWrongConnection},
		{io.ErrUnexpectedEOF, TransportWrongConnection},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ClassifyTransportError(c.err), "%v", c.err)
	}
}

func TestTransportKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "timeout", TransportTimeout.String())
	assert.Equal(t, "host not available", TransportHostNotAvailable.String())
	assert.Equal(t, "incorrect address", TransportIncorrectAddress.String())
	assert.Equal(t, "ssl error", TransportSSLError.String())
	assert.Equal(t, "cancelled", TransportCancelled.String())
	assert.Equal(t, "wrong connection", TransportWrongConnection.String())
	assert.Equal(t, "unknown error", TransportUnknown.String())
}
