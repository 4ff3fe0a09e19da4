package result

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"net/url"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

type TransportKind int

const (
	TransportUnknown TransportKind = iota
	TransportTimeout
	TransportHostNotAvailable
	TransportIncorrectAddress
	TransportSSLError
	TransportCancelled
	TransportWrongConnection
)

func (k TransportKind) String() string {
	switch k {
	case TransportTimeout:
		return "timeout"
	case TransportHostNotAvailable:
		return "host not available"
	case TransportIncorrectAddress:
		return "incorrect address"
	case TransportSSLError:
		return "ssl error"
	case TransportCancelled:
		return "cancelled"
	case TransportWrongConnection:
		return "wrong connection"
	default:
		return "unknown error"
	}
}

// ClassifyTransportError maps an error of the HTTP client to a TransportKind.
func ClassifyTransportError(err error) TransportKind {
	if err == nil {
		return TransportUnknown
	}

	var (
		netErr         net.Error
		dnsErr         *net.DNSError
		urlErr         *url.Error
		opErr          *net.OpError
		unknownCAErr   x509.UnknownAuthorityError
		hostnameErr    x509.HostnameError
		certInvalidErr x509.CertificateInvalidError
		certVerifyErr  *tls.CertificateVerificationError
		recordErr      tls.RecordHeaderError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return TransportCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return TransportTimeout
	case errors.As(err, &dnsErr) && !dnsErr.IsTimeout:
		return TransportHostNotAvailable
	case errors.As(err, &netErr) && netErr.Timeout():
		return TransportTimeout
	case errors.As(err, &unknownCAErr),
		errors.As(err, &hostnameErr),
		errors.As(err, &certInvalidErr),
		errors.As(err, &certVerifyErr),
		errors.As(err, &recordErr):
		return TransportSSLError
	case errors.As(err, &urlErr) && urlErr.Op == "parse":
		return TransportIncorrectAddress
	case errors.As(err, &opErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, net.ErrClosed):
		return TransportWrongConnection
	default:
		return TransportUnknown
	}
}
