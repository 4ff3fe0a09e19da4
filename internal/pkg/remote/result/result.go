// Package result contains the outcome of a remote operation.
//
// An operation never returns an error, all transport and protocol failures are mapped to an Outcome.
package result

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

type Code int

const (
	CodeOK Code = iota
	CodeNoOp
	CodeInvalidCharacter
	CodeDestinationConflict
	CodeTransportFailure
	CodeProtocolFailure
)

type Outcome struct {
	Code Code
	// StatusCode and Status of the last HTTP response, if any.
	StatusCode int
	Status     string
	// ServerMessage is parsed from the error body of a ProtocolFailure, if present.
	ServerMessage string
	// Kind and Cause are set for TransportFailure.
	Kind  TransportKind
	Cause error
}

// Error wraps a failed Outcome for callers working with Go errors.
type Error struct {
	Outcome Outcome
}

// Success is OK with the status of the response.
func Success(statusCode int, status string) Outcome {
	return Outcome{Code: CodeOK, StatusCode: statusCode, Status: statusLine(statusCode, status)}
}

func NoOp() Outcome {
	return Outcome{Code: CodeNoOp}
}

func InvalidCharacter() Outcome {
	return Outcome{Code: CodeInvalidCharacter}
}

// InvalidPath is InvalidCharacter caused by a path which cannot be resolved.
func InvalidPath(err error) Outcome {
	return Outcome{Code: CodeInvalidCharacter, Cause: errors.WithStack(err)}
}

func DestinationConflict() Outcome {
	return Outcome{Code: CodeDestinationConflict}
}

func TransportFailure(err error) Outcome {
	return Outcome{Code: CodeTransportFailure, Kind: ClassifyTransportError(err), Cause: errors.WithStack(err)}
}

func ProtocolFailure(statusCode int, status, serverMessage string) Outcome {
	return Outcome{
		Code:          CodeProtocolFailure,
		StatusCode:    statusCode,
		Status:        statusLine(statusCode, status),
		ServerMessage: strings.TrimSpace(serverMessage),
	}
}

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNoOp:
		return "no_op"
	case CodeInvalidCharacter:
		return "invalid_character"
	case CodeDestinationConflict:
		return "destination_conflict"
	case CodeTransportFailure:
		return "transport_failure"
	case CodeProtocolFailure:
		return "protocol_failure"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// IsSuccess returns true for OK and NoOp.
func (o Outcome) IsSuccess() bool {
	return o.Code == CodeOK || o.Code == CodeNoOp
}

// Reason is a short description of the outcome.
func (o Outcome) Reason() string {
	switch o.Code {
	case CodeOK:
		return "success"
	case CodeNoOp:
		return "name unchanged"
	case CodeInvalidCharacter:
		return "invalid character"
	case CodeDestinationConflict:
		return "destination exists"
	case CodeTransportFailure:
		return o.Kind.String()
	case CodeProtocolFailure:
		return statusReason(o.StatusCode)
	default:
		return "unknown outcome"
	}
}

// LogMessage is a one-line description of the outcome.
func (o Outcome) LogMessage() string {
	switch o.Code {
	case CodeOK:
		if o.Status != "" {
			return fmt.Sprintf(`succeeded with status "%s"`, o.Status)
		}
		return "succeeded"
	case CodeNoOp:
		return "nothing to do, the name is unchanged"
	case CodeInvalidCharacter:
		if o.Cause != nil {
			return fmt.Sprintf("the new path is invalid: %s", o.Cause.Error())
		}
		return "the new name contains a forbidden character"
	case CodeDestinationConflict:
		return "the destination already exists"
	case CodeTransportFailure:
		if o.Cause == nil {
			return fmt.Sprintf("transport failure (%s)", o.Kind)
		}
		return fmt.Sprintf("transport failure (%s): %s", o.Kind, o.Cause.Error())
	case CodeProtocolFailure:
		msg := fmt.Sprintf(`protocol failure (%s): unexpected status "%s"`, o.Reason(), o.Status)
		if o.ServerMessage != "" {
			msg += fmt.Sprintf(`, server message "%s"`, o.ServerMessage)
		}
		return msg
	default:
		return o.Code.String()
	}
}

// Err returns nil on success, otherwise *Error.
func (o Outcome) Err() error {
	if o.IsSuccess() {
		return nil
	}
	return errors.WithStack(&Error{Outcome: o})
}

func (e *Error) Error() string {
	return e.Outcome.LogMessage()
}

func (e *Error) Unwrap() error {
	return e.Outcome.Cause
}

func statusLine(statusCode int, status string) string {
	if status != "" || statusCode == 0 {
		return status
	}
	return fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
}

func statusReason(statusCode int) string {
	switch {
	case statusCode == http.StatusUnauthorized:
		return "unauthorized"
	case statusCode == http.StatusForbidden:
		return "forbidden"
	case statusCode == http.StatusNotFound:
		return "not found"
	case statusCode == http.StatusConflict:
		return "conflict"
	case statusCode == http.StatusPreconditionFailed:
		return "precondition failed"
	case statusCode == http.StatusLocked:
		return "locked"
	case statusCode == http.StatusInsufficientStorage:
		return "quota exceeded"
	case statusCode >= 500:
		return "server error"
	default:
		return "unexpected status"
	}
}
