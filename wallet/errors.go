package wallet

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a [Provider] is an [*Error] matching exactly one of these
// with errors.Is.
var (
	// ErrConfiguration is returned for invalid or missing configuration, before any remote call.
	ErrConfiguration = errors.New("configuration error")
	// ErrNetworkResolution is returned for an unknown network id or chain id.
	ErrNetworkResolution = errors.New("network resolution error")
	// ErrCustody is returned when the custody service fails to create or fetch the wallet.
	ErrCustody = errors.New("custody error")
	// ErrSigning is returned when a signature or signed transaction cannot be produced.
	ErrSigning = errors.New("signing error")
	// ErrBroadcast is returned when the network rejects a signed transaction.
	ErrBroadcast = errors.New("broadcast error")
	// ErrQuery is returned when a chain read fails.
	ErrQuery = errors.New("query error")
	// ErrTimeout is returned when a transaction receipt is not found in time.
	ErrTimeout = errors.New("timeout error")
	// ErrValueParse is returned for a malformed amount or address.
	ErrValueParse = errors.New("value parse error")
)

// Error is the error type returned by a [Provider].
type Error struct {
	// Kind is one of the Err* sentinels of this package.
	Kind error
	// Op is the provider operation that failed, e.g. "SendTransaction".
	Op string
	// Msg describes the failure.
	Msg string
	// Err is the underlying cause. It is not exposed through Unwrap for ErrCustody.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil && e.Kind != ErrCustody {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Unwrap returns the underlying cause, or nil for custody errors.
func (e *Error) Unwrap() error {
	if e.Kind == ErrCustody {
		return nil
	}

	return e.Err
}

func newError(kind error, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}
