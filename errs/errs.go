// Package errs defines the error taxonomy shared by the field, polynomial,
// matrix, Goppa-code, and NTRU-parameter packages. Errors are distinguished
// by Kind rather than by Go type, so callers compare with errors.Is against
// the package-level sentinels below.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies which failure mode a core operation hit.
type Kind int

const (
	// ConfigError signals an out-of-range construction parameter, such as
	// a field degree m outside [2,31] or an unknown NTRU polyType.
	ConfigError Kind = iota
	// InvalidInputError signals a malformed permutation array or a
	// mismatched vector/permutation size.
	InvalidInputError
	// ArithmeticError signals division by the zero polynomial, inverse of
	// the zero field element, or inversion of a singular matrix.
	ArithmeticError
	// EncodingError signals an incompatible byte-buffer length, a decoded
	// value outside the field, or a zero head coefficient in a decoded
	// polynomial.
	EncodingError
	// DecodingError signals a syndrome that is not in the code (the
	// Patterson T polynomial is not invertible modulo g).
	DecodingError
)

func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "config"
	case InvalidInputError:
		return "invalid input"
	case ArithmeticError:
		return "arithmetic"
	case EncodingError:
		return "encoding"
	case DecodingError:
		return "decoding"
	default:
		return "unknown"
	}
}

// Error wraps a Kind, a message, and an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same Kind, so callers can
// write errors.Is(err, errs.ErrArithmetic) without caring about the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons. Each carries no message of its own;
// wrap a concrete instance with New/Wrap and compare against these.
var (
	ErrConfig       = &Error{Kind: ConfigError}
	ErrInvalidInput = &Error{Kind: InvalidInputError}
	ErrArithmetic   = &Error{Kind: ArithmeticError}
	ErrEncoding     = &Error{Kind: EncodingError}
	ErrDecoding     = &Error{Kind: DecodingError}
)

// New builds a *Error of the given Kind with a formatted message.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a *Error of the given Kind, wrapping cause for errors.Unwrap.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Is reports whether err has the given Kind, looking through wrapping via
// errors.As.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
