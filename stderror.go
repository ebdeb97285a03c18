package macrocosm

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Standard sentinel errors, one per StdError kind.
var (
	// ErrGeneric matches generic standard errors.
	ErrGeneric = errors.New("macrocosm: generic error")

	// ErrNotFound matches standard errors reporting a missing value.
	ErrNotFound = errors.New("macrocosm: not found")

	// ErrParse matches standard errors raised while decoding a value.
	ErrParse = errors.New("macrocosm: parse error")

	// ErrSerialize matches standard errors raised while encoding a value.
	ErrSerialize = errors.New("macrocosm: serialize error")

	// ErrOverflow matches arithmetic overflow errors.
	ErrOverflow = errors.New("macrocosm: overflow")

	// ErrDivideByZero matches division by zero errors.
	ErrDivideByZero = errors.New("macrocosm: divide by zero")
)

// StdErrorKind classifies a StdError.
type StdErrorKind uint8

// Standard error kinds.
const (
	KindGeneric StdErrorKind = iota
	KindNotFound
	KindParse
	KindSerialize
	KindOverflow
	KindDivideByZero
)

var stdKinds = [...]struct {
	name     string
	sentinel error
	code     codes.Code
}{
	KindGeneric:      {"generic", ErrGeneric, codes.Unknown},
	KindNotFound:     {"not_found", ErrNotFound, codes.NotFound},
	KindParse:        {"parse", ErrParse, codes.InvalidArgument},
	KindSerialize:    {"serialize", ErrSerialize, codes.Internal},
	KindOverflow:     {"overflow", ErrOverflow, codes.OutOfRange},
	KindDivideByZero: {"divide_by_zero", ErrDivideByZero, codes.OutOfRange},
}

// String returns the name of the kind.
func (k StdErrorKind) String() string {
	if int(k) >= len(stdKinds) {
		return fmt.Sprintf("StdErrorKind(%d)", k)
	}
	return stdKinds[k].name
}

// StdError is the standard error shared by contracts. Every generated
// error type can be narrowed to it and promoted from it.
type StdError struct {
	Kind StdErrorKind
	// Type names the value involved: the missing type for KindNotFound,
	// the target of KindParse and the source of KindSerialize.
	Type string
	Msg  string
}

// Error returns the error string.
func (e *StdError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return e.Type + " not found"
	case KindParse:
		return fmt.Sprintf("Error parsing into type %s: %s", e.Type, e.Msg)
	case KindSerialize:
		return fmt.Sprintf("Error serializing type %s: %s", e.Type, e.Msg)
	case KindOverflow:
		return "Overflow: " + e.Msg
	case KindDivideByZero:
		return "Divide by zero: " + e.Msg
	default:
		return "Generic error: " + e.Msg
	}
}

// Is reports whether target is the sentinel error of the kind.
// This allows errors.Is(stdErr, ErrNotFound) to return true.
func (e *StdError) Is(target error) bool {
	return int(e.Kind) < len(stdKinds) && target == stdKinds[e.Kind].sentinel
}

// GRPCStatus returns the gRPC status of the error. It lets
// status.FromError and status.Code see through contract errors.
func (e *StdError) GRPCStatus() *status.Status {
	code := codes.Unknown
	if int(e.Kind) < len(stdKinds) {
		code = stdKinds[e.Kind].code
	}
	return status.New(code, e.Error())
}

// GenericErr returns a generic standard error.
func GenericErr(msg string) *StdError {
	return &StdError{Kind: KindGeneric, Msg: msg}
}

// NotFoundErr returns a standard error reporting a missing value of the given type.
func NotFoundErr(typ string) *StdError {
	return &StdError{Kind: KindNotFound, Type: typ}
}

// ParseErr returns a standard error raised while decoding into the given type.
func ParseErr(typ, msg string) *StdError {
	return &StdError{Kind: KindParse, Type: typ, Msg: msg}
}

// SerializeErr returns a standard error raised while encoding the given type.
func SerializeErr(typ, msg string) *StdError {
	return &StdError{Kind: KindSerialize, Type: typ, Msg: msg}
}

// OverflowErr returns an arithmetic overflow error.
func OverflowErr(msg string) *StdError {
	return &StdError{Kind: KindOverflow, Msg: msg}
}

// DivideByZeroErr returns a division by zero error.
func DivideByZeroErr(msg string) *StdError {
	return &StdError{Kind: KindDivideByZero, Msg: msg}
}

// AsStdError returns the StdError in err's chain, if any.
func AsStdError(err error) (*StdError, bool) {
	var e *StdError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFound returns true if the error is a not found standard error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound)
}
