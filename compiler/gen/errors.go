package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnsupportedShape indicates a declaration that is not an enumeration.
	ErrUnsupportedShape = errors.New("macrocosm: unsupported declaration shape")
	// ErrUnrecognizedParameter indicates an unknown configuration parameter.
	ErrUnrecognizedParameter = errors.New("macrocosm: unrecognized parameter")
	// ErrInvalidParameter indicates a known parameter with an invalid value.
	ErrInvalidParameter = errors.New("macrocosm: invalid parameter")
	// ErrMissingResponseType indicates a query variant without a returns annotation.
	ErrMissingResponseType = errors.New("macrocosm: missing response type")
	// ErrInvalidResponseType indicates a returns annotation that is not a type.
	ErrInvalidResponseType = errors.New("macrocosm: invalid response type")
	// ErrDuplicateQueryKey indicates two query variants with the same registry key.
	ErrDuplicateQueryKey = errors.New("macrocosm: duplicate query key")
	// ErrStructVariantNotSubquery indicates a struct variant in a nested query type.
	ErrStructVariantNotSubquery = errors.New("macrocosm: struct variant is not a subquery")
	// ErrWrongArity indicates a nested query variant without exactly one field.
	ErrWrongArity = errors.New("macrocosm: wrong subquery arity")
	// ErrUnitVariantNotSubquery indicates a unit variant in a nested query type.
	ErrUnitVariantNotSubquery = errors.New("macrocosm: unit variant is not a subquery")
	// ErrInvalidDescriptor indicates a malformed declaration descriptor.
	ErrInvalidDescriptor = errors.New("macrocosm: invalid descriptor")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("macrocosm: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("macrocosm: code generation failed")
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind uint8

// Diagnostic kinds.
const (
	UnsupportedShape DiagnosticKind = iota + 1
	UnrecognizedParameter
	InvalidParameter
	MissingResponseType
	InvalidResponseType
	DuplicateQueryKey
	StructVariantNotSubquery
	WrongArity
	UnitVariantNotSubquery
	InvalidDescriptor
)

var kinds = [...]struct {
	code     string
	sentinel error
}{
	UnsupportedShape:         {"unsupported_shape", ErrUnsupportedShape},
	UnrecognizedParameter:    {"unrecognized_parameter", ErrUnrecognizedParameter},
	InvalidParameter:         {"invalid_parameter", ErrInvalidParameter},
	MissingResponseType:      {"missing_response_type", ErrMissingResponseType},
	InvalidResponseType:      {"invalid_response_type", ErrInvalidResponseType},
	DuplicateQueryKey:        {"duplicate_query_key", ErrDuplicateQueryKey},
	StructVariantNotSubquery: {"struct_variant_not_subquery", ErrStructVariantNotSubquery},
	WrongArity:               {"wrong_arity", ErrWrongArity},
	UnitVariantNotSubquery:   {"unit_variant_not_subquery", ErrUnitVariantNotSubquery},
	InvalidDescriptor:        {"invalid_descriptor", ErrInvalidDescriptor},
}

// String returns the snake-cased code of the kind.
func (k DiagnosticKind) String() string {
	if k == 0 || int(k) >= len(kinds) {
		return fmt.Sprintf("DiagnosticKind(%d)", k)
	}
	return kinds[k].code
}

// Sentinel returns the sentinel error matched by diagnostics of this kind.
func (k DiagnosticKind) Sentinel() error {
	if k == 0 || int(k) >= len(kinds) {
		return nil
	}
	return kinds[k].sentinel
}

// Diagnostic is a generation failure attributed to a declaration, and
// when known, to one of its variants or configuration parameters.
type Diagnostic struct {
	Kind    DiagnosticKind
	Pos     string // Descriptor file
	Type    string // Declaration name
	Variant string // Variant name (if applicable)
	Param   string // Parameter name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString("macrocosm: ")
	if e.Pos != "" {
		b.WriteString(e.Pos)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
		if e.Variant != "" {
			b.WriteString("::")
			b.WriteString(e.Variant)
		}
	}
	if e.Param != "" {
		b.WriteString(" parameter ")
		b.WriteString(e.Param)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Diagnostic) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for the diagnostic kind.
func (e *Diagnostic) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

// NewDiagnostic creates a new Diagnostic.
func NewDiagnostic(kind DiagnosticKind, typeName, variant, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Type:    typeName,
		Variant: variant,
		Message: message,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("macrocosm: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("macrocosm: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("macrocosm: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsDiagnostic reports whether the error is a Diagnostic of the given kind.
// A zero kind matches any diagnostic.
func IsDiagnostic(err error, kind DiagnosticKind) bool {
	var d *Diagnostic
	if !errors.As(err, &d) {
		return false
	}
	return kind == 0 || d.Kind == kind
}

// Diagnostics returns every Diagnostic found in err, looking through joined errors.
func Diagnostics(err error) []*Diagnostic {
	var out []*Diagnostic
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *Diagnostic:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)
	return out
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
