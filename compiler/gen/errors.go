package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnresolvedReference indicates a column referencing an item or a
	// column that is not available on the model.
	ErrUnresolvedReference = errors.New("ormgen: unresolved reference")
	// ErrUnmappedType indicates a type descriptor without a target type.
	ErrUnmappedType = errors.New("ormgen: unmapped type")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("ormgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("ormgen: code generation failed")
)

// RefKind names what a ReferenceError failed to resolve.
type RefKind string

// Reference kinds.
const (
	RefEnum   RefKind = "enum"
	RefTable  RefKind = "table"
	RefColumn RefKind = "column"
)

// ReferenceError reports a column whose type refers to something missing
// from the model.
type ReferenceError struct {
	Ref  RefKind
	Name string // Missing enum, table or column name
	// ForeignTable holds the table expected to declare Name (RefColumn only).
	ForeignTable string
	Table        string // Table of the offending column
	Column       string // Offending column
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	var b strings.Builder
	b.WriteString("ormgen: reference error: ")
	fmt.Fprintf(&b, "%s %q", e.Ref, e.Name)
	if e.ForeignTable != "" {
		fmt.Fprintf(&b, " on table %q", e.ForeignTable)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " referenced by column %q", e.Table+"."+e.Column)
	}
	b.WriteString(" is not available on models")
	return b.String()
}

// Is reports whether the target matches the sentinel error for ReferenceError.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// NewReferenceError creates a new ReferenceError.
func NewReferenceError(ref RefKind, name, table, column string) *ReferenceError {
	return &ReferenceError{
		Ref:    ref,
		Name:   name,
		Table:  table,
		Column: column,
	}
}

// TypeError reports a type descriptor the dialect cannot map.
type TypeError struct {
	Kind   string
	Type   string
	Table  string
	Column string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	var b strings.Builder
	b.WriteString("ormgen: type error")
	if e.Column != "" {
		fmt.Fprintf(&b, " on column %q", e.Table+"."+e.Column)
	}
	fmt.Fprintf(&b, ": unmapped type %q", e.Kind+"."+e.Type)
	return b.String()
}

// Is reports whether the target matches the sentinel error for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrUnmappedType
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
		return fmt.Sprintf("ormgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("ormgen: config error for %q: %s", e.Option, e.Message)
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

// GenerationError represents a failure to generate the artifact of one item.
type GenerationError struct {
	Phase string // "table" or "enum"
	Item  string
	Cause error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("ormgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.Item != "" {
		b.WriteString(" (item: ")
		b.WriteString(e.Item)
		b.WriteString(")")
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
func NewGenerationError(phase, item string, cause error) *GenerationError {
	return &GenerationError{
		Phase: phase,
		Item:  item,
		Cause: cause,
	}
}

// IsReferenceError reports whether the error is a ReferenceError.
func IsReferenceError(err error) bool {
	var refErr *ReferenceError
	return errors.As(err, &refErr)
}

// IsTypeError reports whether the error is a TypeError.
func IsTypeError(err error) bool {
	var typeErr *TypeError
	return errors.As(err, &typeErr)
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
