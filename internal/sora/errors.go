package sora

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind separates caller mistakes from unsupported regulatory cells
type ErrorKind string

const (
	KindValidation ErrorKind = "validation" // malformed, missing or wrong-shape input
	KindGreyCell   ErrorKind = "grey_cell"  // well-formed input on an undefined table cell
)

var (
	// ErrValidation matches every *ValidationError and *ErrorList
	ErrValidation = errors.New("sora: invalid input")
	// ErrGreyCell matches every *GreyCellError
	ErrGreyCell = errors.New("sora: grey cell, manual assessment required")
)

// ValidationError reports one rejected request field
type ValidationError struct {
	Version Version
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid ")
	if e.Version != "" {
		sb.WriteString(e.Version.Label())
		sb.WriteString(" ")
	}
	sb.WriteString("input: ")
	sb.WriteString(e.Field)
	sb.WriteString(" ")
	sb.WriteString(e.Message)
	if e.Value != nil {
		sb.WriteString(fmt.Sprintf(" (got %v)", e.Value))
	}
	return sb.String()
}

// Kind returns KindValidation
func (e *ValidationError) Kind() ErrorKind { return KindValidation }

// Is lets errors.Is match ErrValidation
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ErrorList accumulates validation failures so a caller can fix a request in
// one pass instead of one field at a time
type ErrorList struct {
	Errors []*ValidationError
}

// NewErrorList creates an empty list
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*ValidationError, 0)}
}

// Add appends a failure for field
func (l *ErrorList) Add(version Version, field string, value any, message string) {
	l.Errors = append(l.Errors, &ValidationError{
		Version: version,
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// Append adds an existing error
func (l *ErrorList) Append(err *ValidationError) {
	l.Errors = append(l.Errors, err)
}

// HasErrors reports whether anything was added
func (l *ErrorList) HasErrors() bool {
	return len(l.Errors) > 0
}

// ToError returns nil for an empty list, the single error for a list of one,
// and the list itself otherwise
func (l *ErrorList) ToError() error {
	switch len(l.Errors) {
	case 0:
		return nil
	case 1:
		return l.Errors[0]
	}
	return l
}

// Error implements the error interface
func (l *ErrorList) Error() string {
	msgs := make([]string, len(l.Errors))
	for i, err := range l.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(l.Errors), strings.Join(msgs, "; "))
}

// Kind returns KindValidation
func (l *ErrorList) Kind() ErrorKind { return KindValidation }

// Unwrap exposes the individual errors to errors.Is and errors.As
func (l *ErrorList) Unwrap() []error {
	errs := make([]error, len(l.Errors))
	for i, err := range l.Errors {
		errs[i] = err
	}
	return errs
}

// GreyCellError reports a lookup that landed on a cell the regulation leaves
// undefined. The request shape was valid; only this combination is unsupported.
type GreyCellError struct {
	Version     Version
	Table       string
	Row         string
	Column      string
	RowIndex    int
	ColumnIndex int
}

// Error implements the error interface
func (e *GreyCellError) Error() string {
	return fmt.Sprintf("grey cell in %s %s (%s x %s): manual assessment required",
		e.Version.Label(), e.Table, e.Row, e.Column)
}

// Kind returns KindGreyCell
func (e *GreyCellError) Kind() ErrorKind { return KindGreyCell }

// Is lets errors.Is match ErrGreyCell
func (e *GreyCellError) Is(target error) bool { return target == ErrGreyCell }

// FieldErrors flattens err into its validation failures. It returns nil when
// err carries none.
func FieldErrors(err error) []*ValidationError {
	var list *ErrorList
	if errors.As(err, &list) {
		return list.Errors
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return []*ValidationError{single}
	}
	return nil
}
