package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError lists every offending field of one input, one entry per
// field, sorted by field name.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError from fields. When a field is
// reported more than once the first reason wins.
func NewValidationError(fields ...FieldError) *ValidationError {
	seen := make(map[string]struct{}, len(fields))
	unique := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		unique = append(unique, f)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Field < unique[j].Field
	})

	return &ValidationError{Fields: unique}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
