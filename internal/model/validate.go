package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/alfredjeanlab/kundli/internal/chart"
)

// maxNameLen bounds the display name stored with a chart.
const maxNameLen = 200

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match a validation failure with chart.ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return chart.ErrInvalidInput
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// ValidateBirth checks a BirthRequest for constraint violations.
// It returns a *ValidationError if any rules fail, or nil if the request is valid.
func ValidateBirth(r *BirthRequest) error {
	var ve ValidationError

	name := strings.TrimSpace(r.Name)
	if name == "" {
		ve.add("name", "is required")
	} else if len([]rune(name)) > maxNameLen {
		ve.add("name", "must be %d characters or fewer", maxNameLen)
	}

	if strings.TrimSpace(r.DOB) == "" {
		ve.add("dob", "is required")
	} else if _, err := ParseDate(r.DOB); err != nil {
		ve.add("dob", "%v", err)
	}

	if _, err := ParseClock(r.Time); err != nil {
		ve.add("time", "%v", err)
	}

	checkCoord(&ve, "lat", r.Latitude, 90)
	checkCoord(&ve, "lon", r.Longitude, 180)

	if ve.HasErrors() {
		return &ve
	}
	return nil
}

func checkCoord(ve *ValidationError, field string, v *float64, limit float64) {
	switch {
	case v == nil:
		ve.add(field, "is required")
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		ve.add(field, "must be a finite number")
	case *v < -limit || *v > limit:
		ve.add(field, "must be between %g and %g, got %g", -limit, limit, *v)
	}
}
