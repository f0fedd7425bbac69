package validation

import (
	"regexp"
	"strings"
)

// FieldError is one failed constraint on one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field failures in declaration order.
type Errors []FieldError

func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e Errors) Empty() bool { return len(e) == 0 }

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required fails when value is empty or whitespace-only.
func Required(e *Errors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, message)
	}
}

// ExactLength fails when a non-empty value is not exactly n characters.
// Empty values pass; pair with Required when the field is mandatory.
func ExactLength(e *Errors, field, value string, n int, message string) {
	if value != "" && len(value) != n {
		e.Add(field, message)
	}
}

// MinLength fails when a non-empty value is shorter than n characters.
func MinLength(e *Errors, field, value string, n int, message string) {
	if value != "" && len(value) < n {
		e.Add(field, message)
	}
}

// OneOf fails when a non-empty value is not in the allowed set.
func OneOf(e *Errors, field, value string, allowed []string, message string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, message)
}

// Matches fails when a non-empty value does not match the pattern.
func Matches(e *Errors, field, value string, pattern *regexp.Regexp, message string) {
	if value != "" && !pattern.MatchString(value) {
		e.Add(field, message)
	}
}

// Email fails when a non-empty value is not a plausible email address.
func Email(e *Errors, field, value, message string) {
	Matches(e, field, value, emailPattern, message)
}

// MinInt fails when v is below minVal.
func MinInt(e *Errors, field string, v, minVal int, message string) {
	if v < minVal {
		e.Add(field, message)
	}
}

// MinFloat fails when v is below minVal.
func MinFloat(e *Errors, field string, v, minVal float64, message string) {
	if v < minVal {
		e.Add(field, message)
	}
}
