package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports a rejected field at the write boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", s)}
	}
	return nil
}

// ValidateAmount rejects negative amounts.
func ValidateAmount(f float64) error {
	if f < 0 {
		return &ValidationError{Field: "amount", Reason: "amount cannot be negative"}
	}
	return nil
}

// ParseAmount converts a textual amount into a validated non-negative float.
func ParseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if err := ValidateAmount(f); err != nil {
		return 0, err
	}
	return f, nil
}

// CheckFields rejects names and categories that are empty after trimming.
func CheckFields(name, category string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "name cannot be empty"}
	}
	if strings.TrimSpace(category) == "" {
		return &ValidationError{Field: "category", Reason: "category cannot be empty"}
	}
	return nil
}

// Validate runs the full write-boundary check for one expense.
func Validate(e Expense) error {
	if err := CheckFields(e.Name, e.Category); err != nil {
		return err
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	return ValidateDate(e.Date)
}
