package model

import (
	"errors"
	"testing"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid", "2024-01-31", false},
		{"leap day", "2024-02-29", false},
		{"not a leap year", "2023-02-29", true},
		{"bad month", "2024-13-01", true},
		{"wrong layout", "01/31/2024", true},
		{"empty", "", true},
		{"no zero padding", "2024-1-5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"integer", "42", 42, false},
		{"decimal", "19.99", 19.99, false},
		{"zero", "0", 0, false},
		{"trimmed", "  7.5 ", 7.5, false},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAmount_ErrorType(t *testing.T) {
	_, err := ParseAmount("-5")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	if verr.Field != "amount" {
		t.Errorf("Field = %q, want amount", verr.Field)
	}
}

func TestCheckFields(t *testing.T) {
	if err := CheckFields("lunch", "food"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckFields("   ", "food"); err == nil {
		t.Error("blank name accepted")
	}
	if err := CheckFields("lunch", "\t"); err == nil {
		t.Error("blank category accepted")
	}
}

func TestValidate(t *testing.T) {
	good := Expense{Name: "lunch", Amount: 9.5, Category: "food", Date: "2024-05-01"}
	if err := Validate(good); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := good
	bad.Amount = -1
	if err := Validate(bad); err == nil {
		t.Error("negative amount accepted")
	}

	bad = good
	bad.Date = "yesterday"
	if err := Validate(bad); err == nil {
		t.Error("bad date accepted")
	}
}

func TestMonth(t *testing.T) {
	if got := (Expense{Date: "2024-07-15"}).Month(); got != "2024-07" {
		t.Errorf("Month() = %q, want 2024-07", got)
	}
	if got := (Expense{Date: "short"}).Month(); got != "short" {
		t.Errorf("Month() on short date = %q, want passthrough", got)
	}
}
