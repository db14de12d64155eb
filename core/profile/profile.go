// Package profile describes the personal details the wizard collects before
// it gives advice.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidProfile = errors.New("invalid profile")

type Category string

const (
	CategoryGeneral Category = "general"
	CategoryOBC     Category = "obc"
	CategorySC      Category = "sc"
	CategoryST      Category = "st"
)

func Categories() []Category {
	return []Category{CategoryGeneral, CategoryOBC, CategorySC, CategoryST}
}

// Info is the record filled in by the profile form. The wizard passes it
// along untouched.
type Info struct {
	Name           string   `json:"name" jsonschema:"title=Name,minLength=1"`
	Age            int      `json:"age" jsonschema:"title=Age,minimum=1,maximum=120"`
	Category       Category `json:"category" jsonschema:"title=Category,enum=general,enum=obc,enum=sc,enum=st"`
	IsTribal       bool     `json:"is_tribal" jsonschema:"title=Belongs to a tribal community"`
	MonthlyIncome  int      `json:"monthly_income" jsonschema:"title=Monthly income (INR),minimum=0"`
	HasBankAccount bool     `json:"has_bank_account" jsonschema:"title=Has a bank account"`
	BankName       string   `json:"bank_name,omitempty" jsonschema:"title=Bank name"`
}

// FieldError reports one invalid field of an [Info].
type FieldError struct {
	Field  Field
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidProfile }

// Validate checks info against the form schema and returns every problem
// joined together.
func (info Info) Validate() error {
	var errs []error
	invalid := func(field Field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	for _, spec := range Fields() {
		switch spec.Field {
		case FieldName:
			if strings.TrimSpace(info.Name) == "" {
				invalid(spec.Field, "is required")
			}
		case FieldAge:
			if !spec.inRange(info.Age) {
				invalid(spec.Field, "must be between %d and %d", *spec.Minimum, *spec.Maximum)
			}
		case FieldCategory:
			if !slices.Contains(spec.Options, string(info.Category)) {
				invalid(spec.Field, "must be one of %s", strings.Join(spec.Options, ", "))
			}
		case FieldMonthlyIncome:
			if !spec.inRange(info.MonthlyIncome) {
				invalid(spec.Field, "must not be negative")
			}
		case FieldBankName:
			if !info.HasBankAccount && strings.TrimSpace(info.BankName) != "" {
				invalid(spec.Field, "requires a bank account")
			}
		}
	}
	return errors.Join(errs...)
}
