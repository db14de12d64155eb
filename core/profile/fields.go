package profile

import (
	"encoding/json"
	"reflect"
	"slices"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/koscakluka/lakshmi-path/core/regions"
)

type Field string

const (
	FieldName           Field = "name"
	FieldAge            Field = "age"
	FieldCategory       Field = "category"
	FieldIsTribal       Field = "is_tribal"
	FieldMonthlyIncome  Field = "monthly_income"
	FieldHasBankAccount Field = "has_bank_account"
	FieldBankName       Field = "bank_name"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindChoice
	KindYesNo
)

// FieldSpec is one form input, derived from the JSON schema of [Info].
type FieldSpec struct {
	Field    Field
	Kind     FieldKind
	Required bool
	Options  []string
	Minimum  *int
	Maximum  *int
}

func (s FieldSpec) inRange(value int) bool {
	if s.Minimum != nil && value < *s.Minimum {
		return false
	}
	if s.Maximum != nil && value > *s.Maximum {
		return false
	}
	return true
}

// Schema returns the JSON schema of [Info].
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.ReflectFromType(reflect.TypeOf(Info{}))
}

// Fields lists the form inputs in form order.
func Fields() []FieldSpec { return slices.Clone(fields()) }

var fields = sync.OnceValue(func() []FieldSpec {
	schema := Schema()

	var specs []FieldSpec
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		property := pair.Value
		spec := FieldSpec{
			Field:    Field(pair.Key),
			Required: slices.Contains(schema.Required, pair.Key),
			Minimum:  bound(property.Minimum),
			Maximum:  bound(property.Maximum),
		}
		switch {
		case len(property.Enum) > 0:
			spec.Kind = KindChoice
			for _, option := range property.Enum {
				if s, ok := option.(string); ok {
					spec.Options = append(spec.Options, s)
				}
			}
		case property.Type == "boolean":
			spec.Kind = KindYesNo
		case property.Type == "integer" || property.Type == "number":
			spec.Kind = KindNumber
		default:
			spec.Kind = KindText
		}
		specs = append(specs, spec)
	}
	return specs
})

func bound(number json.Number) *int {
	if number == "" {
		return nil
	}
	value, err := number.Int64()
	if err != nil {
		return nil
	}
	n := int(value)
	return &n
}

// Label returns the localized label of a form field.
func Label(text regions.Strings, field Field) string {
	switch field {
	case FieldName:
		return text.Name
	case FieldAge:
		return text.Age
	case FieldCategory:
		return text.Category
	case FieldIsTribal:
		return text.IsTribal
	case FieldMonthlyIncome:
		return text.MonthlyIncome
	case FieldHasBankAccount:
		return text.HasBankAccount
	case FieldBankName:
		return text.BankName
	}
	return string(field)
}

// CategoryLabel returns the localized name of a social category.
func CategoryLabel(text regions.Strings, category Category) string {
	switch category {
	case CategoryGeneral:
		return text.CategoryOptions.General
	case CategoryOBC:
		return text.CategoryOptions.OBC
	case CategorySC:
		return text.CategoryOptions.SC
	case CategoryST:
		return text.CategoryOptions.ST
	}
	return text.CategoryOptions.Select
}
