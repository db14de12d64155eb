package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koscakluka/lakshmi-path/core/profile"
	"github.com/koscakluka/lakshmi-path/core/regions"
)

type formField struct {
	spec   profile.FieldSpec
	input  textinput.Model
	choice int
	yes    bool
}

// form renders the profile fields in schema order with labels in the
// region's language.
type form struct {
	text   regions.Strings
	fields []formField
	focus  int
	err    error
}

func newForm(text regions.Strings) form {
	f := form{text: text}
	for _, spec := range profile.Fields() {
		field := formField{spec: spec, choice: -1}
		if field.hasInput() {
			field.input = textinput.New()
			field.input.Prompt = ""
			field.input.CharLimit = 64
			field.input.Width = 32
			if spec.Kind == profile.KindNumber {
				field.input.CharLimit = 9
			}
		}
		f.fields = append(f.fields, field)
	}
	f.fields[0].focus()
	return f
}

func (field *formField) hasInput() bool {
	return field.spec.Kind == profile.KindText || field.spec.Kind == profile.KindNumber
}

func (field *formField) focus() tea.Cmd {
	if !field.hasInput() {
		return nil
	}
	return field.input.Focus()
}

// visible reports whether field i is shown. The bank name only matters
// with a bank account.
func (f form) visible(i int) bool {
	if f.fields[i].spec.Field != profile.FieldBankName {
		return true
	}
	for _, field := range f.fields {
		if field.spec.Field == profile.FieldHasBankAccount {
			return field.yes
		}
	}
	return true
}

func (f form) focused() profile.FieldSpec { return f.fields[f.focus].spec }

func (f form) move(delta int) (form, tea.Cmd) {
	if field := &f.fields[f.focus]; field.hasInput() {
		field.input.Blur()
	}
	for next := f.focus + delta; next >= 0 && next < len(f.fields); next += delta {
		if f.visible(next) {
			f.focus = next
			break
		}
	}
	return f, f.fields[f.focus].focus()
}

func (f form) update(msg tea.KeyMsg) (form, tea.Cmd) {
	field := &f.fields[f.focus]
	switch field.spec.Kind {
	case profile.KindChoice:
		switch msg.String() {
		case "left":
			field.choice = (field.choice + len(field.spec.Options) - 1) % len(field.spec.Options)
		case "right", " ":
			field.choice = (field.choice + 1) % len(field.spec.Options)
		}
		return f, nil
	case profile.KindYesNo:
		switch msg.String() {
		case " ", "left", "right":
			field.yes = !field.yes
		}
		return f, nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return f, cmd
}

// info reads the form into a profile. Numbers that do not parse are
// reported here; everything else is left to [profile.Info.Validate].
func (f form) info() (profile.Info, error) {
	var info profile.Info
	var errs []error
	for i, field := range f.fields {
		if !f.visible(i) {
			continue
		}
		value := strings.TrimSpace(field.input.Value())
		switch field.spec.Field {
		case profile.FieldName:
			info.Name = value
		case profile.FieldAge:
			n, err := parseNumber(value)
			if err != nil {
				errs = append(errs, &profile.FieldError{Field: field.spec.Field, Reason: err.Error()})
			}
			info.Age = n
		case profile.FieldCategory:
			if field.choice >= 0 {
				info.Category = profile.Category(field.spec.Options[field.choice])
			}
		case profile.FieldIsTribal:
			info.IsTribal = field.yes
		case profile.FieldMonthlyIncome:
			n, err := parseNumber(value)
			if err != nil {
				errs = append(errs, &profile.FieldError{Field: field.spec.Field, Reason: err.Error()})
			}
			info.MonthlyIncome = n
		case profile.FieldHasBankAccount:
			info.HasBankAccount = field.yes
		case profile.FieldBankName:
			info.BankName = value
		}
	}
	return info, errors.Join(errs...)
}

func parseNumber(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", value)
	}
	return n, nil
}

func (f form) view() string {
	var b strings.Builder
	for i, field := range f.fields {
		if !f.visible(i) {
			continue
		}
		label := profile.Label(f.text, field.spec.Field)
		if i == f.focus {
			label = cursorStyle.Render("› " + label)
		} else {
			label = "  " + label
		}

		var value string
		switch field.spec.Kind {
		case profile.KindChoice:
			value = f.text.CategoryOptions.Select
			if field.choice >= 0 {
				value = profile.CategoryLabel(f.text, profile.Category(field.spec.Options[field.choice]))
			}
			value = "‹ " + value + " ›"
		case profile.KindYesNo:
			value = "[ ]"
			if field.yes {
				value = "[x]"
			}
		default:
			value = field.input.View()
		}
		fmt.Fprintf(&b, "%s\n    %s\n", label, value)
	}

	b.WriteString("\n" + buttonStyle.Render(f.text.Submit) + "\n")
	if f.err != nil {
		b.WriteString("\n" + errorStyle.Render(f.err.Error()) + "\n")
	}
	return b.String()
}
