package regions

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/text/language"
)

// Content is everything the wizard narrates or displays for one region.
type Content struct {
	LocaleTag string  `yaml:"locale"`
	Strings   Strings `yaml:"strings"`
}

// Strings holds the localized narration and UI text of a region.
type Strings struct {
	StateName string `yaml:"state_name"`

	Welcome     string `yaml:"welcome"`
	FillDetails string `yaml:"fill_details"`

	Name            string          `yaml:"name"`
	Age             string          `yaml:"age"`
	Category        string          `yaml:"category"`
	CategoryOptions CategoryOptions `yaml:"category_options"`
	IsTribal        string          `yaml:"is_tribal"`
	MonthlyIncome   string          `yaml:"monthly_income"`
	HasBankAccount  string          `yaml:"has_bank_account"`
	BankName        string          `yaml:"bank_name"`
	Submit          string          `yaml:"submit"`

	Advice        string `yaml:"advice"`
	ChatbotPrompt string `yaml:"chatbot_prompt"`

	ChatbotButton           string `yaml:"chatbot_button"`
	ChatbotTitle            string `yaml:"chatbot_title"`
	ChatbotWelcome          string `yaml:"chatbot_welcome"`
	ChatbotInputPlaceholder string `yaml:"chatbot_input_placeholder"`
	ChatbotSendButton       string `yaml:"chatbot_send_button"`
	ChatbotDefaultResponse  string `yaml:"chatbot_default_response"`
	SchemeInfo              string `yaml:"scheme_info"`
}

type CategoryOptions struct {
	Select  string `yaml:"select"`
	General string `yaml:"general"`
	OBC     string `yaml:"obc"`
	SC      string `yaml:"sc"`
	ST      string `yaml:"st"`
}

// Validate reports every empty string and an unparsable locale tag.
func (c Content) Validate() error {
	var errs []error
	if _, err := language.Parse(c.LocaleTag); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", c.LocaleTag, err))
	}
	for _, name := range emptyFields(reflect.ValueOf(c.Strings), "") {
		errs = append(errs, fmt.Errorf("strings.%s is empty", name))
	}
	return errors.Join(errs...)
}

// Language returns the parsed locale tag, or English when it does not parse.
func (c Content) Language() language.Tag {
	tag, err := language.Parse(c.LocaleTag)
	if err != nil {
		return language.English
	}
	return tag
}

func emptyFields(v reflect.Value, prefix string) []string {
	var empty []string
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		name := prefix + field.Tag.Get("yaml")
		switch value := v.Field(i); value.Kind() {
		case reflect.String:
			if value.String() == "" {
				empty = append(empty, name)
			}
		case reflect.Struct:
			empty = append(empty, emptyFields(value, name+".")...)
		}
	}
	return empty
}

// merge overlays every non-empty string of override onto c.
func (c Content) merge(override Content) Content {
	if override.LocaleTag != "" {
		c.LocaleTag = override.LocaleTag
	}
	mergeStrings(reflect.ValueOf(&c.Strings).Elem(), reflect.ValueOf(override.Strings))
	return c
}

func mergeStrings(dst, src reflect.Value) {
	for i := range dst.NumField() {
		switch value := src.Field(i); value.Kind() {
		case reflect.String:
			if value.String() != "" {
				dst.Field(i).SetString(value.String())
			}
		case reflect.Struct:
			mergeStrings(dst.Field(i), value)
		}
	}
}
