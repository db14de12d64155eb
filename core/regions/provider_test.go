package regions

import (
	"errors"
	"strings"
	"testing"
)

func TestStaticProviderCoversEveryRegion(t *testing.T) {
	provider := NewStaticProvider()

	if err := provider.Validate(); err != nil {
		t.Fatalf("expected built-in content to be complete, got %v", err)
	}

	expectedLocales := map[Region]string{Delhi: "hi-IN", WestBengal: "bn-IN", TamilNadu: "ta-IN"}
	for region, locale := range expectedLocales {
		content, err := provider.Content(region)
		if err != nil {
			t.Fatalf("expected content for %v, got %v", region, err)
		}
		if content.LocaleTag != locale {
			t.Fatalf("expected locale %q for %v, got %q", locale, region, content.LocaleTag)
		}
	}
}

func TestFallbackContentIsComplete(t *testing.T) {
	if err := Fallback().Validate(); err != nil {
		t.Fatalf("expected fallback content to be complete, got %v", err)
	}
}

func TestStaticProviderRejectsUnknownRegion(t *testing.T) {
	provider := NewStaticProvider()

	for _, region := range []Region{0, regionEnd, Region(42)} {
		if _, err := provider.Content(region); !errors.Is(err, ErrUnknownRegion) {
			t.Fatalf("expected ErrUnknownRegion for %v, got %v", region, err)
		}
	}
}

func TestParseAcceptsIDAndDisplayName(t *testing.T) {
	for _, input := range []string{"west_bengal", "West Bengal"} {
		region, err := Parse(input)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", input, err)
		}
		if region != WestBengal {
			t.Fatalf("expected %q to parse to West Bengal, got %v", input, region)
		}
	}

	if _, err := Parse("kerala"); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
}

func TestLoadOverlaysNonEmptyStrings(t *testing.T) {
	provider := NewStaticProvider()

	pack := `
delhi:
  strings:
    welcome: "Swagat hai"
    category_options:
      general: "Samanya"
`
	if err := provider.Load(strings.NewReader(pack)); err != nil {
		t.Fatalf("expected content pack to load, got %v", err)
	}

	content, err := provider.Content(Delhi)
	if err != nil {
		t.Fatalf("expected content, got %v", err)
	}
	if content.Strings.Welcome != "Swagat hai" {
		t.Fatalf("expected overridden welcome, got %q", content.Strings.Welcome)
	}
	if content.Strings.CategoryOptions.General != "Samanya" {
		t.Fatalf("expected overridden category option, got %q", content.Strings.CategoryOptions.General)
	}
	if content.Strings.FillDetails != table[Delhi].Strings.FillDetails {
		t.Fatalf("expected untouched strings to keep built-in value, got %q", content.Strings.FillDetails)
	}
	if content.LocaleTag != "hi-IN" {
		t.Fatalf("expected locale to stay hi-IN, got %q", content.LocaleTag)
	}
}

func TestLoadRejectsInvalidPackWithoutApplyingIt(t *testing.T) {
	provider := NewStaticProvider()

	if err := provider.Load(strings.NewReader("delhi:\n  locale: \"not a tag!\"\n")); err == nil {
		t.Fatalf("expected invalid locale to be rejected")
	}
	if err := provider.Load(strings.NewReader("kerala:\n  locale: ml-IN\n")); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected unknown region to be rejected, got %v", err)
	}
	if err := provider.Load(strings.NewReader("delhi:\n  colour: red\n")); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}

	content, _ := provider.Content(Delhi)
	if content.LocaleTag != "hi-IN" {
		t.Fatalf("expected rejected pack to leave content untouched, got locale %q", content.LocaleTag)
	}
}

func TestContentValidateListsEmptyStrings(t *testing.T) {
	content := Fallback()
	content.Strings.SchemeInfo = ""
	content.Strings.CategoryOptions.ST = ""

	err := content.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, name := range []string{"strings.scheme_info", "strings.category_options.st"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected error to mention %s, got %v", name, err)
		}
	}
}
