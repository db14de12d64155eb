package deepgram

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

type Voice string

const (
	VoiceThalia    Voice = "aura-2-thalia-en"
	VoiceAndromeda Voice = "aura-2-andromeda-en"
	VoiceHelena    Voice = "aura-2-helena-en"
	VoiceCeleste   Voice = "aura-2-celeste-es"
	VoiceEstrella  Voice = "aura-2-estrella-es"

	DefaultVoice = VoiceThalia
)

// DefaultVoices maps locales to voices. Deepgram has no voices for Indian
// languages yet, so narration in those locales uses the default voice until
// one is configured with [WithVoice].
func DefaultVoices() map[string]Voice {
	return map[string]Voice{
		"en": VoiceThalia,
		"es": VoiceCeleste,
	}
}

// voiceTable picks the voice of the closest configured locale.
type voiceTable struct {
	voices   []Voice
	matcher  language.Matcher
	fallback Voice
}

func newVoiceTable(voices map[string]Voice, fallback Voice) (*voiceTable, error) {
	locales := make([]string, 0, len(voices))
	for locale := range voices {
		locales = append(locales, locale)
	}
	slices.Sort(locales)

	table := &voiceTable{fallback: fallback}
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("voice locale %q: %w", locale, err)
		}
		tags = append(tags, tag)
		table.voices = append(table.voices, voices[locale])
	}
	table.matcher = language.NewMatcher(tags)
	return table, nil
}

// For returns the voice for localeTag and whether it matched a configured
// locale.
func (t *voiceTable) For(localeTag string) (Voice, bool) {
	if len(t.voices) == 0 {
		return t.fallback, false
	}
	tag, err := language.Parse(localeTag)
	if err != nil {
		return t.fallback, false
	}
	_, index, confidence := t.matcher.Match(tag)
	if confidence == language.No {
		return t.fallback, false
	}
	return t.voices[index], true
}
