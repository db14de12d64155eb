package regions

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider supplies the localized content of a region.
type Provider interface {
	Content(region Region) (Content, error)
}

// StaticProvider serves the built-in content table, optionally overlaid by a
// content pack.
type StaticProvider struct {
	content [regionEnd]Content
}

var _ Provider = (*StaticProvider)(nil)

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{content: table}
}

func (p *StaticProvider) Content(region Region) (Content, error) {
	if !region.Valid() {
		return Content{}, fmt.Errorf("%w: %v", ErrUnknownRegion, region)
	}
	content := p.content[region]
	if content.LocaleTag == "" {
		return Content{}, fmt.Errorf("%w: %v", ErrContentNotFound, region)
	}
	return content, nil
}

// Validate checks that every region has complete content. It is meant to run
// once at startup so a broken content pack is rejected before any narration.
func (p *StaticProvider) Validate() error {
	var errs []error
	for _, region := range All() {
		content, err := p.Content(region)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := content.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", region.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// LoadFile overlays the content pack at path onto the built-in content.
func (p *StaticProvider) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("regions: open %q: %w", path, err)
	}
	defer f.Close()

	if err := p.Load(f); err != nil {
		return fmt.Errorf("regions: load %q: %w", path, err)
	}
	return nil
}

// Load overlays a YAML content pack keyed by region ID. Only non-empty
// strings replace the built-in ones.
func (p *StaticProvider) Load(r io.Reader) error {
	pack := map[string]Content{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pack); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}

	next := p.content
	for id, override := range pack {
		region, err := Parse(id)
		if err != nil {
			return err
		}
		next[region] = next[region].merge(override)
	}

	candidate := &StaticProvider{content: next}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("invalid content pack: %w", err)
	}
	p.content = next
	return nil
}
