// Package static serves the portfolio content compiled into the binary.
package static

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

//go:embed content.yaml
var embedded []byte

// Source implements ports.ContentSource from a YAML document
type Source struct {
	portfolio domain.Portfolio
	skies     map[string]*domain.Sky
}

// Ensure Source implements ContentSource
var _ ports.ContentSource = (*Source)(nil)

// Load decodes the embedded content and validates every sky
func Load() (*Source, error) {
	return Parse(embedded)
}

// MustLoad is Load for callers that cannot continue without content
func MustLoad() *Source {
	src, err := Load()
	if err != nil {
		panic(err)
	}
	return src
}

// Parse decodes a content document and validates every sky
func Parse(data []byte) (*Source, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	src := &Source{
		portfolio: doc.Portfolio.toDomain(),
		skies:     make(map[string]*domain.Sky, len(doc.Skies)),
	}
	for name, s := range doc.Skies {
		sky := s.toDomain(name)
		if err := sky.Validate(); err != nil {
			return nil, fmt.Errorf("invalid content: %w", err)
		}
		src.skies[name] = sky
	}
	if _, ok := src.skies[ports.SkyNav]; !ok {
		return nil, fmt.Errorf("invalid content: missing %q sky", ports.SkyNav)
	}
	return src, nil
}

// Portfolio returns the panel content
func (s *Source) Portfolio() domain.Portfolio {
	return s.portfolio
}

// Sky returns a copy of the named diagram
func (s *Source) Sky(name string) (*domain.Sky, error) {
	sky, ok := s.skies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSky, name)
	}
	cp := *sky
	cp.Stars = slices.Clone(sky.Stars)
	cp.Decor = slices.Clone(sky.Decor)
	cp.Edges = slices.Clone(sky.Edges)
	return &cp, nil
}
