package report

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed mock.yaml
var mockPayload []byte

var mock *Analysis

// nolint:gochecknoinits // the embedded payload is static and must always parse.
func init() {
	a, err := Parse(mockPayload)
	if err != nil {
		panic(fmt.Sprintf("report: embedded mock payload: %v", err))
	}
	mock = a
}

// Mock returns a fresh copy of the fixed demonstration payload.
func Mock() *Analysis {
	return mock.Clone()
}

// Parse decodes a YAML analysis payload.
func Parse(data []byte) (*Analysis, error) {
	var a Analysis

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	for i := range a.Images {
		for j := range a.Images[i].Annotations {
			ann := &a.Images[i].Annotations[j]
			ann.Color = ann.Color.Normalize()
		}
	}

	return &a, nil
}

// Load reads a YAML analysis payload from path.
func Load(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return Parse(data)
}

// Source produces the analysis for a listing URL.
type Source interface {
	Fetch(ctx context.Context, listingURL string) (*Analysis, error)
}

// StaticSource always returns a copy of the same payload regardless of the
// listing URL.
type StaticSource struct {
	payload *Analysis
}

// NewMockSource returns a source serving the embedded demonstration payload.
func NewMockSource() *StaticSource {
	return &StaticSource{payload: mock}
}

// NewStaticSource returns a source serving payload.
func NewStaticSource(payload *Analysis) *StaticSource {
	return &StaticSource{payload: payload}
}

// Fetch implements Source.
func (s *StaticSource) Fetch(ctx context.Context, _ string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.payload.Clone(), nil
}

var _ Source = (*StaticSource)(nil)
