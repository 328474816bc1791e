// Package report defines the accessibility analysis payload shown by accessihome.
package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Status is the outcome of a single accessibility check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// Known reports whether s is one of pass, fail or warn.
func (s Status) Known() bool {
	switch s {
	case StatusPass, StatusFail, StatusWarn:
		return true
	default:
		return false
	}
}

// Icon returns the single character marker for the status.
func (s Status) Icon() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusFail:
		return "✗"
	case StatusWarn:
		return "!"
	default:
		return "?"
	}
}

// Section groups detail items in the accordion.
type Section string

const (
	SectionEntrances Section = "entrances"
	SectionInterior  Section = "interior"
	SectionKitchen   Section = "kitchen"
	SectionBathroom  Section = "bathroom"
)

// knownSections is the display order of the built-in sections.
var knownSections = []Section{
	SectionEntrances,
	SectionInterior,
	SectionKitchen,
	SectionBathroom,
}

var sectionTitles = map[Section]string{
	SectionEntrances: "Entrances & Exterior Pathways",
	SectionInterior:  "Interior Doors & Hallways",
	SectionKitchen:   "Kitchen",
	SectionBathroom:  "Bathroom",
}

// Title returns the heading shown for the section. Sections without a
// built-in title are shown by key with the first letter upper-cased.
func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Color names the tint of an annotation overlay.
type Color string

const (
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorDefault Color = "default"
)

// Normalize maps unknown colors to ColorDefault.
func (c Color) Normalize() Color {
	switch c {
	case ColorRed, ColorGreen, ColorOrange, ColorYellow, ColorBlue:
		return c
	default:
		return ColorDefault
	}
}

// Percent is an offset or size relative to the image container, in percent.
// It is written as "NN%" in payloads.
type Percent float64

// ParsePercent parses strings such as "70%" or "12.5%".
func ParsePercent(s string) (Percent, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasSuffix(raw, "%") {
		return 0, fmt.Errorf("percentage %q: missing %% suffix", s)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(raw, "%")), 64)
	if err != nil {
		return 0, fmt.Errorf("percentage %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("percentage %q: not a finite number", s)
	}

	return Percent(v), nil
}

// Fraction returns the percentage as a fraction of 1.
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

func (p *Percent) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParsePercent(node.Value)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Percent) MarshalYAML() (any, error) {
	return p.String(), nil
}

func (p Percent) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Percent) UnmarshalText(b []byte) error {
	v, err := ParsePercent(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Box is a rectangle positioned relative to the image container.
type Box struct {
	Top    Percent `yaml:"top"    json:"top"`
	Left   Percent `yaml:"left"   json:"left"`
	Width  Percent `yaml:"width"  json:"width"`
	Height Percent `yaml:"height" json:"height"`
}

// Annotation is a labeled region overlaid on an image.
type Annotation struct {
	Label string `yaml:"label" json:"label"`
	Box   Box    `yaml:"box"   json:"box"`
	Color Color  `yaml:"color" json:"color"`
}

// Image is a property photo with its annotations, in drawing order.
type Image struct {
	URL         string       `yaml:"url"         json:"url"`
	Annotations []Annotation `yaml:"annotations" json:"annotations"`
}

// DetailItem is a single named accessibility check.
type DetailItem struct {
	ID          int    `yaml:"id"          json:"id"`
	Name        string `yaml:"name"        json:"name"`
	Status      Status `yaml:"status"      json:"status"`
	Description string `yaml:"description" json:"description"`
}

// Flags are the headline findings of an analysis.
type Flags struct {
	Green []string `yaml:"green_flags" json:"greenFlags"`
	Red   []string `yaml:"red_flags"   json:"redFlags"`
}

// Analysis is the full accessibility report for one listing.
type Analysis struct {
	OverallScore int                      `yaml:"overall_score" json:"overallScore"`
	Summary      string                   `yaml:"summary"       json:"summary"`
	Flags        Flags                    `yaml:"flags"         json:"flags"`
	Details      map[Section][]DetailItem `yaml:"details"       json:"details"`
	Images       []Image                  `yaml:"images"        json:"images"`
}

// Sections returns the sections present in the analysis: built-in sections
// first in their fixed order, then any others sorted by key.
func (a *Analysis) Sections() []Section {
	out := make([]Section, 0, len(a.Details))
	for _, s := range knownSections {
		if _, ok := a.Details[s]; ok {
			out = append(out, s)
		}
	}

	var extra []Section
	for s := range a.Details {
		if _, ok := sectionTitles[s]; !ok {
			extra = append(extra, s)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(out, extra...)
}

// Clone returns a deep copy of the analysis.
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}

	out := &Analysis{
		OverallScore: a.OverallScore,
		Summary:      a.Summary,
		Flags: Flags{
			Green: append([]string(nil), a.Flags.Green...),
			Red:   append([]string(nil), a.Flags.Red...),
		},
		Details: make(map[Section][]DetailItem, len(a.Details)),
		Images:  make([]Image, len(a.Images)),
	}

	for s, items := range a.Details {
		out.Details[s] = append([]DetailItem(nil), items...)
	}
	for i, img := range a.Images {
		out.Images[i] = Image{
			URL:         img.URL,
			Annotations: append([]Annotation(nil), img.Annotations...),
		}
	}

	return out
}

// Band classifies an overall score.
type Band int

const (
	BandPoor Band = iota
	BandFair
	BandGood
)

// ScoreBand returns the band for a 0-100 score.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandFair:
		return "fair"
	default:
		return "poor"
	}
}
