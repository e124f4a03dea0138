// Package stage defines the canonical pipeline stage model: the ordered
// vocabulary of active-role stages and the set of closed-role outcomes.
// Exactly one Model exists per build; every component that needs stage
// order or stage identifiers receives it from here.
package stage

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stages.yaml
var defaultModelYAML []byte

// Well-known stage names used for KPI thresholds.
const (
	Applied     = "Applied"
	PhoneScreen = "Phone Screen"
)

// Model holds the ordered stage list and the closed-role outcome set.
// Order encodes progression; index comparison is the sole ordering
// mechanism used throughout the build.
type Model struct {
	Stages   []string `yaml:"stages"`
	Outcomes []string `yaml:"outcomes"`

	index map[string]int
}

// Default returns the built-in stage model embedded in the binary.
func Default() *Model {
	m, err := parse(defaultModelYAML)
	if err != nil {
		// The embedded document is fixed at compile time; a parse failure
		// here is a programming error.
		panic(fmt.Sprintf("embedded stage model is invalid: %v", err))
	}
	return m
}

// Load reads a stage model override from a YAML file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage model file %s: %w", path, err)
	}
	m, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stage model file %s: %w", path, err)
	}
	return m, nil
}

func parse(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse stage model YAML: %w", err)
	}
	if len(m.Stages) < 2 {
		return nil, fmt.Errorf("stage model must define at least two stages, got %d", len(m.Stages))
	}
	m.index = make(map[string]int, len(m.Stages))
	for i, s := range m.Stages {
		if s == "" {
			return nil, fmt.Errorf("stage model contains an empty stage name at position %d", i)
		}
		if _, dup := m.index[s]; dup {
			return nil, fmt.Errorf("stage model contains duplicate stage %q", s)
		}
		m.index[s] = i
	}
	return &m, nil
}

// Index returns the ordinal of a stage in the progression, or -1 if the
// stage is not part of the model.
func (m *Model) Index(stage string) int {
	if i, ok := m.index[stage]; ok {
		return i
	}
	return -1
}

// Valid reports whether a stage name belongs to the model.
func (m *Model) Valid(stage string) bool {
	_, ok := m.index[stage]
	return ok
}

// ValidOutcome reports whether an outcome belongs to the closed-role
// outcome set.
func (m *Model) ValidOutcome(outcome string) bool {
	for _, o := range m.Outcomes {
		if o == outcome {
			return true
		}
	}
	return false
}

// AtOrAfter reports whether stage sits at or past threshold in the
// progression. Unknown stages are never at-or-after anything.
func (m *Model) AtOrAfter(stage, threshold string) bool {
	si, ti := m.Index(stage), m.Index(threshold)
	if si < 0 || ti < 0 {
		return false
	}
	return si >= ti
}

// ClassName converts a stage name to its machine-safe form for CSS
// classes and data attributes: lowercased, whitespace runs collapsed to
// a single hyphen. This is the only stage-to-identifier conversion in
// the codebase.
func ClassName(stage string) string {
	return strings.Join(strings.Fields(strings.ToLower(stage)), "-")
}
