package curriculum

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed curriculum.yaml
var curriculumYAML []byte

// ErrLessonNotFound is returned when a lesson ID does not resolve.
var ErrLessonNotFound = errors.New("lesson not found")

// Catalog is the read-only, ordered lesson catalog.
type Catalog struct {
	phases  []Phase
	order   []string
	byID    map[string]*Lesson
	phaseOf map[string]int
	index   map[string]int
}

// def is the package-level catalog built from the embedded curriculum.
var def *Catalog

func init() {
	c, err := Parse(curriculumYAML)
	if err != nil {
		panic(fmt.Sprintf("curriculum: %v", err))
	}
	def = c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return def
}

// Parse decodes and validates a YAML curriculum document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	return New(doc.Phases)
}

// New builds a catalog from phases in declaration order.
// Navigation order is phase order, then lesson order within each phase.
func New(phases []Phase) (*Catalog, error) {
	if err := validatePhases(phases); err != nil {
		return nil, err
	}

	c := &Catalog{
		phases:  phases,
		byID:    make(map[string]*Lesson),
		phaseOf: make(map[string]int),
		index:   make(map[string]int),
	}
	for pi := range c.phases {
		for li := range c.phases[pi].Lessons {
			l := &c.phases[pi].Lessons[li]
			c.index[l.ID] = len(c.order)
			c.order = append(c.order, l.ID)
			c.byID[l.ID] = l
			c.phaseOf[l.ID] = pi
		}
	}
	return c, nil
}

// Get returns a lesson and its phase by ID.
func (c *Catalog) Get(id string) (Lesson, Phase, error) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, Phase{}, fmt.Errorf("%w: %q", ErrLessonNotFound, id)
	}
	return *l, c.phases[c.phaseOf[id]], nil
}

// Has reports whether id names a lesson in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// First returns the ID of the first lesson of the first phase.
func (c *Catalog) First() string {
	return c.order[0]
}

// Next returns the ID of the lesson following id. The second result is
// false when id is the final lesson or is unknown.
func (c *Catalog) Next(id string) (string, bool) {
	i, ok := c.index[id]
	if !ok || i+1 >= len(c.order) {
		return "", false
	}
	return c.order[i+1], true
}

// Position returns the 1-based position of id in navigation order, or 0.
func (c *Catalog) Position(id string) int {
	i, ok := c.index[id]
	if !ok {
		return 0
	}
	return i + 1
}

// Total returns the number of lessons across all phases.
func (c *Catalog) Total() int {
	return len(c.order)
}

// IDs returns all lesson IDs in navigation order.
func (c *Catalog) IDs() []string {
	return slices.Clone(c.order)
}

// Phases returns a copy of all phases.
func (c *Catalog) Phases() []Phase {
	return slices.Clone(c.phases)
}

// Lessons returns all lessons in navigation order.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}
