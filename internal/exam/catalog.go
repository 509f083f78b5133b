package exam

import (
	"strings"
	"sync"

	"exam-simulator/internal/poolfile"
)

// Catalog is the validated, read-mostly question pool grouped by discipline.
// Disciplines keep the pool-file order, which is also the allocator's
// deterministic input order. Replace swaps the whole pool at once.
type Catalog struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Discipline
}

// BuildCatalog validates raw pool records into a Catalog. Structurally
// invalid questions are dropped here, never at selection time; disciplines
// left with no valid questions are dropped too.
func BuildCatalog(raw []poolfile.RawDiscipline) *Catalog {
	c := &Catalog{byName: make(map[string]Discipline)}
	c.load(raw)
	return c
}

// Replace reloads the catalog from raw records, replace-all semantics.
func (c *Catalog) Replace(raw []poolfile.RawDiscipline) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.byName = make(map[string]Discipline)
	c.load(raw)
}

func (c *Catalog) load(raw []poolfile.RawDiscipline) {
	for _, rawDiscipline := range raw {
		name := strings.TrimSpace(rawDiscipline.Name)
		if name == "" {
			continue
		}
		if _, exists := c.byName[name]; exists {
			continue
		}

		questions := make([]Question, 0, len(rawDiscipline.Questions))
		for _, rawQuestion := range rawDiscipline.Questions {
			question, ok := buildQuestion(rawQuestion)
			if !ok {
				continue
			}
			questions = append(questions, question)
		}
		if len(questions) == 0 {
			continue
		}

		c.order = append(c.order, name)
		c.byName[name] = Discipline{Name: name, Questions: questions}
	}
}

// Disciplines returns all disciplines in pool-file order. The returned
// slices are shared read-only state.
func (c *Catalog) Disciplines() []Discipline {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Discipline, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func (c *Catalog) Discipline(name string) (Discipline, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	discipline, ok := c.byName[name]
	return discipline, ok
}

func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}
