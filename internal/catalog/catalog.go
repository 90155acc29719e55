// Package catalog holds the immutable keyword-to-ailment reference table.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"symptomcheck/internal/config"
	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

// ErrAilmentNotFound is returned when an ailment ID is not in the catalog.
var ErrAilmentNotFound = errors.New("ailment not found")

// Entry maps one canonical keyword to its ordered ailments.
type Entry struct {
	Keyword  string
	Ailments []models.Ailment
}

// Catalog is built once at startup and shared read-only; none of its methods
// mutate it, so it needs no locking.
type Catalog struct {
	entries []Entry
	byID    map[string]models.Ailment
	common  []string
}

// New validates entries and builds a catalog. Keyword order is registration
// order and is preserved by Match.
func New(entries []Entry, common []string) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]models.Ailment),
		common:  append([]string(nil), common...),
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		keyword := validation.NormalizeQuery(e.Keyword)
		if keyword == "" {
			return nil, errors.New("catalog keyword must not be empty")
		}
		if keyword != e.Keyword {
			return nil, fmt.Errorf("catalog keyword %q must be trimmed and lowercase", e.Keyword)
		}
		if seen[keyword] {
			return nil, fmt.Errorf("duplicate catalog keyword %q", keyword)
		}
		seen[keyword] = true

		for _, a := range e.Ailments {
			if a.ID == "" {
				return nil, fmt.Errorf("ailment under %q has no id", keyword)
			}
			if !models.IsValidSeverity(a.Severity) {
				return nil, fmt.Errorf("ailment %s has invalid severity %q", a.ID, a.Severity)
			}
			// An ailment may be listed under several keywords; the first one registered wins.
			if _, ok := c.byID[a.ID]; !ok {
				c.byID[a.ID] = a.Clone()
			}
		}

		c.entries = append(c.entries, Entry{
			Keyword:  keyword,
			Ailments: cloneAilments(e.Ailments),
		})
	}

	return c, nil
}

// Match returns the ailments of every keyword that contains the normalized
// query or is contained by it. Results follow keyword registration order and
// then each keyword's ailment order. Ailments reachable through several
// keywords are repeated.
func (c *Catalog) Match(normalized string) []models.Ailment {
	var results []models.Ailment
	for _, e := range c.entries {
		if strings.Contains(e.Keyword, normalized) || strings.Contains(normalized, e.Keyword) {
			for _, a := range e.Ailments {
				results = append(results, a.Clone())
			}
		}
	}
	return results
}

// Keywords returns the registered keywords in order.
func (c *Catalog) Keywords() []string {
	keywords := make([]string, len(c.entries))
	for i, e := range c.entries {
		keywords[i] = e.Keyword
	}
	return keywords
}

// Entries returns a deep copy of the keyword table.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Keyword: e.Keyword, Ailments: cloneAilments(e.Ailments)}
	}
	return out
}

// CommonSymptoms returns the quick-pick symptom phrases.
func (c *Catalog) CommonSymptoms() []string {
	return append([]string(nil), c.common...)
}

// Ailment looks up an ailment by ID.
func (c *Catalog) Ailment(id string) (models.Ailment, error) {
	a, ok := c.byID[id]
	if !ok {
		return models.Ailment{}, ErrAilmentNotFound
	}
	return a.Clone(), nil
}

func cloneAilments(in []models.Ailment) []models.Ailment {
	out := make([]models.Ailment, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

// Load returns the catalog described by file, or the built-in catalog when
// file is nil. A file without keywords keeps the built-in keyword table, and
// one without common symptoms keeps the built-in list.
func Load(file *config.CatalogFile) (*Catalog, error) {
	if file == nil {
		return Default(), nil
	}

	entries := defaultEntries
	if len(file.Keywords) > 0 {
		entries = make([]Entry, 0, len(file.Keywords))
		for _, k := range file.Keywords {
			entries = append(entries, Entry{Keyword: k.Keyword, Ailments: k.Ailments})
		}
	}

	common := file.CommonSymptoms
	if len(common) == 0 {
		common = defaultCommonSymptoms
	}

	return New(entries, common)
}
