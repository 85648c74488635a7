// Package catalog loads the read-only camp catalog: school districts,
// neighborhoods, the category taxonomy, subcategory adjacency and the camp
// entries. The built-in catalog is embedded; an external YAML file may
// replace it and be reloaded at runtime.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/planner"
)

//go:embed data/catalog.yaml
var embedded []byte

var weekIDPattern = regexp.MustCompile(`^w\d{2}$`)

// SubcategoryGroup lists the subcategories of one category in display order.
type SubcategoryGroup struct {
	Category string               `json:"category" yaml:"category"`
	Items    []domain.Subcategory `json:"items" yaml:"items"`
}

// Catalog is the decoded catalog document.
type Catalog struct {
	Districts     []domain.District         `json:"districts" yaml:"districts"`
	Areas         []domain.NeighborhoodArea `json:"areas" yaml:"areas"`
	Categories    []domain.Category         `json:"categories" yaml:"categories"`
	Subcategories []SubcategoryGroup        `json:"subcategories" yaml:"subcategories"`
	Adjacency     map[string][]string       `json:"adjacency" yaml:"adjacency"`
	Entries       []domain.CatalogEntry     `json:"entries" yaml:"entries"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog. Unknown fields are rejected. Referential
// problems are not checked here; see Check.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range c.Subcategories {
		g := &c.Subcategories[i]
		for j := range g.Items {
			g.Items[j].Category = g.Category
		}
	}
	for i := range c.Entries {
		if c.Entries[i].Tags == nil {
			c.Entries[i].Tags = []string{}
		}
		if c.Entries[i].Weeks == nil {
			c.Entries[i].Weeks = []string{}
		}
	}
	return &c, nil
}

// DistrictMap indexes districts by id.
func (c *Catalog) DistrictMap() map[string]domain.District {
	m := make(map[string]domain.District, len(c.Districts))
	for _, d := range c.Districts {
		m[d.ID] = d
	}
	return m
}

// SubcategoryMap indexes subcategories by id.
func (c *Catalog) SubcategoryMap() map[string]domain.Subcategory {
	m := map[string]domain.Subcategory{}
	for _, g := range c.Subcategories {
		for _, s := range g.Items {
			m[s.ID] = s
		}
	}
	return m
}

// AdjacencyMap returns the subcategory adjacency relation.
func (c *Catalog) AdjacencyMap() domain.AdjacencyMap {
	return domain.NewAdjacencyMap(c.Adjacency)
}

// Neighborhoods returns every neighborhood id across all areas.
func (c *Catalog) Neighborhoods() []string {
	var ids []string
	for _, a := range c.Areas {
		for _, n := range a.Neighborhoods {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Problem is one referential inconsistency found by Check.
type Problem struct {
	Where   string `json:"where"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return p.Where + ": " + p.Message
}

// Check reports duplicate ids, entries pointing at unknown categories,
// subcategories or neighborhoods, malformed week ids and adjacency edges
// naming unknown subcategories.
//
//nolint:gocyclo // One pass per table keeps the checks readable.
func (c *Catalog) Check() []Problem {
	var problems []Problem
	add := func(where, format string, args ...any) {
		problems = append(problems, Problem{Where: where, Message: fmt.Sprintf(format, args...)})
	}

	districts := map[string]bool{}
	for _, d := range c.Districts {
		where := "district " + d.ID
		if d.ID == "" {
			add("districts", "district without id")
			continue
		}
		if districts[d.ID] {
			add(where, "duplicate id")
		}
		districts[d.ID] = true
		if (d.LastDay == nil) != (d.FirstDay == nil) {
			add(where, "lastDay and firstDay must both be set or both be null")
		}
		for _, day := range []*string{d.LastDay, d.FirstDay} {
			if day != nil && !validDate(*day) {
				add(where, "invalid date %q", *day)
			}
		}
	}

	neighborhoods := map[string]bool{}
	for _, id := range c.Neighborhoods() {
		if neighborhoods[id] {
			add("neighborhood "+id, "duplicate id")
		}
		neighborhoods[id] = true
	}

	categories := map[string]bool{}
	for _, cat := range c.Categories {
		if categories[cat.ID] {
			add("category "+cat.ID, "duplicate id")
		}
		categories[cat.ID] = true
	}

	subcategories := map[string]string{}
	for _, g := range c.Subcategories {
		if !categories[g.Category] {
			add("subcategories", "group for unknown category %q", g.Category)
		}
		for _, s := range g.Items {
			if _, dup := subcategories[s.ID]; dup {
				add("subcategory "+s.ID, "duplicate id")
			}
			subcategories[s.ID] = g.Category
		}
	}

	for from, targets := range c.Adjacency {
		if _, ok := subcategories[from]; !ok {
			add("adjacency "+from, "unknown subcategory")
		}
		for _, to := range targets {
			if _, ok := subcategories[to]; !ok {
				add("adjacency "+from, "unknown target %q", to)
			}
		}
	}

	entries := map[string]bool{}
	for _, e := range c.Entries {
		where := "entry " + e.ID
		if e.ID == "" {
			add("entries", "entry %q without id", e.Name)
			continue
		}
		if entries[e.ID] {
			add(where, "duplicate id")
		}
		entries[e.ID] = true
		if !categories[e.Category] {
			add(where, "unknown category %q", e.Category)
		}
		if cat, ok := subcategories[e.Subcategory]; !ok {
			add(where, "unknown subcategory %q", e.Subcategory)
		} else if cat != e.Category {
			add(where, "subcategory %q belongs to %q, not %q", e.Subcategory, cat, e.Category)
		}
		if !neighborhoods[e.Neighborhood] {
			add(where, "unknown neighborhood %q", e.Neighborhood)
		}
		for _, w := range e.Weeks {
			if !weekIDPattern.MatchString(w) {
				add(where, "malformed week id %q", w)
			}
		}
	}

	slices.SortStableFunc(problems, func(a, b Problem) int {
		return strings.Compare(a.Where, b.Where)
	})
	return problems
}

func validDate(s string) bool {
	_, ok := planner.ParseDate(s)
	return ok
}
