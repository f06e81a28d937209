package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyejin/scholarhub/internal/app/models"
)

// Catalog is the read-only scholarship and competition listing. It is
// built once at startup and injected into the scholarship service;
// entries keep their insertion order.
type Catalog struct {
	entries []models.Scholarship
	byID    map[string]int
}

// New creates a catalog from the given entries, preserving order.
// Duplicate ids keep the first entry.
func New(entries []models.Scholarship) *Catalog {
	c := &Catalog{
		entries: make([]models.Scholarship, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if _, exists := c.byID[entry.ID]; exists {
			continue
		}
		c.byID[entry.ID] = len(c.entries)
		c.entries = append(c.entries, entry)
	}
	return c
}

// Load reads catalog entries from a JSON file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []models.Scholarship
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	for _, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog entry without id")
		}
		if !entry.Category.Valid() {
			return nil, fmt.Errorf("catalog entry %s: unknown category %q", entry.ID, entry.Category)
		}
	}

	return New(entries), nil
}

// All returns every entry in insertion order
func (c *Catalog) All() []models.Scholarship {
	return c.entries
}

// FilterByCategory returns the entries of one category in insertion order
func (c *Catalog) FilterByCategory(category models.ScholarshipCategory) []models.Scholarship {
	filtered := make([]models.Scholarship, 0, len(c.entries))
	for _, entry := range c.entries {
		if entry.Category == category {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Get looks up an entry by id
func (c *Catalog) Get(id string) (*models.Scholarship, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.entries[idx], true
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
