package catalog

import (
	"strings"

	"gxportfolio/internal/domain"

	"github.com/sahilm/fuzzy"
)

// Catalog is an immutable, ordered set of command records
type Catalog struct {
	records []domain.CommandRecord
	keys    []searchKey
	names   []string
}

// searchKey holds the lower-cased fields of one record
type searchKey struct {
	name        string
	category    string
	description string
}

// New creates a catalog from the given records. The slice is copied.
func New(records []domain.CommandRecord) *Catalog {
	c := &Catalog{
		records: make([]domain.CommandRecord, len(records)),
		keys:    make([]searchKey, len(records)),
		names:   make([]string, len(records)),
	}
	copy(c.records, records)

	for i, r := range c.records {
		c.keys[i] = searchKey{
			name:        strings.ToLower(r.Name),
			category:    strings.ToLower(string(r.Category)),
			description: strings.ToLower(r.Description),
		}
		c.names[i] = r.Name
	}

	return c
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of all records in insertion order
func (c *Catalog) Records() []domain.CommandRecord {
	out := make([]domain.CommandRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Search returns the records whose name, category or description contains
// the query, ignoring case. Order follows the catalog.
func (c *Catalog) Search(query string) domain.SearchResult {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return domain.SearchResult{Query: normalized, Cleared: true, Records: []domain.CommandRecord{}}
	}

	records := []domain.CommandRecord{}
	for i, k := range c.keys {
		if strings.Contains(k.name, normalized) ||
			strings.Contains(k.category, normalized) ||
			strings.Contains(k.description, normalized) {
			records = append(records, c.records[i])
		}
	}

	return domain.SearchResult{Query: normalized, Records: records}
}

// Suggest returns up to limit command names that fuzzily match the query,
// best match first
func (c *Catalog) Suggest(query string, limit int) []string {
	normalized := normalizeQuery(query)
	if normalized == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(normalized, c.names)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.Str
	}
	return suggestions
}

// Statistics counts records per category. Known categories come first in
// display order, any other labels follow in first-seen order.
func (c *Catalog) Statistics() domain.CategoryStatistics {
	counts := make(map[domain.Category]int)
	var extra []domain.Category
	for _, r := range c.records {
		if _, seen := counts[r.Category]; !seen && !isKnownCategory(r.Category) {
			extra = append(extra, r.Category)
		}
		counts[r.Category]++
	}

	stats := domain.CategoryStatistics{Total: len(c.records)}
	for _, category := range domain.Categories {
		stats.Categories = append(stats.Categories, domain.CategoryCount{
			Category: category,
			Count:    counts[category],
		})
	}
	for _, category := range extra {
		stats.Categories = append(stats.Categories, domain.CategoryCount{
			Category: category,
			Count:    counts[category],
		})
	}

	return stats
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func isKnownCategory(category domain.Category) bool {
	for _, known := range domain.Categories {
		if known == category {
			return true
		}
	}
	return false
}
