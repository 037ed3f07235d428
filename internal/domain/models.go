package domain

import "strings"

// Category is the label a command is grouped under
type Category string

const (
	CategoryGeneral        Category = "General"
	CategoryModeration     Category = "Moderation"
	CategoryChannelControl Category = "Channel Control"
	CategoryAutomation     Category = "Automation"
	CategoryEconomy        Category = "Economy"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
)

// Categories lists the known categories in display order
var Categories = []Category{
	CategoryGeneral,
	CategoryModeration,
	CategoryChannelControl,
	CategoryAutomation,
	CategoryEconomy,
	CategoryEntertainment,
	CategoryUtilities,
}

// CommandRecord represents a single bot slash command
type CommandRecord struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// CategoryCount is the number of commands in one category
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// CategoryStatistics represents per-category command counts
type CategoryStatistics struct {
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// Count returns the number of commands in the given category
func (s CategoryStatistics) Count(category Category) int {
	for _, c := range s.Categories {
		if c.Category == category {
			return c.Count
		}
	}
	return 0
}

// CategoryGroup is a labelled set of categories shown as one figure
type CategoryGroup struct {
	Key        string
	Categories []Category
}

// CategoryGroups are the command-power figures, keyed by their translation key.
// Entertainment and Utilities share one figure.
var CategoryGroups = []CategoryGroup{
	{Key: "power-general", Categories: []Category{CategoryGeneral}},
	{Key: "power-moderation", Categories: []Category{CategoryModeration}},
	{Key: "power-channel", Categories: []Category{CategoryChannelControl}},
	{Key: "power-automation", Categories: []Category{CategoryAutomation}},
	{Key: "power-economy", Categories: []Category{CategoryEconomy}},
	{Key: "power-fun", Categories: []Category{CategoryEntertainment, CategoryUtilities}},
}

// GroupCount returns the number of commands across the group's categories
func (s CategoryStatistics) GroupCount(g CategoryGroup) int {
	n := 0
	for _, c := range g.Categories {
		n += s.Count(c)
	}
	return n
}

// SearchResult represents the outcome of a catalog search.
// Cleared is set for an empty query and is distinct from a query with no matches.
type SearchResult struct {
	Query       string          `json:"query"`
	Cleared     bool            `json:"cleared"`
	Records     []CommandRecord `json:"records"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// NoResults reports whether a non-empty query matched nothing
func (r SearchResult) NoResults() bool {
	return !r.Cleared && len(r.Records) == 0
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Complete reports whether every field carries a non-blank value
func (c ContactRequest) Complete() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Message) != ""
}
