package domain

import "testing"

func TestCategoryStatistics_Count(t *testing.T) {
	stats := CategoryStatistics{
		Categories: []CategoryCount{
			{Category: CategoryGeneral, Count: 7},
			{Category: CategoryModeration, Count: 10},
		},
		Total: 17,
	}

	tests := []struct {
		name     string
		category Category
		want     int
	}{
		{name: "present category", category: CategoryGeneral, want: 7},
		{name: "second category", category: CategoryModeration, want: 10},
		{name: "absent category", category: CategoryEconomy, want: 0},
		{name: "unknown label", category: Category("Music"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stats.Count(tt.category); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.category, got, tt.want)
			}
		})
	}
}

func TestSearchResult_NoResults(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   bool
	}{
		{
			name:   "cleared query",
			result: SearchResult{Cleared: true},
			want:   false,
		},
		{
			name:   "query without matches",
			result: SearchResult{Query: "xyz123"},
			want:   true,
		},
		{
			name: "query with matches",
			result: SearchResult{
				Query:   "ban",
				Records: []CommandRecord{{Name: "ban", Category: CategoryModeration, Description: "Ban a member"}},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.NoResults(); got != tt.want {
				t.Errorf("NoResults() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContactRequest_Complete(t *testing.T) {
	tests := []struct {
		name string
		req  ContactRequest
		want bool
	}{
		{
			name: "all fields",
			req:  ContactRequest{Name: "Sara", Email: "sara@example.com", Message: "Hello"},
			want: true,
		},
		{
			name: "missing name",
			req:  ContactRequest{Email: "sara@example.com", Message: "Hello"},
			want: false,
		},
		{
			name: "blank email",
			req:  ContactRequest{Name: "Sara", Email: "   ", Message: "Hello"},
			want: false,
		},
		{
			name: "missing message",
			req:  ContactRequest{Name: "Sara", Email: "sara@example.com"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryStatistics_GroupCount(t *testing.T) {
	stats := CategoryStatistics{
		Categories: []CategoryCount{
			{Category: CategoryGeneral, Count: 7},
			{Category: CategoryEntertainment, Count: 4},
			{Category: CategoryUtilities, Count: 9},
		},
		Total: 20,
	}

	want := map[string]int{
		"power-general":    7,
		"power-moderation": 0,
		"power-fun":        13,
	}

	for _, g := range CategoryGroups {
		if expected, ok := want[g.Key]; ok {
			if got := stats.GroupCount(g); got != expected {
				t.Errorf("GroupCount(%s) = %d, want %d", g.Key, got, expected)
			}
		}
	}

	// every known category belongs to exactly one group
	seen := make(map[Category]int)
	for _, g := range CategoryGroups {
		for _, c := range g.Categories {
			seen[c]++
		}
	}
	for _, c := range Categories {
		if seen[c] != 1 {
			t.Errorf("category %s appears in %d groups, want 1", c, seen[c])
		}
	}
}
