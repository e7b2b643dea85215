package commands

import (
	"context"
	"testing"

	"starfolio/internal/adapters/static"
	"starfolio/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "Koopman",
			query:     "Koopman",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "Koopman Operator",
			query:     "Koopman",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "substring match",
			target:    "The Koopman",
			query:     "Koopman",
			wantScore: 100, // contains only
		},
		{
			name:    "fuzzy match all chars at start",
			target:  "Koopman",
			query:   "koo",
			wantMin: 100, // should be high due to prefix
		},
		{
			name:      "no match",
			target:    "Koopman",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "Koopman",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "KOOPMAN",
			query:   "koopman",
			wantMin: 100,
		},
		{
			name:    "fuzzy across words",
			target:  "Data-Driven System Identification",
			query:   "dsi",
			wantMin: 40, // start, separator and consecutive bonuses
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else {
				if score != 0 {
					t.Errorf("expected score 0, got %d", score)
				}
			}
		})
	}
}

func TestFuzzyScore_Ordering(t *testing.T) {
	// Test that better matches score higher
	query := "chaos"

	exactScore := FuzzyScore("chaos", query)                     // exact + prefix = 150
	prefixScore := FuzzyScore("chaos and predictability", query) // contains + prefix = 150
	containsScore := FuzzyScore("taming chaos", query)           // contains only = 100
	fuzzyScore := FuzzyScore("c.h.a.o.s", query)                 // fuzzy match only

	if exactScore < prefixScore {
		t.Errorf("exact match should score >= prefix: %d < %d", exactScore, prefixScore)
	}
	if prefixScore < containsScore {
		t.Errorf("prefix match should score >= contains: %d < %d", prefixScore, containsScore)
	}
	if containsScore <= fuzzyScore {
		t.Errorf("contains match should score higher than fuzzy: %d <= %d", containsScore, fuzzyScore)
	}
}

func TestFuzzySort(t *testing.T) {
	entries := []Entry{
		{View: domain.ViewHome, Title: "MATLAB", Text: "skill"},
		{View: domain.ViewTechnical, Title: "The Koopman Operator", Text: "Linearizing nonlinear dynamics"},
		{View: domain.ViewProjects, Title: "Hybrid UAV-UGV Environment Mapping", Text: "SLAM, LiDAR"},
		{View: domain.ViewTechnical, Title: "Koopman", Text: "operator"},
	}

	sorted := FuzzySort(entries, "koopman")

	if len(sorted) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(sorted), sorted)
	}
	if sorted[0].Title != "Koopman" {
		t.Errorf("prefix match should rank first, got %q", sorted[0].Title)
	}

	// Verify results are sorted by score descending
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("results not sorted by score: %d > %d at index %d",
				sorted[i].Score, sorted[i-1].Score, i)
		}
	}
}

func TestSearchCommand(t *testing.T) {
	src := static.MustLoad()

	tests := []struct {
		name     string
		query    string
		wantView domain.ViewID
		wantTab  string
		wantNone bool
	}{
		{name: "project tag", query: "LiDAR", wantView: domain.ViewProjects},
		{name: "technical topic", query: "koopman", wantView: domain.ViewTechnical},
		{name: "game topic", query: "Assassin", wantView: domain.ViewWritings, wantTab: "games"},
		{name: "book topic", query: "Nietzsche", wantView: domain.ViewWritings, wantTab: "books"},
		{name: "skill", query: "PyTorch", wantView: domain.ViewHome},
		{name: "too short", query: "a", wantNone: true},
		{name: "no match", query: "zzzz", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NewSearchCommand(src, tt.query).Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if tt.wantNone {
				if len(results) != 0 {
					t.Errorf("expected no results, got %+v", results)
				}
				return
			}
			if len(results) == 0 {
				t.Fatal("expected results")
			}
			top := results[0]
			if top.View != tt.wantView || top.Tab != tt.wantTab {
				t.Errorf("top result = %+v, want view %q tab %q", top.Entry, tt.wantView, tt.wantTab)
			}
		})
	}
}
