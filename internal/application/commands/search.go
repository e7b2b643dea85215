package commands

import (
	"context"
	"sort"
	"strings"

	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// Entry is a searchable piece of panel content
type Entry struct {
	View  domain.ViewID
	Tab   string // writings shelf, empty elsewhere
	Title string
	Text  string // tags, subtitle or description
}

// SearchResult is an entry with a relevance score
type SearchResult struct {
	Entry
	Score int
}

// SearchCommand searches panel content with fuzzy matching
type SearchCommand struct {
	content ports.ContentSource
	Query   string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(content ports.ContentSource, query string) *SearchCommand {
	return &SearchCommand{
		content: content,
		Query:   query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < 2 {
		return nil, nil
	}
	return FuzzySort(Entries(c.content.Portfolio()), query), nil
}

// Entries flattens the portfolio into searchable entries in panel order
func Entries(p domain.Portfolio) []Entry {
	var out []Entry
	for _, s := range p.Profile.Skills {
		out = append(out, Entry{View: domain.ViewHome, Title: s.Name, Text: "skill"})
	}
	for _, pr := range p.Projects {
		out = append(out, Entry{
			View:  domain.ViewProjects,
			Title: pr.Title,
			Text:  strings.Join(pr.Tags, ", "),
		})
	}
	for _, t := range p.Technical {
		out = append(out, Entry{View: domain.ViewTechnical, Title: t.Title, Text: t.Subtitle})
	}
	for _, sh := range p.Shelves {
		for _, topic := range sh.Topics {
			out = append(out, Entry{View: domain.ViewWritings, Tab: sh.Key, Title: topic, Text: sh.Title})
		}
	}
	return out
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores entries against the query, dropping misses
func FuzzySort(entries []Entry, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(entries))

	for _, e := range entries {
		s1 := FuzzyScore(e.Title, query)
		s2 := FuzzyScore(e.Text, query)

		best := max(s1, s2)

		if best > 0 {
			scored = append(scored, SearchResult{
				Entry: e,
				Score: best,
			})
		}
	}

	// Sort by score descending, keeping panel order for ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
