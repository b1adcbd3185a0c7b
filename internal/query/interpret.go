package query

import (
	"fmt"
	"strings"
)

// Describe renders a one-line human readable reading of a parsed query
// for display next to search results. When no filters were derived it
// echoes the original text.
func Describe(parsed ParsedQuery, original string) string {
	var parts []string
	f := parsed.Filters

	if len(f.Languages) > 0 {
		parts = append(parts, strings.Join(f.Languages, "/")+" projects")
	}
	if len(f.Topics) > 0 {
		parts = append(parts, "related to "+strings.Join(f.Topics, ", "))
	}
	if f.MinStars != nil {
		parts = append(parts, fmt.Sprintf("with %d+ stars", *f.MinStars))
	}
	if f.LastCommitDays != nil {
		timeframe := "this year"
		if *f.LastCommitDays <= 30 {
			timeframe = "recently"
		} else if *f.LastCommitDays <= 90 {
			timeframe = "in the last 3 months"
		}
		parts = append(parts, "updated "+timeframe)
	}
	if f.License != nil {
		parts = append(parts, "with "+*f.License+" license")
	}

	if len(parts) == 0 {
		if original != "" {
			return original
		}
		return "all repositories"
	}
	return strings.Join(parts, " ")
}
