package query

import (
	"fmt"
	"strings"
	"time"
)

// BuildString serializes filters into the GitHub search query grammar.
// It is pure aside from the clock behind lastCommitDays; see
// buildStringAt for the testable form.
func BuildString(f SearchFilters) string {
	return buildStringAt(f, time.Now())
}

func buildStringAt(f SearchFilters, now time.Time) string {
	var parts []string

	// Multiple languages OR together inside parentheses.
	if len(f.Languages) == 1 {
		parts = append(parts, "language:"+f.Languages[0])
	} else if len(f.Languages) > 1 {
		langs := make([]string, len(f.Languages))
		for i, lang := range f.Languages {
			langs[i] = "language:" + lang
		}
		parts = append(parts, "("+strings.Join(langs, " OR ")+")")
	}

	// Each topic is its own token, AND semantics.
	for _, topic := range f.Topics {
		parts = append(parts, "topic:"+topic)
	}

	switch {
	case f.MinStars != nil && f.MaxStars != nil:
		parts = append(parts, fmt.Sprintf("stars:%d..%d", *f.MinStars, *f.MaxStars))
	case f.MinStars != nil:
		parts = append(parts, fmt.Sprintf("stars:>%d", *f.MinStars))
	case f.MaxStars != nil:
		parts = append(parts, fmt.Sprintf("stars:<%d", *f.MaxStars))
	}

	switch {
	case f.MinForks != nil && f.MaxForks != nil:
		parts = append(parts, fmt.Sprintf("forks:%d..%d", *f.MinForks, *f.MaxForks))
	case f.MinForks != nil:
		parts = append(parts, fmt.Sprintf("forks:>%d", *f.MinForks))
	case f.MaxForks != nil:
		parts = append(parts, fmt.Sprintf("forks:<%d", *f.MaxForks))
	}

	if f.LastCommitDays != nil {
		cutoff := now.AddDate(0, 0, -*f.LastCommitDays)
		parts = append(parts, "pushed:>"+cutoff.Format("2006-01-02"))
	}

	if f.CreatedAfter != nil {
		parts = append(parts, "created:>="+*f.CreatedAfter)
	}
	if f.PushedAfter != nil {
		parts = append(parts, "pushed:>="+*f.PushedAfter)
	}

	if f.License != nil {
		parts = append(parts, "license:"+*f.License)
	}

	// Boolean flags only ever emit positive tokens.
	if f.HasWiki != nil && *f.HasWiki {
		parts = append(parts, "has:wiki")
	}
	if f.HasIssues != nil && *f.HasIssues {
		parts = append(parts, "has:issues")
	}
	if f.HasProjects != nil && *f.HasProjects {
		parts = append(parts, "has:projects")
	}

	parts = append(parts, "is:public")
	if f.Archived == nil || !*f.Archived {
		parts = append(parts, "archived:false")
	}

	return strings.Join(parts, " ")
}
