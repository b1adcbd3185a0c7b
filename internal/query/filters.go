package query

// Sort keys accepted by the GitHub search surfaces.
const (
	SortStars           = "stars"
	SortForks           = "forks"
	SortUpdated         = "updated"
	SortHelpWantedIssue = "help-wanted-issues"
)

// SearchFilters is the structured form of a repository search. Every
// field is optional; the zero value matches whatever the provider
// returns by default.
type SearchFilters struct {
	Languages      []string `json:"languages,omitempty"`
	MinStars       *int     `json:"minStars,omitempty"`
	MaxStars       *int     `json:"maxStars,omitempty"`
	MinForks       *int     `json:"minForks,omitempty"`
	MaxForks       *int     `json:"maxForks,omitempty"`
	LastCommitDays *int     `json:"lastCommitDays,omitempty"`
	Topics         []string `json:"topics,omitempty"`
	License        *string  `json:"license,omitempty"`
	HasWiki        *bool    `json:"hasWiki,omitempty"`
	HasIssues      *bool    `json:"hasIssues,omitempty"`
	HasProjects    *bool    `json:"hasProjects,omitempty"`
	Archived       *bool    `json:"archived,omitempty"`
	SortBy         *string  `json:"sortBy,omitempty"`
	Order          *string  `json:"order,omitempty"`
	CreatedAfter   *string  `json:"createdAfter,omitempty"`
	PushedAfter    *string  `json:"pushedAfter,omitempty"`
}

// ParsedQuery is the output of query translation: derived filters, a
// ready-to-run provider query string, and the translator's confidence.
type ParsedQuery struct {
	Filters      SearchFilters `json:"filters"`
	GraphQLQuery string        `json:"graphqlQuery"`
	Confidence   float64       `json:"confidence"`
}

func IntPtr(v int) *int          { return &v }
func BoolPtr(v bool) *bool       { return &v }
func StringPtr(v string) *string { return &v }
