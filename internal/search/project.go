package search

import (
	"time"

	gogithub "github.com/google/go-github/v53/github"

	"repo-health-search/internal/github"
	"repo-health-search/internal/health"
)

// ProjectStats is the display block of raw repository numbers.
type ProjectStats struct {
	Stars             int       `json:"stars"`
	Forks             int       `json:"forks"`
	Watchers          int       `json:"watchers"`
	OpenIssues        int       `json:"openIssues"`
	LastCommit        time.Time `json:"lastCommit"`
	LastCommitDaysAgo int       `json:"lastCommitDaysAgo"`
	Contributors      int       `json:"contributors"`
	License           string    `json:"license"`
}

// Project is one ranked search result. Constructed per response, never
// mutated afterwards.
type Project struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	FullName        string           `json:"fullName"`
	Description     string           `json:"description"`
	URL             string           `json:"url"`
	HealthScore     int              `json:"healthScore"`
	HealthBreakdown health.Breakdown `json:"healthBreakdown"`
	Stats           ProjectStats     `json:"stats"`
	Topics          []string         `json:"topics"`
	Language        string           `json:"language"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

const noDescription = "No description available"

func projectFromRESTRepo(repo *gogithub.Repository, contributors int, now time.Time) Project {
	score, breakdown := health.ScoreRESTRepo(repo)

	description := repo.GetDescription()
	if description == "" {
		description = noDescription
	}
	language := repo.GetLanguage()
	if language == "" {
		language = "Unknown"
	}
	license := "Unknown"
	if repo.License != nil && repo.License.GetSPDXID() != "" {
		license = repo.License.GetSPDXID()
	}

	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return Project{
		ID:              repo.GetFullName(),
		Name:            repo.GetName(),
		FullName:        repo.GetFullName(),
		Description:     description,
		URL:             repo.GetHTMLURL(),
		HealthScore:     score,
		HealthBreakdown: breakdown,
		Stats: ProjectStats{
			Stars:             repo.GetStargazersCount(),
			Forks:             repo.GetForksCount(),
			Watchers:          repo.GetWatchersCount(),
			OpenIssues:        repo.GetOpenIssuesCount(),
			LastCommit:        repo.GetPushedAt().Time,
			LastCommitDaysAgo: health.DaysSince(repo.GetPushedAt().Time, now),
			Contributors:      contributors,
			License:           license,
		},
		Topics:    topics,
		Language:  language,
		CreatedAt: repo.GetCreatedAt().Time,
		UpdatedAt: repo.GetUpdatedAt().Time,
	}
}

func projectFromGraphRepo(repo *github.GraphRepo, now time.Time) Project {
	score, breakdown := health.ScoreGraphRepo(repo)

	description := repo.Description
	if description == "" {
		description = noDescription
	}
	language := "Unknown"
	if repo.PrimaryLanguage != nil {
		language = repo.PrimaryLanguage.Name
	}
	license := "Unknown"
	if repo.LicenseInfo != nil {
		license = repo.LicenseInfo.Name
	}

	return Project{
		ID:              repo.NameWithOwner,
		Name:            repo.Name,
		FullName:        repo.NameWithOwner,
		Description:     description,
		URL:             repo.URL,
		HealthScore:     score,
		HealthBreakdown: breakdown,
		Stats: ProjectStats{
			Stars:             repo.StargazerCount,
			Forks:             repo.ForkCount,
			Watchers:          repo.Watchers.TotalCount,
			OpenIssues:        repo.Issues.TotalCount,
			LastCommit:        repo.PushedAt,
			LastCommitDaysAgo: health.DaysSince(repo.PushedAt, now),
			Contributors:      repo.MentionableUsers.TotalCount,
			License:           license,
		},
		Topics:    repo.Topics(),
		Language:  language,
		CreatedAt: repo.CreatedAt,
		UpdatedAt: repo.UpdatedAt,
	}
}
