package health

import (
	"math"
	"time"

	"github.com/google/go-github/v53/github"
)

// ScoreRESTRepo computes the health score for a flat REST-shaped
// repository record.
func ScoreRESTRepo(repo *github.Repository) (int, Breakdown) {
	return scoreRESTRepoAt(repo, time.Now())
}

func scoreRESTRepoAt(repo *github.Repository, now time.Time) (int, Breakdown) {
	b := emptyBreakdown()

	daysSincePush := DaysSince(repo.GetPushedAt().Time, now)
	b.CommitFrequency.Value = float64(daysSincePush)
	b.CommitFrequency.Score = freshnessScore(daysSincePush)

	score, ratio := issueResponseScore(repo.GetOpenIssuesCount(), repo.GetStargazersCount())
	b.IssueResponseTime.Value = ratio
	b.IssueResponseTime.Score = score

	activity := activityScore(daysSincePush)
	b.PRMergeRate.Value = activity
	b.PRMergeRate.Score = activity

	// The REST payload has no contributor count, so forks relative to
	// popularity stands in for diversity.
	stars := repo.GetStargazersCount()
	forks := repo.GetForksCount()
	b.ContributorDiversity.Value = float64(forks)
	b.ContributorDiversity.Score = math.Min(100, float64(forks)/math.Max(float64(stars)/50, 1)*100)

	docScore, docMetrics := documentationScore(
		repo.GetDescription(),
		len(repo.Topics),
		repo.License != nil,
		repo.GetHomepage() != "",
	)
	b.DocumentationQuality.Value = float64(docMetrics)
	b.DocumentationQuality.Score = docScore

	daysSinceUpdate := DaysSince(repo.GetUpdatedAt().Time, now)
	b.DependencyFreshness.Value = float64(daysSinceUpdate)
	b.DependencyFreshness.Score = freshnessScore(daysSinceUpdate)

	ageDays := maxInt(DaysSince(repo.GetCreatedAt().Time, now), 1)
	growth, starsPerDay := growthScore(stars, ageDays)
	b.CommunityGrowth.Value = starsPerDay
	b.CommunityGrowth.Score = growth

	b.BreakingChangeFrequency.Value = float64(ageDays)
	b.BreakingChangeFrequency.Score = stabilityScore(ageDays)

	return total(b), b
}
