package health

import (
	"math"
	"time"

	"repo-health-search/internal/github"
)

// ScoreGraphRepo computes the health score for a GraphQL-shaped
// repository node.
func ScoreGraphRepo(repo *github.GraphRepo) (int, Breakdown) {
	return scoreGraphRepoAt(repo, time.Now())
}

func scoreGraphRepoAt(repo *github.GraphRepo, now time.Time) (int, Breakdown) {
	b := emptyBreakdown()

	daysSincePush := DaysSince(repo.PushedAt, now)
	b.CommitFrequency.Value = float64(daysSincePush)
	b.CommitFrequency.Score = freshnessScore(daysSincePush)

	score, ratio := issueResponseScore(repo.Issues.TotalCount, repo.StargazerCount)
	b.IssueResponseTime.Value = ratio
	b.IssueResponseTime.Score = score

	activity := activityScore(daysSincePush)
	b.PRMergeRate.Value = activity
	b.PRMergeRate.Score = activity

	// GraphQL exposes a real contributor count, so diversity is scored
	// on its order of magnitude rather than the REST fork proxy.
	contributors := repo.MentionableUsers.TotalCount
	b.ContributorDiversity.Value = float64(contributors)
	b.ContributorDiversity.Score = math.Min(100, math.Log10(math.Max(float64(contributors), 1))*30)

	docScore, docMetrics := documentationScore(
		repo.Description,
		len(repo.RepositoryTopics.Edges),
		repo.LicenseInfo != nil,
		len(repo.ReadmeText()) > 500,
	)
	b.DocumentationQuality.Value = float64(docMetrics)
	b.DocumentationQuality.Score = docScore

	daysSinceUpdate := DaysSince(repo.UpdatedAt, now)
	b.DependencyFreshness.Value = float64(daysSinceUpdate)
	b.DependencyFreshness.Score = freshnessScore(daysSinceUpdate)

	ageDays := maxInt(DaysSince(repo.CreatedAt, now), 1)
	growth, starsPerDay := growthScore(repo.StargazerCount, ageDays)
	b.CommunityGrowth.Value = starsPerDay
	b.CommunityGrowth.Score = growth

	b.BreakingChangeFrequency.Value = float64(ageDays)
	b.BreakingChangeFrequency.Score = stabilityScore(ageDays)

	return total(b), b
}
