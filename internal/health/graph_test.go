package health

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"repo-health-search/internal/github"
)

func graphRepo(pushedDaysAgo, updatedDaysAgo, ageDays, stars, openIssues, contributors int) *github.GraphRepo {
	return &github.GraphRepo{
		PushedAt:         testNow.AddDate(0, 0, -pushedDaysAgo),
		UpdatedAt:        testNow.AddDate(0, 0, -updatedDaysAgo),
		CreatedAt:        testNow.AddDate(0, 0, -ageDays),
		StargazerCount:   stars,
		Issues:           github.TotalCount{TotalCount: openIssues},
		MentionableUsers: github.TotalCount{TotalCount: contributors},
	}
}

func TestGraphCommitFrequencyMatchesREST(t *testing.T) {
	for _, days := range []int{0, 30, 150, 300, 600} {
		_, gb := scoreGraphRepoAt(graphRepo(days, 0, 400, 100, 5, 10), testNow)
		_, rb := scoreRESTRepoAt(restRepo(days, 0, 400, 100, 10, 5), testNow)
		assert.Equal(t, rb.CommitFrequency.Score, gb.CommitFrequency.Score, "days=%d", days)
	}
}

func TestGraphContributorDiversityLogScale(t *testing.T) {
	tests := []struct {
		contributors int
		want         float64
	}{
		{0, 0}, // floored to 1, log10(1) = 0
		{1, 0},
		{10, 30},
		{100, 60},
		{1000, 90},
		{10000, 100}, // log10 caps past 100
	}
	for _, tt := range tests {
		_, b := scoreGraphRepoAt(graphRepo(0, 0, 400, 100, 5, tt.contributors), testNow)
		assert.InDelta(t, tt.want, b.ContributorDiversity.Score, 0.001, "contributors=%d", tt.contributors)
		assert.Equal(t, float64(tt.contributors), b.ContributorDiversity.Value)
	}
}

func TestGraphDocumentationUsesReadmeSignal(t *testing.T) {
	repo := graphRepo(0, 0, 400, 100, 5, 10)
	repo.Description = "a description comfortably longer than twenty characters"
	repo.LicenseInfo = &github.License{Name: "MIT License"}
	repo.RepositoryTopics.Edges = make([]github.TopicEdge, 2)
	repo.RepositoryTopics.Edges[0].Node.Topic.Name = "web"
	repo.RepositoryTopics.Edges[1].Node.Topic.Name = "go"

	// A trivial README earns no documentation points.
	repo.Object = &github.Blob{Text: "# hi"}
	_, b := scoreGraphRepoAt(repo, testNow)
	assert.Equal(t, 90.0, b.DocumentationQuality.Score)

	// A substantial README does.
	repo.Object = &github.Blob{Text: strings.Repeat("x", 501)}
	_, b = scoreGraphRepoAt(repo, testNow)
	assert.Equal(t, 100.0, b.DocumentationQuality.Score)
	// description + 2 topics + license + readme
	assert.Equal(t, 5.0, b.DocumentationQuality.Value)
}

func TestGraphSharedComponentsMatchREST(t *testing.T) {
	_, gb := scoreGraphRepoAt(graphRepo(15, 40, 900, 12000, 340, 120), testNow)
	_, rb := scoreRESTRepoAt(restRepo(15, 40, 900, 12000, 800, 340), testNow)

	assert.Equal(t, rb.CommitFrequency.Score, gb.CommitFrequency.Score)
	assert.Equal(t, rb.IssueResponseTime.Score, gb.IssueResponseTime.Score)
	assert.Equal(t, rb.PRMergeRate.Score, gb.PRMergeRate.Score)
	assert.Equal(t, rb.DependencyFreshness.Score, gb.DependencyFreshness.Score)
	assert.Equal(t, rb.CommunityGrowth.Score, gb.CommunityGrowth.Score)
	assert.Equal(t, rb.BreakingChangeFrequency.Score, gb.BreakingChangeFrequency.Score)
}

func TestGraphTotalInRange(t *testing.T) {
	score, _ := scoreGraphRepoAt(graphRepo(0, 0, 1, 0, 0, 0), testNow)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)

	score, _ = scoreGraphRepoAt(graphRepo(5, 2, 2000, 300000, 1200, 5000), testNow)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}
