// Package health computes the 0-100 repository health score from raw
// GitHub metadata. The two remote shapes (REST and GraphQL) get their
// own scorer over a shared formula core; they differ only where the
// shapes expose different data.
package health

import (
	"math"
	"time"
)

// Component weights, in percent. They sum to 100.
const (
	WeightCommitFrequency         = 20
	WeightIssueResponseTime       = 15
	WeightPRMergeRate             = 15
	WeightContributorDiversity    = 10
	WeightDocumentationQuality    = 15
	WeightDependencyFreshness     = 10
	WeightCommunityGrowth         = 10
	WeightBreakingChangeFrequency = 5
)

// ComponentScore is one health sub-metric.
type ComponentScore struct {
	Score  float64 `json:"score"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Weight int     `json:"weight"`
}

// Breakdown holds all eight component scores. It is always fully
// populated.
type Breakdown struct {
	CommitFrequency         ComponentScore `json:"commitFrequency"`
	IssueResponseTime       ComponentScore `json:"issueResponseTime"`
	PRMergeRate             ComponentScore `json:"prMergeRate"`
	ContributorDiversity    ComponentScore `json:"contributorDiversity"`
	DocumentationQuality    ComponentScore `json:"documentationQuality"`
	DependencyFreshness     ComponentScore `json:"dependencyFreshness"`
	CommunityGrowth         ComponentScore `json:"communityGrowth"`
	BreakingChangeFrequency ComponentScore `json:"breakingChangeFrequency"`
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DaysSince floors the elapsed whole days between t and now.
func DaysSince(t, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// freshnessScore decays from 100 at zero days to 0 at ~300 days. Used
// for both commit frequency (push recency) and dependency freshness
// (update recency).
func freshnessScore(days int) float64 {
	return clampScore(100 - float64(days)/3)
}

// issueResponseScore estimates responsiveness from open issues relative
// to popularity: total issue volume is guessed as open + stars/10, and
// a lower open ratio scores higher. Returns the score and the ratio.
func issueResponseScore(openIssues, stars int) (float64, float64) {
	estimate := float64(openIssues) + float64(stars)/10
	ratio := float64(openIssues) / math.Max(estimate, 1)
	return clampScore(100 - ratio*100), round2(ratio)
}

// activityScore is a step function of push recency, standing in for a
// PR merge rate the search payloads do not carry.
func activityScore(daysSincePush int) float64 {
	switch {
	case daysSincePush < 7:
		return 95
	case daysSincePush < 30:
		return 85
	case daysSincePush < 90:
		return 65
	case daysSincePush < 180:
		return 45
	default:
		return 30
	}
}

// documentationScore awards points for description (>20 chars), topics,
// license, and one extra shape-specific signal (homepage or non-trivial
// README). The metrics count is display-only.
func documentationScore(description string, topicCount int, hasLicense, bonusSignal bool) (score float64, metrics int) {
	if len(description) > 20 {
		score += 35
		metrics++
	}
	if topicCount > 0 {
		score += 30
		metrics += topicCount
	}
	if hasLicense {
		score += 25
		metrics++
	}
	if bonusSignal {
		score += 10
		metrics++
	}
	return score, metrics
}

// growthScore rates stars accumulated per day of repository age.
func growthScore(stars, ageDays int) (float64, float64) {
	starsPerDay := float64(stars) / float64(maxInt(ageDays, 1))
	return math.Min(100, starsPerDay*20), round2(starsPerDay)
}

// stabilityScore rewards maturity as a proxy for breaking-change risk.
func stabilityScore(ageDays int) float64 {
	switch {
	case ageDays > 365:
		return 100
	case ageDays > 180:
		return 90
	default:
		return 80
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// total combines the components with their fixed weights and rounds the
// clamped sum to the nearest integer.
func total(b Breakdown) int {
	sum := b.CommitFrequency.Score*float64(b.CommitFrequency.Weight)/100 +
		b.IssueResponseTime.Score*float64(b.IssueResponseTime.Weight)/100 +
		b.PRMergeRate.Score*float64(b.PRMergeRate.Weight)/100 +
		b.ContributorDiversity.Score*float64(b.ContributorDiversity.Weight)/100 +
		b.DocumentationQuality.Score*float64(b.DocumentationQuality.Weight)/100 +
		b.DependencyFreshness.Score*float64(b.DependencyFreshness.Weight)/100 +
		b.CommunityGrowth.Score*float64(b.CommunityGrowth.Weight)/100 +
		b.BreakingChangeFrequency.Score*float64(b.BreakingChangeFrequency.Weight)/100

	return int(math.Round(clampScore(sum)))
}

func emptyBreakdown() Breakdown {
	return Breakdown{
		CommitFrequency:         ComponentScore{Unit: "days", Weight: WeightCommitFrequency},
		IssueResponseTime:       ComponentScore{Unit: "ratio", Weight: WeightIssueResponseTime},
		PRMergeRate:             ComponentScore{Unit: "%", Weight: WeightPRMergeRate},
		ContributorDiversity:    ComponentScore{Unit: "count", Weight: WeightContributorDiversity},
		DocumentationQuality:    ComponentScore{Unit: "score", Weight: WeightDocumentationQuality},
		DependencyFreshness:     ComponentScore{Unit: "days", Weight: WeightDependencyFreshness},
		CommunityGrowth:         ComponentScore{Unit: "stars/day", Weight: WeightCommunityGrowth},
		BreakingChangeFrequency: ComponentScore{Unit: "stability", Weight: WeightBreakingChangeFrequency},
	}
}
