package translate

import (
	"strings"

	"repo-health-search/internal/query"
)

// fallbackConfidence is the fixed self-rating of the keyword parser.
const fallbackConfidence = 0.6

var languageVocabulary = []string{
	"typescript", "javascript", "python", "go", "rust", "java",
	"cpp", "c++", "csharp", "c#", "ruby", "php",
}

var topicKeywords = []struct {
	keyword string
	topic   string
}{
	{"framework", "framework"},
	{"cli", "cli"},
	{"web", "web"},
	{"api", "api"},
	{"testing", "testing"},
	{"ui", "ui"},
	{"machine learning", "machine-learning"},
	{"ml", "machine-learning"},
	{"data science", "data-science"},
	{"database", "database"},
	{"auth", "authentication"},
	{"microservice", "microservices"},
}

func normalizeLanguage(lang string) string {
	switch lang {
	case "c++", "cpp":
		return "C++"
	case "c#", "csharp":
		return "C#"
	case "typescript":
		return "TypeScript"
	case "javascript":
		return "JavaScript"
	case "php":
		return "PHP"
	default:
		return strings.ToUpper(lang[:1]) + lang[1:]
	}
}

// fallbackParse is the deterministic, no-network translation path:
// plain substring matching over a fixed vocabulary.
func fallbackParse(text string) query.ParsedQuery {
	var filters query.SearchFilters
	lower := strings.ToLower(text)

	var langs []string
	seen := map[string]bool{}
	for _, lang := range languageVocabulary {
		if strings.Contains(lower, lang) {
			normalized := normalizeLanguage(lang)
			if !seen[normalized] {
				langs = append(langs, normalized)
				seen[normalized] = true
			}
		}
	}
	if len(langs) > 0 {
		filters.Languages = langs
	}

	if strings.Contains(lower, "recent") || strings.Contains(lower, "active") {
		filters.LastCommitDays = query.IntPtr(30)
	} else if strings.Contains(lower, "maintained") || strings.Contains(lower, "updated") {
		filters.LastCommitDays = query.IntPtr(90)
	}

	if strings.Contains(lower, "popular") || strings.Contains(lower, "trending") {
		filters.MinStars = query.IntPtr(1000)
		filters.SortBy = query.StringPtr(query.SortStars)
	} else if strings.Contains(lower, "production") || strings.Contains(lower, "enterprise") {
		filters.MinStars = query.IntPtr(500)
	} else {
		filters.MinStars = query.IntPtr(100)
	}

	var topics []string
	seenTopic := map[string]bool{}
	for _, tk := range topicKeywords {
		if strings.Contains(lower, tk.keyword) && !seenTopic[tk.topic] {
			topics = append(topics, tk.topic)
			seenTopic[tk.topic] = true
		}
	}
	if len(topics) > 0 {
		filters.Topics = topics
	}

	if strings.Contains(lower, "mit") {
		filters.License = query.StringPtr("MIT")
	}
	if strings.Contains(lower, "apache") {
		filters.License = query.StringPtr("Apache-2.0")
	}

	if strings.Contains(lower, "documented") || strings.Contains(lower, "documentation") {
		filters.HasWiki = query.BoolPtr(true)
	}

	filters.Archived = query.BoolPtr(false)

	return query.ParsedQuery{
		Filters:      filters,
		GraphQLQuery: query.BuildString(filters),
		Confidence:   fallbackConfidence,
	}
}
