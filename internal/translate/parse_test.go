package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteResponseFullPayload(t *testing.T) {
	raw := `{
		"languages": ["TypeScript", "JavaScript"],
		"minStars": 1000,
		"maxStars": null,
		"lastCommitDays": 90,
		"topics": ["web", "framework"],
		"license": "MIT",
		"hasWiki": true,
		"archived": false,
		"sortBy": "stars",
		"order": "desc",
		"graphqlQuery": "(language:TypeScript OR language:JavaScript) topic:web stars:>1000 is:public archived:false",
		"confidence": 0.95
	}`

	parsed, err := parseRemoteResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"TypeScript", "JavaScript"}, parsed.Filters.Languages)
	require.NotNil(t, parsed.Filters.MinStars)
	assert.Equal(t, 1000, *parsed.Filters.MinStars)
	assert.Nil(t, parsed.Filters.MaxStars)
	require.NotNil(t, parsed.Filters.LastCommitDays)
	assert.Equal(t, 90, *parsed.Filters.LastCommitDays)
	assert.Equal(t, []string{"web", "framework"}, parsed.Filters.Topics)
	require.NotNil(t, parsed.Filters.License)
	assert.Equal(t, "MIT", *parsed.Filters.License)
	require.NotNil(t, parsed.Filters.HasWiki)
	assert.True(t, *parsed.Filters.HasWiki)
	require.NotNil(t, parsed.Filters.Archived)
	assert.False(t, *parsed.Filters.Archived)
	assert.Equal(t, "(language:TypeScript OR language:JavaScript) topic:web stars:>1000 is:public archived:false", parsed.GraphQLQuery)
	assert.Equal(t, 0.95, parsed.Confidence)
}

func TestParseRemoteResponseStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"languages\": [\"Go\"], \"graphqlQuery\": \"language:Go is:public\", \"confidence\": 0.9}\n```"

	parsed, err := parseRemoteResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, parsed.Filters.Languages)
	assert.Equal(t, "language:Go is:public", parsed.GraphQLQuery)
}

func TestParseRemoteResponseDropsNegativeNumbers(t *testing.T) {
	raw := `{"minStars": -5, "maxStars": -1, "minForks": -10, "lastCommitDays": 0, "graphqlQuery": "is:public"}`

	parsed, err := parseRemoteResponse(raw)
	require.NoError(t, err)
	assert.Nil(t, parsed.Filters.MinStars)
	assert.Nil(t, parsed.Filters.MaxStars)
	assert.Nil(t, parsed.Filters.MinForks)
	assert.Nil(t, parsed.Filters.LastCommitDays)
}

func TestParseRemoteResponseFiltersNonStringArrayElements(t *testing.T) {
	raw := `{"languages": ["Go", 42, null, "Rust"], "topics": [1, "cli"], "graphqlQuery": "is:public"}`

	parsed, err := parseRemoteResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, parsed.Filters.Languages)
	assert.Equal(t, []string{"cli"}, parsed.Filters.Topics)
}

func TestParseRemoteResponseDropsMistypedFields(t *testing.T) {
	raw := `{"minStars": "lots", "hasWiki": "yes", "license": 7, "sortBy": false, "graphqlQuery": "is:public"}`

	parsed, err := parseRemoteResponse(raw)
	require.NoError(t, err)
	assert.Nil(t, parsed.Filters.MinStars)
	assert.Nil(t, parsed.Filters.HasWiki)
	assert.Nil(t, parsed.Filters.License)
	assert.Nil(t, parsed.Filters.SortBy)
}

func TestParseRemoteResponseDerivesQueryWhenMissing(t *testing.T) {
	raw := `{"languages": ["Go"], "minStars": 100}`

	parsed, err := parseRemoteResponse(raw)
	require.NoError(t, err)
	assert.Contains(t, parsed.GraphQLQuery, "language:Go")
	assert.Contains(t, parsed.GraphQLQuery, "stars:>100")
	assert.Contains(t, parsed.GraphQLQuery, "is:public")
}

func TestParseRemoteResponseDefaultConfidence(t *testing.T) {
	parsed, err := parseRemoteResponse(`{"graphqlQuery": "is:public"}`)
	require.NoError(t, err)
	assert.Equal(t, 0.8, parsed.Confidence)

	// Out-of-range confidence falls back to the default too.
	parsed, err = parseRemoteResponse(`{"graphqlQuery": "is:public", "confidence": 3.5}`)
	require.NoError(t, err)
	assert.Equal(t, 0.8, parsed.Confidence)
}

func TestParseRemoteResponseRejectsNonJSON(t *testing.T) {
	_, err := parseRemoteResponse("Sorry, I can't help with that.")
	assert.Error(t, err)
}

func TestExtractCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractCleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractCleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractCleanJSON("  {\"a\":1}  "))
}
