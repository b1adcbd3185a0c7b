package translate

import (
	"encoding/json"
	"fmt"

	"repo-health-search/internal/query"
)

// parseRemoteResponse turns the model's raw reply into a ParsedQuery.
// Each field is validated individually; a field that fails its type or
// range check is dropped rather than failing the whole parse.
func parseRemoteResponse(raw string) (query.ParsedQuery, error) {
	jsonStr := extractCleanJSON(raw)

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return query.ParsedQuery{}, fmt.Errorf("failed to parse translation JSON: %w", err)
	}

	var filters query.SearchFilters

	if langs := stringSliceField(payload, "languages"); len(langs) > 0 {
		filters.Languages = langs
	}
	if v, ok := intField(payload, "minStars"); ok && v >= 0 {
		filters.MinStars = query.IntPtr(v)
	}
	if v, ok := intField(payload, "maxStars"); ok && v >= 0 {
		filters.MaxStars = query.IntPtr(v)
	}
	if v, ok := intField(payload, "minForks"); ok && v >= 0 {
		filters.MinForks = query.IntPtr(v)
	}
	if v, ok := intField(payload, "maxForks"); ok && v >= 0 {
		filters.MaxForks = query.IntPtr(v)
	}
	if v, ok := intField(payload, "lastCommitDays"); ok && v > 0 {
		filters.LastCommitDays = query.IntPtr(v)
	}
	if topics := stringSliceField(payload, "topics"); len(topics) > 0 {
		filters.Topics = topics
	}
	if v, ok := stringField(payload, "license"); ok && v != "" {
		filters.License = query.StringPtr(v)
	}
	if v, ok := boolField(payload, "hasWiki"); ok {
		filters.HasWiki = query.BoolPtr(v)
	}
	if v, ok := boolField(payload, "hasIssues"); ok {
		filters.HasIssues = query.BoolPtr(v)
	}
	if v, ok := boolField(payload, "hasProjects"); ok {
		filters.HasProjects = query.BoolPtr(v)
	}
	if v, ok := boolField(payload, "archived"); ok {
		filters.Archived = query.BoolPtr(v)
	}
	if v, ok := stringField(payload, "sortBy"); ok && v != "" {
		filters.SortBy = query.StringPtr(v)
	}
	if v, ok := stringField(payload, "order"); ok && v != "" {
		filters.Order = query.StringPtr(v)
	}

	// The model's own query string wins over the builder: it can carry
	// nuance (OR grouping, date arithmetic) the filters alone lose.
	queryString, ok := stringField(payload, "graphqlQuery")
	if !ok || queryString == "" {
		queryString = query.BuildString(filters)
	}

	confidence := 0.8
	if v, ok := payload["confidence"].(float64); ok && v >= 0 && v <= 1 {
		confidence = v
	}

	return query.ParsedQuery{
		Filters:      filters,
		GraphQLQuery: queryString,
		Confidence:   confidence,
	}, nil
}

func stringField(m map[string]interface{}, key string) (string, bool) {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func boolField(m map[string]interface{}, key string) (bool, bool) {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

func intField(m map[string]interface{}, key string) (int, bool) {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return int(f), true
		}
	}
	return 0, false
}

func stringSliceField(m map[string]interface{}, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	slice, ok := v.([]interface{})
	if !ok {
		return nil
	}
	res := make([]string, 0, len(slice))
	for _, item := range slice {
		if s, ok := item.(string); ok {
			res = append(res, s)
		}
	}
	return res
}
