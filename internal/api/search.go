package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"repo-health-search/internal/github"
	"repo-health-search/internal/query"
	"repo-health-search/internal/search"
)

type SearchRequest struct {
	Query   string              `json:"query"`
	Filters query.SearchFilters `json:"filters"`
}

type SearchResponse struct {
	Results []search.Project `json:"results"`
}

type AISearchResponse struct {
	Results        []search.Project  `json:"results"`
	ParsedQuery    query.ParsedQuery `json:"parsedQuery"`
	Interpretation string            `json:"interpretation"`
}

// SearchHandler runs the structured-filter search path.
func SearchHandler(searcher *search.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeSearchRequest(w, r)
		if !ok {
			return
		}

		requestID := uuid.NewString()
		log.Printf("🔍 [%s] filter search: %q", requestID, req.Query)

		results, err := searcher.ByFilters(r.Context(), req.Query, req.Filters)
		if err != nil {
			writeSearchError(w, requestID, err)
			return
		}

		writeJSON(w, SearchResponse{Results: results})
	}
}

// AISearchHandler runs the natural-language search path.
func AISearchHandler(searcher *search.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeSearchRequest(w, r)
		if !ok {
			return
		}

		requestID := uuid.NewString()
		log.Printf("🤖 [%s] AI search: %q", requestID, req.Query)

		results, parsed, err := searcher.ByNaturalLanguage(r.Context(), req.Query)
		if err != nil {
			writeSearchError(w, requestID, err)
			return
		}

		writeJSON(w, AISearchResponse{
			Results:        results,
			ParsedQuery:    parsed,
			Interpretation: query.Describe(parsed, req.Query),
		})
	}
}

type TranslateResponse struct {
	query.ParsedQuery
	Interpretation string `json:"interpretation"`
}

// TranslateHandler exposes translation on its own, without searching.
func TranslateHandler(searcher *search.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeSearchRequest(w, r)
		if !ok {
			return
		}

		parsed := searcher.Translate(r.Context(), req.Query)
		writeJSON(w, TranslateResponse{
			ParsedQuery:    parsed,
			Interpretation: query.Describe(parsed, req.Query),
		})
	}
}

func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (SearchRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return SearchRequest{}, false
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return SearchRequest{}, false
	}
	return req, true
}

func writeSearchError(w http.ResponseWriter, requestID string, err error) {
	log.Printf("❌ [%s] search failed: %v", requestID, err)

	status := http.StatusInternalServerError
	var authErr *github.AuthError
	var rateErr *github.RateLimitError
	switch {
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
	case errors.As(err, &rateErr):
		status = http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("⚠️ Failed to encode response: %v", err)
	}
}
