// Package search orchestrates the pipeline: obtain a provider query
// string (builder or translator), run it against GitHub with caching,
// score every hit, and return results ranked by health.
package search

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v53/github"
	"golang.org/x/sync/errgroup"

	"repo-health-search/internal/cache"
	"repo-health-search/internal/github"
	"repo-health-search/internal/query"
)

const (
	restPageSize    = 30
	scoredBatchSize = 20
	graphPageSize   = 20

	// Concurrent contributor-count lookups per batch.
	enrichmentLimit = 10
)

// Backend is the slice of the GitHub client the orchestrator needs.
type Backend interface {
	SearchRepositories(ctx context.Context, query, sort, order string, perPage int) ([]*gogithub.Repository, error)
	ContributorCount(ctx context.Context, owner, repo string) (int, error)
	SearchGraphQL(ctx context.Context, query string, first int) ([]github.GraphRepo, error)
}

// Translator turns free text into a ParsedQuery; it never fails.
type Translator interface {
	Translate(ctx context.Context, text string) query.ParsedQuery
}

type Searcher struct {
	backend    Backend
	translator Translator
	cache      *cache.Cache
	now        func() time.Time
}

func New(backend Backend, translator Translator, c *cache.Cache) *Searcher {
	return &Searcher{
		backend:    backend,
		translator: translator,
		cache:      c,
		now:        time.Now,
	}
}

// Translate exposes the translation step on its own, for UIs that show
// the derived filters before searching.
func (s *Searcher) Translate(ctx context.Context, text string) query.ParsedQuery {
	return s.translator.Translate(ctx, text)
}

// ByFilters searches the REST surface with a structured filter set,
// optionally merged with free text from the caller.
func (s *Searcher) ByFilters(ctx context.Context, text string, filters query.SearchFilters) ([]Project, error) {
	queryString := strings.TrimSpace(text + " " + query.BuildString(filters))

	sortParam := query.SortStars
	if filters.SortBy != nil {
		sortParam = *filters.SortBy
	}
	orderParam := "desc"
	if filters.Order != nil {
		orderParam = *filters.Order
	}

	cacheKey := cache.Key("search", map[string]interface{}{
		"query":   queryString,
		"sort":    sortParam,
		"order":   orderParam,
		"filters": filters,
	})
	if cached, ok := s.cache.Get(cacheKey); ok {
		if projects, ok := cached.([]Project); ok {
			log.Println("✓ Returning cached search results")
			return projects, nil
		}
	}

	log.Printf("🔍 Executing GitHub search: %s", queryString)

	repos, err := s.backend.SearchRepositories(ctx, queryString, sortParam, orderParam, restPageSize)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		log.Printf("ℹ️ No repositories found for query: %s", queryString)
		return []Project{}, nil
	}
	if len(repos) > scoredBatchSize {
		repos = repos[:scoredBatchSize]
	}

	// Enrich and score concurrently. A repo whose contributor lookup
	// fails still scores, with contributors defaulted to 0.
	projects := make([]Project, len(repos))
	now := s.now()

	var g errgroup.Group
	g.SetLimit(enrichmentLimit)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			contributors := 0
			owner := repo.GetOwner().GetLogin()
			if owner != "" && repo.GetName() != "" {
				count, err := s.backend.ContributorCount(ctx, owner, repo.GetName())
				if err != nil {
					log.Printf("⚠️ Failed to fetch contributors for %s: %v", repo.GetFullName(), err)
				} else {
					contributors = count
				}
			}
			projects[i] = projectFromRESTRepo(repo, contributors, now)
			return nil
		})
	}
	_ = g.Wait()

	sortByHealth(projects)
	s.cache.Set(cacheKey, projects, cache.TTLSearchResults)

	log.Printf("✅ GitHub search returned %d repositories", len(projects))
	return projects, nil
}

// ByNaturalLanguage translates free text and runs the resulting query
// string against the GraphQL surface. The ParsedQuery comes back too so
// callers can display the derived filters.
func (s *Searcher) ByNaturalLanguage(ctx context.Context, text string) ([]Project, query.ParsedQuery, error) {
	parsed := s.translator.Translate(ctx, text)

	log.Printf("🤖 Translated %q -> %q (confidence %.2f)", text, parsed.GraphQLQuery, parsed.Confidence)

	projects, err := s.byGraphQuery(ctx, parsed.GraphQLQuery)
	return projects, parsed, err
}

func (s *Searcher) byGraphQuery(ctx context.Context, queryString string) ([]Project, error) {
	cacheKey := cache.Key("graphql-search", map[string]interface{}{"query": queryString})
	if cached, ok := s.cache.Get(cacheKey); ok {
		if projects, ok := cached.([]Project); ok {
			log.Println("✓ Returning cached GraphQL search results")
			return projects, nil
		}
	}

	repos, err := s.backend.SearchGraphQL(ctx, queryString, graphPageSize)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		log.Printf("ℹ️ No repositories found for query: %s", queryString)
		return []Project{}, nil
	}

	now := s.now()
	projects := make([]Project, len(repos))
	for i := range repos {
		projects[i] = projectFromGraphRepo(&repos[i], now)
	}

	sortByHealth(projects)
	s.cache.Set(cacheKey, projects, cache.TTLSearchResults)

	log.Printf("✅ GraphQL search returned %d repositories", len(projects))
	return projects, nil
}

func sortByHealth(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].HealthScore > projects[j].HealthScore
	})
}
