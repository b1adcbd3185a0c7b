package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v53/github"
)

// SearchRepositories runs one page of the REST repository search.
func (c *Client) SearchRepositories(ctx context.Context, query, sort, order string, perPage int) ([]*github.Repository, error) {
	opts := &github.SearchOptions{
		Sort:        sort,
		Order:       order,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	results, _, err := c.rest.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, c.classifyError(err)
	}

	return results.Repositories, nil
}

// ContributorCount counts a repository's contributors without paging
// through all of them: ask for one per page and read the last page
// number off the pagination header. Repos small enough to fit in one
// page have no header, so the returned slice length is the count.
func (c *Client) ContributorCount(ctx context.Context, owner, repo string) (int, error) {
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}

	contributors, resp, err := c.rest.Repositories.ListContributors(ctx, owner, repo, opts)
	if err != nil {
		return 0, fmt.Errorf("error fetching contributors for %s/%s: %w", owner, repo, err)
	}

	if resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(contributors), nil
}
