package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// repoSearchQuery mirrors the fields the health scorer consumes from
// the GraphQL search surface.
const repoSearchQuery = `
query SearchRepositories($searchQuery: String!, $first: Int!) {
  search(query: $searchQuery, type: REPOSITORY, first: $first) {
    repositoryCount
    edges {
      node {
        ... on Repository {
          id
          name
          nameWithOwner
          description
          url
          stargazerCount
          forkCount
          watchers { totalCount }
          issues(states: OPEN) { totalCount }
          primaryLanguage { name }
          repositoryTopics(first: 10) {
            edges { node { topic { name } } }
          }
          licenseInfo { name }
          createdAt
          updatedAt
          pushedAt
          object(expression: "HEAD:README.md") {
            ... on Blob { text }
          }
          hasWikiEnabled
          mentionableUsers(first: 100) { totalCount }
        }
      }
    }
  }
}`

type TotalCount struct {
	TotalCount int `json:"totalCount"`
}

type Language struct {
	Name string `json:"name"`
}

type License struct {
	Name string `json:"name"`
}

// Blob is a resolved git object, here always the README text.
type Blob struct {
	Text string `json:"text"`
}

type TopicEdge struct {
	Node struct {
		Topic struct {
			Name string `json:"name"`
		} `json:"topic"`
	} `json:"node"`
}

// GraphRepo is one repository node as the GraphQL surface returns it.
type GraphRepo struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	NameWithOwner    string     `json:"nameWithOwner"`
	Description      string     `json:"description"`
	URL              string     `json:"url"`
	StargazerCount   int        `json:"stargazerCount"`
	ForkCount        int        `json:"forkCount"`
	Watchers         TotalCount `json:"watchers"`
	Issues           TotalCount `json:"issues"`
	PrimaryLanguage  *Language  `json:"primaryLanguage"`
	RepositoryTopics struct {
		Edges []TopicEdge `json:"edges"`
	} `json:"repositoryTopics"`
	LicenseInfo      *License   `json:"licenseInfo"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	PushedAt         time.Time  `json:"pushedAt"`
	Object           *Blob      `json:"object"`
	HasWikiEnabled   bool       `json:"hasWikiEnabled"`
	MentionableUsers TotalCount `json:"mentionableUsers"`
}

// Topics flattens the topic edges.
func (r *GraphRepo) Topics() []string {
	topics := make([]string, 0, len(r.RepositoryTopics.Edges))
	for _, edge := range r.RepositoryTopics.Edges {
		topics = append(topics, edge.Node.Topic.Name)
	}
	return topics
}

// ReadmeText returns the README blob text, if one was resolved.
func (r *GraphRepo) ReadmeText() string {
	if r.Object == nil {
		return ""
	}
	return r.Object.Text
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlResponse struct {
	Data *struct {
		Search struct {
			RepositoryCount int `json:"repositoryCount"`
			Edges           []struct {
				Node GraphRepo `json:"node"`
			} `json:"edges"`
		} `json:"search"`
	} `json:"data"`
	Errors []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"errors"`
}

// SearchGraphQL executes a repository search query string against the
// GraphQL surface and returns up to first repository nodes.
func (c *Client) SearchGraphQL(ctx context.Context, searchQuery string, first int) ([]GraphRepo, error) {
	reqBody, err := json.Marshal(graphqlRequest{
		Query: repoSearchQuery,
		Variables: map[string]interface{}{
			"searchQuery": searchQuery,
			"first":       first,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GraphQL request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{HasToken: c.token != ""}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GraphQL endpoint returned %s: %s", resp.Status, string(body))
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("failed to decode GraphQL response: %w", err)
	}

	for _, gqlErr := range gqlResp.Errors {
		if gqlErr.Type == "RATE_LIMITED" || strings.Contains(strings.ToLower(gqlErr.Message), "rate limit") {
			return nil, &RateLimitError{}
		}
	}
	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}
	if gqlResp.Data == nil {
		return nil, fmt.Errorf("GraphQL response carried no data")
	}

	repos := make([]GraphRepo, 0, len(gqlResp.Data.Search.Edges))
	for _, edge := range gqlResp.Data.Search.Edges {
		repos = append(repos, edge.Node)
	}
	return repos, nil
}
