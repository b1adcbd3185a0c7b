package github

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v53/github"
)

// AuthError means GitHub rejected the credential (or its absence) for
// the attempted call. The message carries remediation steps.
type AuthError struct {
	HasToken bool
	Cause    error
}

func (e *AuthError) Error() string {
	issue := "GitHub token lacks the required API permissions"
	if !e.HasToken {
		issue = "No GitHub token provided"
	}
	return issue + ". Please:\n" +
		"1. Generate a token at https://github.com/settings/tokens/new\n" +
		"2. Enable these scopes: public_repo, read:org, read:user\n" +
		"3. Add it to your .env file as GITHUB_TOKEN=your_token\n" +
		"4. Restart the server"
}

func (e *AuthError) Unwrap() error { return e.Cause }

// RateLimitError means GitHub signalled quota exhaustion. Retrying is a
// caller policy; the message says how to raise the limit.
type RateLimitError struct {
	Cause error
}

func (e *RateLimitError) Error() string {
	return "GitHub API rate limit exceeded. Please:\n" +
		"1. Wait a few minutes and try again\n" +
		"2. Or add a GitHub Personal Access Token to increase limits\n" +
		"3. Without a token: 60 requests/hour\n" +
		"4. With a token: 5000 requests/hour"
}

func (e *RateLimitError) Unwrap() error { return e.Cause }

// classifyError maps go-github failures onto the error taxonomy.
func (c *Client) classifyError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{Cause: err}
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitError{Cause: err}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case 401, 403:
			if strings.Contains(strings.ToLower(respErr.Message), "rate limit") {
				return &RateLimitError{Cause: err}
			}
			return &AuthError{HasToken: c.token != "", Cause: err}
		}
	}

	return fmt.Errorf("GitHub search failed: %w", err)
}
