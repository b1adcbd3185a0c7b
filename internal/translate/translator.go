// Package translate converts free-text repository requests into
// structured filters plus a GitHub search query string. The remote path
// asks Gemini; any failure there drops silently to a deterministic
// keyword parser, so translation never errors out to callers.
package translate

import (
	"context"
	"log"
	"os"

	"repo-health-search/internal/query"
)

type Translator struct {
	apiKey string
}

// New reads GEMINI_API_KEY from the environment. An empty key routes
// every translation through the fallback parser, which is not an error.
func New() *Translator {
	return &Translator{apiKey: os.Getenv("GEMINI_API_KEY")}
}

// Translate always produces a usable ParsedQuery.
func (t *Translator) Translate(ctx context.Context, text string) query.ParsedQuery {
	if t.apiKey == "" {
		return fallbackParse(text)
	}

	parsed, err := t.translateRemote(ctx, text)
	if err != nil {
		log.Printf("⚠️ Gemini translation failed, using keyword fallback: %v", err)
		return fallbackParse(text)
	}
	return parsed
}

func (t *Translator) translateRemote(ctx context.Context, text string) (query.ParsedQuery, error) {
	raw, err := callGemini(ctx, t.apiKey, translationPrompt(text))
	if err != nil {
		return query.ParsedQuery{}, err
	}
	return parseRemoteResponse(raw)
}
