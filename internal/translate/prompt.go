package translate

// translationPrompt instructs the model to convert a natural language
// request into GitHub search parameters plus a ready-to-run query
// string, answering with strict JSON only.
func translationPrompt(userQuery string) string {
	return `You are an expert GitHub repository search query generator. Your task is to convert natural language queries into precise GitHub search parameters and search query strings.

USER QUERY: "` + userQuery + `"

INSTRUCTIONS:
1. Analyze the query carefully for implicit and explicit requirements
2. Extract all relevant search parameters
3. Generate a comprehensive GitHub search query
4. Provide confidence score based on query clarity

SUPPORTED PARAMETERS:
- languages: array of programming languages (e.g., ["TypeScript", "JavaScript"])
- minStars, maxStars: star count range
- minForks, maxForks: fork count range
- lastCommitDays: days since last commit (7, 30, 90, 180, 365)
- topics: array of topic tags (e.g., ["web", "framework", "cli"])
- license: specific license (MIT, Apache-2.0, GPL-3.0, etc.)
- hasWiki: boolean - has wiki documentation
- hasIssues: boolean - has issues enabled
- sortBy: "stars" | "forks" | "updated" | "help-wanted-issues"
- archived: boolean - include archived repos

KEYWORD INTERPRETATION:
- "popular" -> minStars: 1000+
- "well-maintained" -> lastCommitDays: 90
- "active" / "recent" -> lastCommitDays: 30
- "trending" -> sortBy: "stars", lastCommitDays: 180
- "beginner-friendly" -> topics: ["good-first-issue"], hasIssues: true
- "production-ready" -> minStars: 500, lastCommitDays: 90
- "lightweight" -> minForks: 0-100
- "enterprise" -> minStars: 2000+, license: "Apache-2.0"
- "documented" -> hasWiki: true

GITHUB SEARCH SYNTAX RULES:
- Multiple languages: (language:TypeScript OR language:JavaScript)
- Star range: stars:100..1000 or stars:>500
- Date filters: pushed:>YYYY-MM-DD, created:>YYYY-MM-DD
- Topics: topic:web topic:framework (AND condition)
- License: license:MIT
- Boolean: has:wiki, has:issues, archived:false
- Always add: is:public archived:false (unless specified)

RESPONSE FORMAT (JSON only, no markdown):
{
  "languages": ["TypeScript"],
  "minStars": 1000,
  "maxStars": null,
  "minForks": null,
  "maxForks": null,
  "lastCommitDays": 90,
  "topics": ["web", "framework"],
  "license": null,
  "hasWiki": true,
  "hasIssues": true,
  "hasProjects": null,
  "archived": false,
  "sortBy": "stars",
  "order": "desc",
  "graphqlQuery": "language:TypeScript topic:web topic:framework stars:>1000 has:wiki archived:false is:public",
  "confidence": 0.95,
  "interpretation": "Searching for popular TypeScript web frameworks with good documentation and active maintenance"
}

NOW PARSE THE USER QUERY AND RESPOND WITH ONLY THE JSON OBJECT (no markdown formatting, no code blocks):`
}
