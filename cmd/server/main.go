package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"repo-health-search/internal/api"
	"repo-health-search/internal/cache"
	"repo-health-search/internal/github"
	"repo-health-search/internal/search"
	"repo-health-search/internal/translate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Could not load .env, using system environment variables.")
	}

	memCache := cache.New()
	stopSweeper := memCache.StartSweeper()
	defer stopSweeper()

	ghClient := github.NewClient()
	translator := translate.New()
	searcher := search.New(ghClient, translator, memCache)

	http.HandleFunc("/search", api.SearchHandler(searcher))
	http.HandleFunc("/search/ai", api.AISearchHandler(searcher))
	http.HandleFunc("/translate", api.TranslateHandler(searcher))
	http.HandleFunc("/cache/stats", api.CacheStatsHandler(memCache))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running at http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
