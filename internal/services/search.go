package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recipebox/internal/config"

	"github.com/redis/go-redis/v9"
)

const searchCacheTTL = 10 * time.Minute

type RecipeSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

type Ingredient struct {
	Name string `json:"name"`
}

type RecipeDetails struct {
	ID                  uint         `json:"id"`
	Title               string       `json:"title"`
	ExtendedIngredients []Ingredient `json:"extendedIngredients"`
	Instructions        string       `json:"instructions"`
}

// SearchClient is the external recipe search collaborator.
type SearchClient interface {
	// Search returns summaries matching the query. Upstream failures are
	// swallowed into an empty result; callers cannot tell "service down"
	// from "no matches".
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
	// FetchDetails returns the full recipe or ErrRecipeUnavailable.
	FetchDetails(ctx context.Context, id uint) (*RecipeDetails, error)
}

// SpoonacularClient talks to the Spoonacular REST API, with an optional
// Redis read-through cache for search responses.
type SpoonacularClient struct {
	cfg    config.Config
	logger *slog.Logger
	client *http.Client
	rdb    *redis.Client
}

func NewSpoonacularClient(cfg config.Config, logger *slog.Logger, rdb *redis.Client) *SpoonacularClient {
	return &SpoonacularClient{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
		rdb:    rdb,
	}
}

func (s *SpoonacularClient) Search(ctx context.Context, query string) ([]RecipeSummary, error) {
	if cached, ok := s.cacheGet(ctx, query); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("apiKey", s.cfg.SpoonacularAPIKey)
	params.Set("query", query)
	params.Set("number", strconv.Itoa(s.cfg.SearchResultLimit))
	params.Set("instructionsRequired", "true")
	params.Set("addRecipeInformation", "true")

	endpoint := s.cfg.SpoonacularURL + "/recipes/complexSearch?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("Recipe search request failed", "query", query, "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Recipe search returned non-OK status", "query", query, "status", resp.StatusCode)
		return nil, nil
	}

	var body struct {
		Results []RecipeSummary `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		s.logger.Warn("Recipe search returned malformed body", "query", query, "error", err)
		return nil, nil
	}

	s.cacheSet(ctx, query, body.Results)

	return body.Results, nil
}

func (s *SpoonacularClient) FetchDetails(ctx context.Context, id uint) (*RecipeDetails, error) {
	endpoint := fmt.Sprintf("%s/recipes/%d/information?apiKey=%s",
		s.cfg.SpoonacularURL, id, url.QueryEscape(s.cfg.SpoonacularAPIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrRecipeUnavailable
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("Recipe detail request failed", "id", id, "error", err)
		return nil, ErrRecipeUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrRecipeUnavailable
	}

	var details RecipeDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		s.logger.Warn("Recipe detail returned malformed body", "id", id, "error", err)
		return nil, ErrRecipeUnavailable
	}

	return &details, nil
}

func (s *SpoonacularClient) cacheGet(ctx context.Context, query string) ([]RecipeSummary, bool) {
	if s.rdb == nil {
		return nil, false
	}

	raw, err := s.rdb.Get(ctx, searchCacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var results []RecipeSummary
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}

	return results, true
}

func (s *SpoonacularClient) cacheSet(ctx context.Context, query string, results []RecipeSummary) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(results)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, searchCacheKey(query), raw, searchCacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache search results", "query", query, "error", err)
	}
}

func searchCacheKey(query string) string {
	return "search:" + query
}
