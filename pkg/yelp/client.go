package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.yelp.com/v3"

// Client is a thin wrapper over the Yelp Fusion business-search endpoint.
type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchParams maps to the Fusion /businesses/search query string.
type SearchParams struct {
	Location   string
	Categories []string // category aliases, e.g. "italian"
	Price      []int    // 1-4
	Term       string
	Attributes []string // e.g. "outdoor_seating"
	Limit      int      // capped at 50 by the provider
	SortBy     string   // "best_match", "rating", "review_count", "distance"
}

// Business is a raw Fusion search result, untouched except for decoding.
type Business struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	Price        string  `json:"price"`
	ImageURL     string  `json:"image_url"`
	URL          string  `json:"url"`
	Distance     float64 `json:"distance"` // meters
	DisplayPhone string  `json:"display_phone"`
	IsClosed     bool    `json:"is_closed"`
	Categories   []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
	Location struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
}

type searchResponse struct {
	Businesses []Business `json:"businesses"`
	Total      int        `json:"total"`
}

// SearchBusinesses runs one Fusion search. Provider ordering is preserved.
func (c *Client) SearchBusinesses(ctx context.Context, params SearchParams) ([]Business, error) {
	q := url.Values{}
	q.Set("location", params.Location)

	limit := params.Limit
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	q.Set("limit", strconv.Itoa(limit))

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "best_match"
	}
	q.Set("sort_by", sortBy)

	if len(params.Categories) > 0 {
		q.Set("categories", strings.Join(params.Categories, ","))
	}
	if len(params.Price) > 0 {
		tiers := make([]string, 0, len(params.Price))
		for _, p := range params.Price {
			if p >= 1 && p <= 4 {
				tiers = append(tiers, strconv.Itoa(p))
			}
		}
		if len(tiers) > 0 {
			q.Set("price", strings.Join(tiers, ","))
		}
	}
	if params.Term != "" {
		q.Set("term", params.Term)
	}
	if len(params.Attributes) > 0 {
		q.Set("attributes", strings.Join(params.Attributes, ","))
	}

	endpoint := c.BaseURL + "/businesses/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yelp error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result searchResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return result.Businesses, nil
}
