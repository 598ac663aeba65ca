package search

import (
	"context"
	"math"
	"strings"

	"kindalike-be/internal/pkg/logger"
	"kindalike-be/pkg/intent"
	"kindalike-be/pkg/yelp"
)

// MaxResults caps how many listings one chat turn surfaces.
const MaxResults = 5

const metersPerMile = 1609.344

// featureAliases maps the model's free-text special features to Fusion
// attribute aliases. Anything unmapped is dropped.
var featureAliases = map[string]string{
	"reservations":          "reservation",
	"outdoor seating":       "outdoor_seating",
	"takeout":               "restaurant_takeout",
	"delivery":              "restaurant_delivery",
	"wheelchair accessible": "wheelchair_accessible",
	"good for groups":       "good_for_groups",
	"hot and new":           "hot_and_new",
}

// ListingSearcher finds candidate restaurants for one extracted intent.
// Failures are absorbed: a provider error yields an empty (not nil-checked)
// result, never an error the caller has to branch on.
type ListingSearcher interface {
	Search(ctx context.Context, it *intent.Intent, location string, prefs intent.Preferences) []Listing
}

type yelpSearcher struct {
	client *yelp.Client
	log    logger.ILogger
}

func NewYelpSearcher(client *yelp.Client, log logger.ILogger) ListingSearcher {
	return &yelpSearcher{
		client: client,
		log:    log,
	}
}

func (s *yelpSearcher) Search(ctx context.Context, it *intent.Intent, location string, prefs intent.Preferences) []Listing {
	params := buildParams(it, location, prefs)

	businesses, err := s.client.SearchBusinesses(ctx, params)
	if err != nil {
		s.log.Warn("search", "yelp search failed, returning no listings", map[string]interface{}{
			"location": location,
			"error":    err.Error(),
		})
		return []Listing{}
	}

	if len(businesses) > MaxResults {
		businesses = businesses[:MaxResults]
	}

	listings := make([]Listing, 0, len(businesses))
	for _, b := range businesses {
		listings = append(listings, normalize(b))
	}
	return listings
}

// buildParams translates intent + preferences into provider query parameters.
func buildParams(it *intent.Intent, location string, prefs intent.Preferences) yelp.SearchParams {
	params := yelp.SearchParams{
		Location: location,
		Limit:    MaxResults,
		SortBy:   "best_match",
	}

	if it == nil {
		it = intent.Fallback(prefs)
	}
	params.Categories = it.PrimaryCategories

	// Intent price wins when it is a sane tier, otherwise fall back to the
	// stored price range.
	if it.Attributes.PriceLevel.Valid() {
		params.Price = []int{int(it.Attributes.PriceLevel)}
	} else if prefs.PriceRange != "" {
		params.Price = []int{int(intent.PriceLevelFromRange(prefs.PriceRange))}
	}

	var termParts []string
	if it.Attributes.CuisineType != "" {
		termParts = append(termParts, it.Attributes.CuisineType)
	}
	ambiance := it.Attributes.AmbianceKeywords
	if len(ambiance) > 2 {
		ambiance = ambiance[:2]
	}
	termParts = append(termParts, ambiance...)
	params.Term = strings.Join(termParts, " ")

	for _, feature := range it.Attributes.SpecialFeatures {
		if alias, ok := featureAliases[strings.ToLower(feature)]; ok {
			params.Attributes = append(params.Attributes, alias)
		}
	}

	return params
}

func normalize(b yelp.Business) Listing {
	categories := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, c.Title)
	}

	phone := b.DisplayPhone
	if phone == "" {
		phone = "N/A"
	}
	price := b.Price
	if price == "" {
		price = "N/A"
	}

	return Listing{
		Id:          b.Id,
		Name:        b.Name,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		Categories:  categories,
		Price:       price,
		Distance:    roundMiles(b.Distance),
		Address:     strings.Join(b.Location.DisplayAddress, " "),
		Phone:       phone,
		ImageURL:    b.ImageURL,
		URL:         b.URL,
	}
}

func roundMiles(meters float64) float64 {
	return math.Round(meters/metersPerMile*100) / 100
}
