package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kindalike-be/internal/pkg/logger"
	"kindalike-be/pkg/intent"
	"kindalike-be/pkg/yelp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearcherAgainst(t *testing.T, handler http.HandlerFunc) (ListingSearcher, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := yelp.NewClient("test-key")
	client.BaseURL = srv.URL
	return NewYelpSearcher(client, logger.NewNopLogger()), srv
}

func businessesPayload(n int) string {
	out := `{"businesses": [`
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"id": "b%d", "name": "Place %d", "rating": 4.0, "review_count": 10, "distance": 1609.344,
			"categories": [{"alias": "italian", "title": "Italian"}],
			"location": {"display_address": ["1 Main St", "Ithaca, NY 14850"]}}`, i, i)
	}
	return out + fmt.Sprintf(`], "total": %d}`, n)
}

func TestSearch_CapsResultsPreservingOrder(t *testing.T) {
	searcher, _ := newSearcherAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(businessesPayload(8)))
	})

	listings := searcher.Search(context.Background(), intent.Fallback(intent.Preferences{}), "Ithaca, NY", intent.Preferences{})

	require.Len(t, listings, MaxResults)
	for i, l := range listings {
		assert.Equal(t, fmt.Sprintf("b%d", i), l.Id)
	}
}

func TestSearch_Normalization(t *testing.T) {
	searcher, _ := newSearcherAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"businesses": [{
			"id": "b1", "name": "Casa Uno", "rating": 4.5, "review_count": 204,
			"price": "$$", "distance": 2414.016, "display_phone": "",
			"categories": [{"alias": "italian", "title": "Italian"}, {"alias": "winebars", "title": "Wine Bars"}],
			"location": {"display_address": ["101 State St", "Ithaca, NY 14850"]}
		}, {
			"id": "b2", "name": "No Frills Diner", "rating": 3.5, "review_count": 12,
			"display_phone": "(607) 555-0101",
			"location": {"display_address": ["7 College Ave"]}
		}], "total": 2}`))
	})

	listings := searcher.Search(context.Background(), intent.Fallback(intent.Preferences{}), "Ithaca, NY", intent.Preferences{})

	require.Len(t, listings, 2)
	l := listings[0]
	assert.Equal(t, []string{"Italian", "Wine Bars"}, l.Categories)
	assert.Equal(t, 1.5, l.Distance) // meters converted to miles
	assert.Equal(t, "$$", l.Price)
	assert.Equal(t, "N/A", l.Phone)
	assert.Equal(t, "101 State St Ithaca, NY 14850", l.Address)

	// Missing provider fields get the display sentinel.
	assert.Equal(t, "N/A", listings[1].Price)
	assert.Equal(t, "(607) 555-0101", listings[1].Phone)
}

func TestSearch_UpstreamFailureYieldsEmpty(t *testing.T) {
	searcher, _ := newSearcherAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	listings := searcher.Search(context.Background(), intent.Fallback(intent.Preferences{}), "Ithaca, NY", intent.Preferences{})

	assert.NotNil(t, listings)
	assert.Empty(t, listings)
}

func TestSearch_ParamTranslation(t *testing.T) {
	var gotQuery map[string][]string
	searcher, _ := newSearcherAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"businesses": [], "total": 0}`))
	})

	it := &intent.Intent{
		PrimaryCategories: []string{"italian", "pizza"},
		Attributes: intent.Attributes{
			CuisineType:      "Italian",
			PriceLevel:       3,
			AmbianceKeywords: []string{"romantic", "intimate", "dim"},
			SpecialFeatures:  []string{"Reservations", "valet parking"},
		},
	}
	searcher.Search(context.Background(), it, "Ithaca, NY", intent.Preferences{})

	assert.Equal(t, []string{"italian,pizza"}, gotQuery["categories"])
	assert.Equal(t, []string{"3"}, gotQuery["price"])
	// Term folds in the cuisine and at most two ambiance keywords.
	assert.Equal(t, []string{"Italian romantic intimate"}, gotQuery["term"])
	// Known features map to provider aliases, unknown ones are dropped.
	assert.Equal(t, []string{"reservation"}, gotQuery["attributes"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
}

func TestSearch_PriceFallsBackToPreferences(t *testing.T) {
	var gotQuery map[string][]string
	searcher, _ := newSearcherAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"businesses": [], "total": 0}`))
	})

	it := &intent.Intent{PrimaryCategories: []string{"thai"}}
	prefs := intent.Preferences{PriceRange: "$$$$"}
	searcher.Search(context.Background(), it, "Ithaca, NY", prefs)

	assert.Equal(t, []string{"4"}, gotQuery["price"])
}

func TestListingJSONShape(t *testing.T) {
	raw, err := json.Marshal(Listing{
		Name:        "Casa Uno",
		Rating:      4.5,
		ReviewCount: 10,
		Categories:  []string{"Italian"},
		Phone:       "N/A",
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "review_count")
	assert.Contains(t, decoded, "categories")
	assert.NotContains(t, decoded, "id") // omitted when empty
	assert.NotContains(t, decoded, "image_url")
}
