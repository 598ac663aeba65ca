package search

// Listing is one normalized restaurant search result. The field set matches
// what the frontend renders and what gets embedded into an assistant message's
// recommendations payload.
type Listing struct {
	Id          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Categories  []string `json:"categories"`
	Price       string   `json:"price"`
	Distance    float64  `json:"distance"` // miles
	Address     string   `json:"address"`
	Phone       string   `json:"phone"` // "N/A" when the provider has none
	ImageURL    string   `json:"image_url,omitempty"`
	URL         string   `json:"url"`
}
