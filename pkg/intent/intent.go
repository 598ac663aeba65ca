package intent

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Intent is the structured interpretation of a free-text restaurant request.
// It only lives for the duration of one chat pipeline run.
type Intent struct {
	HierarchicalCategories []string   `json:"hierarchical_categories"`
	PrimaryCategories      []string   `json:"primary_categories"`
	Attributes             Attributes `json:"attributes"`
	Reasoning              string     `json:"reasoning"`
}

// Preferences carries the stored survey answers that bias extraction and
// search. A zero value means the user has nothing saved.
type Preferences struct {
	CuisineType         string
	PriceRange          string
	DiningStyle         string
	DietaryRestrictions string
	Atmosphere          string
}

type Attributes struct {
	CuisineType      string     `json:"cuisine_type"`
	PriceLevel       PriceLevel `json:"price_level"`
	Occasion         string     `json:"occasion"`
	AmbianceKeywords []string   `json:"ambiance_keywords"`
	SpecialFeatures  []string   `json:"special_features"`
}

// PriceLevel is a Yelp price tier 1-4, or 0 when unset. Models return it
// inconsistently as a number, a quoted number, or null, so it decodes all three.
type PriceLevel int

func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*p = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*p = 0
		return nil
	}
	*p = PriceLevel(n)
	return nil
}

func (p PriceLevel) Valid() bool {
	return p >= 1 && p <= 4
}

// priceRangeLevels maps the survey's dollar-sign price range to Yelp tiers.
var priceRangeLevels = map[string]PriceLevel{
	"$":    1,
	"$$":   2,
	"$$$":  3,
	"$$$$": 4,
}

// PriceLevelFromRange converts a stored price range ("$".."$$$$") to a tier,
// defaulting to 2 for anything unrecognized.
func PriceLevelFromRange(priceRange string) PriceLevel {
	if lvl, ok := priceRangeLevels[priceRange]; ok {
		return lvl
	}
	return 2
}

func (i *Intent) valid() bool {
	return i != nil && len(i.PrimaryCategories) > 0
}

// decode parses a raw LLM reply into an Intent, tolerating markdown fences.
func decode(raw string) (*Intent, error) {
	payload := stripFences(raw)
	var it Intent
	if err := json.Unmarshal([]byte(payload), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// yelpAlias turns a display cuisine name into the lowercase alias form the
// search provider expects ("Italian" -> "italian", "Fast Food" -> "fastfood").
func yelpAlias(cuisine string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cuisine)), " ", "")
}

// orNotSpecified substitutes the prompt placeholder for unset preferences.
func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not specified"
	}
	return v
}

// stripFences unwraps ```json ... ``` or ``` ... ``` blocks the model may
// have wrapped its answer in.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
	} else if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
	} else {
		return s
	}
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}
