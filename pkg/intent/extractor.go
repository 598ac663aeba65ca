package intent

import (
	"context"
	"fmt"

	"kindalike-be/internal/pkg/logger"
	"kindalike-be/pkg/llm"
)

const systemPrompt = `You are a restaurant recommendation expert.
Your task is to analyze user queries and generate structured search parameters for finding restaurants.

When a user asks for restaurant recommendations, break down their request into:
1. Hierarchical categories (from general to specific)
2. Primary search categories for the business-search API
3. Key attributes (cuisine, price, occasion, ambiance, special features)

Be flexible and creative in interpretation. Consider implicit meanings:
- "date night" -> romantic, upscale, intimate atmosphere
- "quick bite" -> casual, fast, affordable
- "celebration" -> upscale, special occasion, lively
- "healthy" -> fresh, organic, vegetarian/vegan options

Return a JSON object with this exact structure:
{
    "hierarchical_categories": ["General Category", "Specific Category", "Very Specific"],
    "primary_categories": ["category1", "category2"],
    "attributes": {
        "cuisine_type": "string or null",
        "price_level": "1-4 or null",
        "occasion": "string or null",
        "ambiance_keywords": ["keyword1", "keyword2"],
        "special_features": ["feature1", "feature2"]
    },
    "reasoning": "Brief explanation of your interpretation"
}`

const queryTemplate = `Analyze this restaurant request and generate search parameters:

User Query: %s

User Preferences (if available):
- Cuisine: %s
- Price Range: %s
- Dining Style: %s
- Dietary Restrictions: %s
- Atmosphere: %s

Generate the JSON response following the specified structure.`

// Extractor turns a free-text restaurant request plus saved preferences into
// a structured Intent. Implementations never fail outward: a provider error
// degrades to a deterministic preference-derived fallback.
type Extractor interface {
	Extract(ctx context.Context, query string, prefs Preferences) *Intent
}

type llmExtractor struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewExtractor(provider llm.LLMProvider, log logger.ILogger) Extractor {
	return &llmExtractor{
		provider: provider,
		log:      log,
	}
}

func (e *llmExtractor) Extract(ctx context.Context, query string, prefs Preferences) *Intent {
	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(queryTemplate,
			query,
			orNotSpecified(prefs.CuisineType),
			orNotSpecified(prefs.PriceRange),
			orNotSpecified(prefs.DiningStyle),
			orNotSpecified(prefs.DietaryRestrictions),
			orNotSpecified(prefs.Atmosphere),
		)},
	}

	raw, err := e.provider.Chat(ctx, history, llm.WithTemperature(0.7), llm.WithMaxTokens(500))
	if err != nil {
		e.log.Warn("intent", "LLM call failed, using fallback intent", map[string]interface{}{
			"error": err.Error(),
		})
		return Fallback(prefs)
	}

	it, err := decode(raw)
	if err != nil || !it.valid() {
		e.log.Warn("intent", "unparseable LLM reply, using fallback intent", map[string]interface{}{
			"raw": raw,
		})
		return Fallback(prefs)
	}

	return it
}

// Fallback derives an Intent from stored preferences alone. It is the intent
// of record whenever the model is unreachable or talks nonsense.
func Fallback(prefs Preferences) *Intent {
	cuisine := prefs.CuisineType
	specific := "All Cuisines"
	if cuisine != "" {
		specific = cuisine
	}

	primary := []string{"restaurants"}
	if cuisine != "" {
		primary = []string{yelpAlias(cuisine)}
	}

	return &Intent{
		HierarchicalCategories: []string{"Food & Dining", "Restaurants", specific},
		PrimaryCategories:      primary,
		Attributes: Attributes{
			CuisineType:      cuisine,
			PriceLevel:       PriceLevelFromRange(prefs.PriceRange),
			Occasion:         "casual",
			AmbianceKeywords: []string{},
			SpecialFeatures:  []string{},
		},
		Reasoning: "Fallback categories used due to LLM error",
	}
}
