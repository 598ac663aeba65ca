package intent

import (
	"context"
	"errors"
	"testing"

	"kindalike-be/internal/pkg/logger"
	"kindalike-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	reply       string
	err         error
	lastHistory []llm.Message
}

func (m *mockProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	m.lastHistory = history
	return m.reply, m.err
}

func (m *mockProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return m.reply, m.err
}

const validReply = `{
	"hierarchical_categories": ["Food & Dining", "Restaurants", "Italian"],
	"primary_categories": ["italian", "pizza"],
	"attributes": {
		"cuisine_type": "Italian",
		"price_level": 3,
		"occasion": "date night",
		"ambiance_keywords": ["romantic", "intimate"],
		"special_features": ["reservations"]
	},
	"reasoning": "Date night implies upscale Italian."
}`

func TestExtract_ValidReply(t *testing.T) {
	provider := &mockProvider{reply: validReply}
	ex := NewExtractor(provider, logger.NewNopLogger())

	it := ex.Extract(context.Background(), "italian date night", Preferences{CuisineType: "Italian"})

	require.NotNil(t, it)
	assert.Equal(t, []string{"italian", "pizza"}, it.PrimaryCategories)
	assert.Equal(t, PriceLevel(3), it.Attributes.PriceLevel)
	assert.Equal(t, "date night", it.Attributes.Occasion)

	// Prompt carries both the query and the stored preferences.
	require.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Contains(t, provider.lastHistory[1].Content, "italian date night")
	assert.Contains(t, provider.lastHistory[1].Content, "Italian")
	assert.Contains(t, provider.lastHistory[1].Content, "Not specified")
}

func TestExtract_FencedReply(t *testing.T) {
	provider := &mockProvider{reply: "Here you go:\n```json\n" + validReply + "\n```"}
	ex := NewExtractor(provider, logger.NewNopLogger())

	it := ex.Extract(context.Background(), "italian", Preferences{})

	require.NotNil(t, it)
	assert.Equal(t, []string{"italian", "pizza"}, it.PrimaryCategories)
}

func TestExtract_QuotedPriceLevel(t *testing.T) {
	provider := &mockProvider{reply: `{
		"primary_categories": ["mexican"],
		"attributes": {"price_level": "2"}
	}`}
	ex := NewExtractor(provider, logger.NewNopLogger())

	it := ex.Extract(context.Background(), "tacos", Preferences{})

	require.NotNil(t, it)
	assert.Equal(t, PriceLevel(2), it.Attributes.PriceLevel)
}

func TestExtract_NullPriceLevel(t *testing.T) {
	provider := &mockProvider{reply: `{
		"primary_categories": ["ramen"],
		"attributes": {"price_level": null}
	}`}
	ex := NewExtractor(provider, logger.NewNopLogger())

	it := ex.Extract(context.Background(), "ramen", Preferences{})

	require.NotNil(t, it)
	assert.False(t, it.Attributes.PriceLevel.Valid())
}

func TestExtract_ProviderErrorFallsBack(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream down")}
	ex := NewExtractor(provider, logger.NewNopLogger())

	prefs := Preferences{CuisineType: "Fast Food", PriceRange: "$"}
	it := ex.Extract(context.Background(), "anything", prefs)

	require.NotNil(t, it)
	assert.Equal(t, []string{"fastfood"}, it.PrimaryCategories)
	assert.Equal(t, []string{"Food & Dining", "Restaurants", "Fast Food"}, it.HierarchicalCategories)
	assert.Equal(t, PriceLevel(1), it.Attributes.PriceLevel)
	assert.Equal(t, "casual", it.Attributes.Occasion)
}

func TestExtract_GarbageReplyFallsBack(t *testing.T) {
	provider := &mockProvider{reply: "sorry, I can't help with that"}
	ex := NewExtractor(provider, logger.NewNopLogger())

	it := ex.Extract(context.Background(), "anything", Preferences{})

	require.NotNil(t, it)
	assert.Equal(t, []string{"restaurants"}, it.PrimaryCategories)
	assert.Equal(t, PriceLevel(2), it.Attributes.PriceLevel)
}

func TestExtract_EmptyCategoriesFallsBack(t *testing.T) {
	provider := &mockProvider{reply: `{"primary_categories": [], "reasoning": "unsure"}`}
	ex := NewExtractor(provider, logger.NewNopLogger())

	it := ex.Extract(context.Background(), "anything", Preferences{})

	require.NotNil(t, it)
	assert.Equal(t, []string{"restaurants"}, it.PrimaryCategories)
}

func TestPriceLevelFromRange(t *testing.T) {
	tests := []struct {
		in   string
		want PriceLevel
	}{
		{"$", 1},
		{"$$", 2},
		{"$$$", 3},
		{"$$$$", 4},
		{"", 2},
		{"cheap", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceLevelFromRange(tt.in), "range %q", tt.in)
	}
}
