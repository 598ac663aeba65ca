package factory

import (
	"fmt"

	"kindalike-be/internal/config"
	"kindalike-be/pkg/llm"
	"kindalike-be/pkg/llm/ollama"
	"kindalike-be/pkg/llm/openai"
)

func NewLLMProvider(cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.LiteLLMAPIKey == "" {
			return nil, fmt.Errorf("LITELLM_API_KEY is not set")
		}
		return openai.NewOpenAIProvider(cfg.LiteLLMBaseURL, cfg.LiteLLMAPIKey, cfg.LLMModel), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
