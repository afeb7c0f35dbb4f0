package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"voygo/internal/api/controllers"
	"voygo/internal/services"
	"voygo/pkg/utils"
)

var Module = fx.Provide(
	ProvideTravelModelClient,
	ProvideResearchService,
	ProvideSynthesisService,
	ProvidePlannerService,
	ProvideItineraryController,
)

// ModelConfig holds configuration for the generative model client
type ModelConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideTravelModelClient creates a text-model client based on environment variables
func ProvideTravelModelClient() (utils.TravelModelInterface, error) {
	config := getModelConfig()

	log.Printf("Initializing %s travel model client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAITravelClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiTravelClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideResearchService(aiClient utils.TravelModelInterface) services.ResearchServiceInterface {
	return services.NewResearchService(aiClient)
}

func ProvideSynthesisService(aiClient utils.TravelModelInterface) services.SynthesisServiceInterface {
	return services.NewSynthesisService(aiClient)
}

func ProvidePlannerService(
	research services.ResearchServiceInterface,
	synthesis services.SynthesisServiceInterface,
	aiClient utils.TravelModelInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(research, synthesis, aiClient)
}

func ProvideItineraryController(
	plannerService services.PlannerServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(plannerService)
}

// getModelConfig reads configuration from environment variables
func getModelConfig() ModelConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ModelConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
