package bootstrap

import (
	"log"

	"kindalike-be/internal/config"
	"kindalike-be/internal/controller"
	"kindalike-be/internal/pkg/logger"
	"kindalike-be/internal/repository/unitofwork"
	"kindalike-be/internal/service"
	"kindalike-be/pkg/geoip"
	"kindalike-be/pkg/intent"
	"kindalike-be/pkg/llm/factory"
	"kindalike-be/pkg/search"
	"kindalike-be/pkg/yelp"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	PreferenceController controller.IPreferenceController
	ChatController       controller.IChatController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Providers
	llmProvider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	extractor := intent.NewExtractor(llmProvider, sysLogger)
	searcher := search.NewYelpSearcher(yelp.NewClient(cfg.Keys.Yelp), sysLogger)
	locator := geoip.NewResolver(cfg.Geo.BaseURL, cfg.Geo.DefaultLocation, sysLogger)

	// 3. Services
	authService := service.NewAuthService(uowFactory)
	preferenceService := service.NewPreferenceService(uowFactory)
	chatService := service.NewChatService(uowFactory, extractor, searcher, locator, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		PreferenceController: controller.NewPreferenceController(preferenceService),
		ChatController:       controller.NewChatController(chatService),
		Logger:               sysLogger,
	}
}
