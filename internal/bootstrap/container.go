package bootstrap

import (
	"genai-studio-be/internal/config"
	"genai-studio-be/internal/controller"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/internal/pkg/serverutils"
	"genai-studio-be/internal/repository/unitofwork"
	"genai-studio-be/internal/service"
	"genai-studio-be/pkg/chat/ledger"
	"genai-studio-be/pkg/chat/session"
	"genai-studio-be/pkg/idgen"
	"genai-studio-be/pkg/imagegen/huggingface"
	"genai-studio-be/pkg/llm/factory"
	"genai-studio-be/pkg/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController     controller.IAuthController
	ChatController     controller.IChatController
	ImageGenController controller.IImageGenController

	// AuthGuard protects every route outside /api/auth
	AuthGuard fiber.Handler
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.ILogger) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	tokens := token.NewManager(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)

	// 2. Upstream providers
	chatProvider, err := factory.NewLLMProvider(chatProviderParams(cfg))
	if err != nil {
		return nil, err
	}
	imageProvider := huggingface.NewProvider(cfg.Keys.HuggingFace, cfg.Ai.HuggingFaceBaseURL, cfg.Ai.ImageModel, cfg.Ai.UpstreamTimeout)
	if !chatProvider.Configured() {
		log.Warn("BOOTSTRAP", "Chat provider is not configured; chat requests will fail", map[string]interface{}{
			"provider": cfg.Ai.ChatProvider,
		})
	}
	if !imageProvider.Configured() {
		log.Warn("BOOTSTRAP", "HUGGING_FACE_API_KEY is not set; image requests will fail", nil)
	}

	// 3. Chat domain
	chatLedger := ledger.NewLedger(uowFactory)
	aggregator := session.NewAggregator(chatLedger)

	// 4. Services
	authService := service.NewAuthService(uowFactory, tokens, log)
	chatService := service.NewChatService(chatLedger, aggregator, chatProvider, idgen.NewSessionIDGenerator(), log)
	imageGenService := service.NewImageGenService(uowFactory, imageProvider, log)

	return &Container{
		Logger:             log,
		AuthController:     controller.NewAuthController(authService),
		ChatController:     controller.NewChatController(chatService),
		ImageGenController: controller.NewImageGenController(imageGenService),
		AuthGuard:          serverutils.AuthGuard(tokens, authService, log),
	}, nil
}

func chatProviderParams(cfg *config.Config) factory.Params {
	if cfg.Ai.ChatProvider == factory.ProviderOllama {
		return factory.Params{
			Provider: factory.ProviderOllama,
			BaseURL:  cfg.Ai.OllamaBaseURL,
			Model:    cfg.Ai.OllamaModel,
			Timeout:  cfg.Ai.UpstreamTimeout,
		}
	}
	return factory.Params{
		Provider: cfg.Ai.ChatProvider,
		APIKey:   cfg.Keys.GoogleGemini,
		BaseURL:  cfg.Ai.GeminiBaseURL,
		Model:    cfg.Ai.GeminiModel,
		Timeout:  cfg.Ai.UpstreamTimeout,
	}
}
