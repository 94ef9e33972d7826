package chat_fx

import (
	"log"
	"os"

	"companion/internal/repositories"
	"companion/internal/services"
	"companion/pkg/ai"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideConversationRepo, provideCompletionClient, provideChatService)

func provideConversationRepo(db *gorm.DB) repositories.ConversationRepository {
	return repositories.NewConversationRepository(db)
}

// Gemini is the default provider; AI_PROVIDER=openai switches the relay
// to OpenAI without touching the chat service.
func provideCompletionClient() ai.CompletionClient {
	if os.Getenv("AI_PROVIDER") == "openai" {
		return ai.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	}

	client, err := ai.NewGeminiClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create completion client: %v", err)
	}
	return client
}

func provideChatService(
	conversationRepo repositories.ConversationRepository,
	completion ai.CompletionClient,
	logger *zap.SugaredLogger,
) services.ChatServiceInterface {
	return services.NewChatService(conversationRepo, completion, logger)
}
