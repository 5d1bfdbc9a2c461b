package config

import (
	"context"
	"log"
	"os"

	"google.golang.org/genai"
)

var (
	// AssistantClient is nil when GEMINI_API_KEY is not configured; the
	// assistant endpoints then answer with the fallback message.
	AssistantClient *genai.Client

	AssistantModel string
)

// InitAssistant creates the Gemini client for the product assistant. The
// assistant is optional: a missing key only disables that feature.
func InitAssistant() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, assistant disabled")
		return
	}

	AssistantModel = GetEnv("GEMINI_MODEL", "gemini-2.0-flash")

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("⚠️  failed to create Gemini client, assistant disabled: %v", err)
		return
	}

	AssistantClient = client
	log.Println("✅ Assistant client initialized:", AssistantModel)
}
