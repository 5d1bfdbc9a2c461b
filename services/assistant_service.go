package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ComputingVictor/Mercadona-Agent/config"
	"github.com/ComputingVictor/Mercadona-Agent/models"
)

// ErrAssistantUnavailable means no Gemini client is configured.
var ErrAssistantUnavailable = errors.New("assistant is not configured")

// AssistantFallbackMessage is shown to the user whenever the upstream call
// fails; assistant errors never propagate past the handler.
const AssistantFallbackMessage = "El asistente no está disponible en este momento. Inténtalo de nuevo más tarde."

const assistantSystemPrompt = "Eres el asistente de un catálogo de productos de supermercado Mercadona. " +
	"Responde en español, de forma breve y útil, usando solo el contexto proporcionado."

// BuildAssistantContext renders the context line sent with every question:
// the viewed product's details when there is one, else a generic catalog
// description.
func BuildAssistantContext(product *models.Product, catalogSize int) string {
	if product == nil {
		return fmt.Sprintf("El usuario está navegando por el catálogo completo (%d productos).", catalogSize)
	}

	parts := []string{
		"Producto: " + product.Name,
		"Categoría: " + product.Category,
	}
	if product.Subtitle != "" {
		parts = append(parts, "Formato: "+product.Subtitle)
	}
	if product.Price != "" {
		parts = append(parts, "Precio: "+product.Price)
	}
	return strings.Join(parts, ". ")
}

// AskAssistant relays one question to Gemini: a single request/response
// call, no streaming, no retry.
func AskAssistant(ctx context.Context, question, contextLine string) (string, error) {
	if config.AssistantClient == nil {
		return "", ErrAssistantUnavailable
	}

	prompt := fmt.Sprintf("%s\n\nContexto: %s\n\nPregunta: %s",
		assistantSystemPrompt, contextLine, question)

	result, err := config.AssistantClient.Models.GenerateContent(
		ctx,
		config.AssistantModel,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("assistant query failed: %w", err)
	}

	answer := strings.TrimSpace(result.Text())
	if answer == "" {
		return "", errors.New("assistant returned an empty answer")
	}
	return answer, nil
}
