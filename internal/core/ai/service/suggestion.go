package service

import (
	"context"
	"fmt"
	"strings"

	"homechef/internal/core/ai/provider"
	"homechef/internal/core/recipe"
	"homechef/internal/pkg/common"

	"go.uber.org/zap"
)

const systemPersona = "You are HomeChef, a friendly culinary assistant. " +
	"Provide precise, safe, step-by-step guidance. Offer substitutions when " +
	"helpful and avoid unsafe advice."

// SuggestionResult is the raw assistant text plus the recipe-name candidates
// extracted from it.
type SuggestionResult struct {
	Text       string   `json:"text"`
	Candidates []string `json:"candidates"`
}

// SuggestionService formats prompts for the remote generator and parses its
// replies. It performs exactly one remote call per operation and never
// caches responses.
type SuggestionService struct {
	generator provider.Generator
	recipes   *recipe.Store
}

// NewSuggestionService creates a suggestion service.
func NewSuggestionService(generator provider.Generator, recipes *recipe.Store) *SuggestionService {
	return &SuggestionService{
		generator: generator,
		recipes:   recipes,
	}
}

// SuggestFromIngredients asks the assistant for recipe ideas, substitutions
// and creative variations for the given on-hand ingredients. The stored
// recipe names are included so the assistant can point at the local catalog.
func (s *SuggestionService) SuggestFromIngredients(ctx context.Context, ingredients []string) (*SuggestionResult, error) {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if n := recipe.NormalizeName(ing); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	if len(cleaned) == 0 {
		return nil, common.ValidationError("at least one ingredient is required")
	}

	var titles []string
	if s.recipes != nil {
		stored, err := s.recipes.List(ctx, recipe.Filter{})
		if err != nil {
			// Suggestions still work without the local catalog.
			common.LogWarn("could not load recipe titles for suggestion prompt", zap.Error(err))
		}
		for _, rec := range stored {
			titles = append(titles, rec.Name)
		}
	}

	prompt := buildSuggestionPrompt(cleaned, titles)

	common.LogDebug("assembled suggestion prompt", zap.Int("prompt_length", len(prompt)))

	text, err := s.generator.Generate(ctx, []provider.Message{
		{Role: provider.RoleSystem, Content: systemPersona},
		{Role: provider.RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("suggestion: %w", common.ErrRemoteEmptyResponse)
	}

	result := &SuggestionResult{
		Text:       text,
		Candidates: ExtractCandidates(text),
	}

	common.LogInfo("suggestion generated",
		zap.Int("ingredients", len(cleaned)),
		zap.Int("candidates", len(result.Candidates)),
	)
	return result, nil
}

// Chat sends a conversation turn to the assistant. The caller owns the
// history and is responsible for appending both the user message and the
// returned reply.
func (s *SuggestionService) Chat(ctx context.Context, history []provider.Message, message string, recipeContext *recipe.Recipe) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", common.ValidationError("message must not be empty")
	}

	messages := make([]provider.Message, 0, len(history)+3)
	messages = append(messages, provider.Message{Role: provider.RoleSystem, Content: systemPersona})
	if recipeContext != nil {
		messages = append(messages, provider.Message{
			Role:    provider.RoleSystem,
			Content: "Context: the user is looking at this recipe.\n" + formatRecipeContext(recipeContext),
		})
	}
	messages = append(messages, history...)
	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: message})

	reply, err := s.generator.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("chat: %w", common.ErrRemoteEmptyResponse)
	}
	return reply, nil
}

func buildSuggestionPrompt(ingredients, titles []string) string {
	var sb strings.Builder
	sb.WriteString("I have these ingredients on hand:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&sb, "- %s\n", ing)
	}

	if len(titles) > 0 {
		sb.WriteString("\nMy saved recipes are:\n")
		for _, title := range titles {
			fmt.Fprintf(&sb, "- %s\n", title)
		}
	}

	sb.WriteString("\nPlease:\n")
	sb.WriteString("1) name the saved recipes that best match what I have, one per line prefixed with \"- \";\n")
	sb.WriteString("2) propose up to 3 creative recipe ideas if the matches are weak, named the same way;\n")
	sb.WriteString("3) suggest simple substitutions for common missing ingredients.\n")
	return sb.String()
}

func formatRecipeContext(rec *recipe.Recipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Recipe: %s (difficulty %s, %d minutes)\n", rec.Name, rec.Difficulty, rec.CookTime)
	sb.WriteString("Ingredients:\n")
	for _, ing := range rec.Ingredients {
		if ing.Quantity > 0 {
			fmt.Fprintf(&sb, "- %g %s %s\n", ing.Quantity, ing.Unit, ing.Name)
		} else {
			fmt.Fprintf(&sb, "- %s\n", ing.Name)
		}
	}
	sb.WriteString("Steps:\n")
	for i, step := range rec.Steps {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, step.Text)
	}
	return sb.String()
}
