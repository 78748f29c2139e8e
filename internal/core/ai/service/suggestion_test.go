package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"homechef/internal/core/ai/provider"
	"homechef/internal/core/recipe"
	"homechef/internal/pkg/common"
)

// stubGenerator records the messages it was called with and returns a
// canned reply.
type stubGenerator struct {
	reply string
	err   error
	calls [][]provider.Message
}

func (s *stubGenerator) Generate(_ context.Context, messages []provider.Message) (string, error) {
	s.calls = append(s.calls, messages)
	return s.reply, s.err
}

func TestSuggestFromIngredients(t *testing.T) {
	stub := &stubGenerator{reply: "Matching recipes:\n- Veggie Omelette\n- Simple Crepes\n\nFor missing butter, use olive oil instead of butter in most pans."}
	svc := NewSuggestionService(stub, nil)

	result, err := svc.SuggestFromIngredients(context.Background(), []string{"Egg", "cheese"})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	if result.Text != stub.reply {
		t.Errorf("raw text should be returned verbatim")
	}
	if len(result.Candidates) != 2 || result.Candidates[0] != "Veggie Omelette" || result.Candidates[1] != "Simple Crepes" {
		t.Errorf("candidates = %+v", result.Candidates)
	}

	if len(stub.calls) != 1 {
		t.Fatalf("expected exactly one remote call, got %d", len(stub.calls))
	}
	messages := stub.calls[0]
	if messages[0].Role != provider.RoleSystem {
		t.Errorf("first message role = %q, want system", messages[0].Role)
	}
	prompt := messages[len(messages)-1].Content
	if !strings.Contains(prompt, "egg") || !strings.Contains(prompt, "cheese") {
		t.Errorf("prompt does not list the ingredients: %q", prompt)
	}
}

func TestSuggestEmptyRemoteResponse(t *testing.T) {
	stub := &stubGenerator{reply: ""}
	svc := NewSuggestionService(stub, nil)

	_, err := svc.SuggestFromIngredients(context.Background(), []string{"egg", "cheese"})
	if !common.IsRemoteEmptyResponse(err) {
		t.Fatalf("got %v, want remote empty response", err)
	}
}

func TestSuggestRemoteUnavailable(t *testing.T) {
	stub := &stubGenerator{err: common.ErrRemoteUnavailable}
	svc := NewSuggestionService(stub, nil)

	_, err := svc.SuggestFromIngredients(context.Background(), []string{"egg"})
	if !common.IsRemoteUnavailable(err) {
		t.Fatalf("got %v, want remote unavailable", err)
	}
	// Exactly one call, no retry.
	if len(stub.calls) != 1 {
		t.Fatalf("expected one remote call, got %d", len(stub.calls))
	}
}

func TestSuggestValidation(t *testing.T) {
	stub := &stubGenerator{reply: "anything"}
	svc := NewSuggestionService(stub, nil)

	_, err := svc.SuggestFromIngredients(context.Background(), []string{"  ", ""})
	if !common.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
	if len(stub.calls) != 0 {
		t.Fatal("no remote call should be made for invalid input")
	}
}

func TestChat(t *testing.T) {
	stub := &stubGenerator{reply: "Rest the batter for 30 minutes."}
	svc := NewSuggestionService(stub, nil)

	history := []provider.Message{
		{Role: provider.RoleUser, Content: "How do I make crepes?"},
		{Role: provider.RoleAssistant, Content: "Whisk flour and eggs first."},
	}
	rec := &recipe.Recipe{
		Name:       "Simple Crepes",
		Difficulty: recipe.DifficultyEasy,
		CookTime:   20,
		Ingredients: []recipe.RecipeIngredient{
			{Name: "flour", Quantity: 1, Unit: "cup"},
		},
		Steps: []recipe.RecipeStep{{Text: "Whisk flour and eggs."}},
	}

	reply, err := svc.Chat(context.Background(), history, "Any tips?", rec)
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != stub.reply {
		t.Errorf("reply = %q", reply)
	}

	messages := stub.calls[0]
	// system persona, recipe context, two history turns, new message.
	if len(messages) != 5 {
		t.Fatalf("got %d messages: %+v", len(messages), messages)
	}
	if !strings.Contains(messages[1].Content, "Simple Crepes") {
		t.Errorf("recipe context missing: %q", messages[1].Content)
	}
	if messages[4].Content != "Any tips?" {
		t.Errorf("last message = %q, want the new user message", messages[4].Content)
	}
	// The caller owns history; Chat must not mutate it.
	if len(history) != 2 {
		t.Errorf("history mutated: %+v", history)
	}
}

func TestChatValidation(t *testing.T) {
	svc := NewSuggestionService(&stubGenerator{reply: "x"}, nil)

	_, err := svc.Chat(context.Background(), nil, "   ", nil)
	if !common.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestChatEmptyReply(t *testing.T) {
	svc := NewSuggestionService(&stubGenerator{reply: "  \n "}, nil)

	_, err := svc.Chat(context.Background(), nil, "hello", nil)
	if !common.IsRemoteEmptyResponse(err) {
		t.Fatalf("got %v, want remote empty response", err)
	}
}

func TestChatRemoteError(t *testing.T) {
	wantErr := errors.New("boom")
	svc := NewSuggestionService(&stubGenerator{err: wantErr}, nil)

	_, err := svc.Chat(context.Background(), nil, "hello", nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want wrapped generator error", err)
	}
}
