package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gin-grocery/ai"
	"gin-grocery/constants"
	"log/slog"
	"strings"
)

type ISuggestionService interface {
	Suggest(ctx context.Context, preferences string, budgetTier string) (json.RawMessage, error)
}

type SuggestionService struct {
	completer ai.Completer
}

func NewSuggestionService(completer ai.Completer) ISuggestionService {
	return &SuggestionService{completer: completer}
}

// Suggest は *ai.ParseError をそのまま返す。呼び出し側で 500 に変換すること。
func (s *SuggestionService) Suggest(ctx context.Context, preferences string, budgetTier string) (json.RawMessage, error) {
	preferences = strings.TrimSpace(preferences)
	if preferences == "" {
		return nil, NewValidationError(constants.ErrPromptRequired)
	}
	budgetTier = strings.TrimSpace(budgetTier)
	if budgetTier == "" {
		budgetTier = constants.DefaultBudgetTier
	}

	raw, err := s.completer.Complete(ctx, ai.SystemInstruction, ai.BuildPrompt(preferences, budgetTier))
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("shopping list completion failed: %w", err)
	}

	categories, err := ai.ParseShoppingList(raw)
	if err != nil {
		slog.WarnContext(ctx, "AI response was not valid JSON", "error", err, "raw_length", len(raw))
		return nil, err
	}
	return categories, nil
}
