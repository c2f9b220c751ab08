package services

import (
	"context"
	"errors"
	"testing"

	"gin-grocery/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply  string
	err    error
	system string
	prompt string
}

func (c *fakeCompleter) Complete(_ context.Context, systemInstruction, prompt string) (string, error) {
	c.system = systemInstruction
	c.prompt = prompt
	return c.reply, c.err
}

func TestSuggest(t *testing.T) {
	completer := &fakeCompleter{reply: "```json\n{\"categories\": [{\"name\": \"Dairy\", \"items\": [{\"name\": \"Milk\", \"price\": 50}]}]}\n```"}
	service := NewSuggestionService(completer)

	categories, err := service.Suggest(context.Background(), "we drink a lot of milk", "")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"name": "Dairy", "items": [{"name": "Milk", "price": 50}]}]`, string(categories))
	assert.Equal(t, ai.SystemInstruction, completer.system)
	assert.Contains(t, completer.prompt, "we drink a lot of milk")
	assert.Contains(t, completer.prompt, "Their budget level: medium")
}

func TestSuggest_BudgetTier(t *testing.T) {
	completer := &fakeCompleter{reply: `{"categories": []}`}

	_, err := NewSuggestionService(completer).Suggest(context.Background(), "snacks", "low")

	require.NoError(t, err)
	assert.Contains(t, completer.prompt, "Their budget level: low")
}

func TestSuggest_EmptyPrompt(t *testing.T) {
	completer := &fakeCompleter{}

	_, err := NewSuggestionService(completer).Suggest(context.Background(), "  ", "medium")

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Empty(t, completer.prompt)
}

func TestSuggest_InvalidReply(t *testing.T) {
	completer := &fakeCompleter{reply: "I think you should buy apples."}

	_, err := NewSuggestionService(completer).Suggest(context.Background(), "fruit", "medium")

	var parseErr *ai.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "I think you should buy apples.", parseErr.Raw)
}

func TestSuggest_CompletionFailure(t *testing.T) {
	upstream := errors.New("upstream unavailable")

	_, err := NewSuggestionService(&fakeCompleter{err: upstream}).Suggest(context.Background(), "fruit", "medium")

	assert.ErrorIs(t, err, upstream)
	assert.Zero(t, KindOf(err))
}
