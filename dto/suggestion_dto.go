package dto

import "encoding/json"

type SuggestionInput struct {
	Prompt string `json:"prompt"`
	Budget string `json:"budget"`
}

type SuggestionResponse struct {
	Categories json.RawMessage `json:"categories"`
}

type SuggestionErrorResponse struct {
	Error     string `json:"error"`
	RawOutput string `json:"rawOutput"`
}
