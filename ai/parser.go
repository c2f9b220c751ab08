package ai

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	codeFence = "```"

	// モデルの返答がJSONでないときにクライアントへ返す文言
	ParseFailureReason = "AI response was not valid JSON."
)

// 中身の形はモデル任せなので検証せずにそのまま返す
type shoppingList struct {
	Categories json.RawMessage `json:"categories"`
}

// ParseError は調査用にパースできなかった返答全文を保持する
type ParseError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Reason + " " + e.Err.Error()
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseShoppingList はモデルの返答から categories を取り出す。
// コードフェンスがあれば最初のブロックだけを使う。categories がなければ空のリスト。
func ParseShoppingList(raw string) (json.RawMessage, error) {
	var list shoppingList
	if err := json.Unmarshal([]byte(stripFence(raw)), &list); err != nil {
		return nil, &ParseError{Reason: ParseFailureReason, Raw: raw, Err: err}
	}
	categories := bytes.TrimSpace(list.Categories)
	if len(categories) == 0 || bytes.Equal(categories, []byte("null")) {
		return json.RawMessage("[]"), nil
	}
	return json.RawMessage(categories), nil
}

// フェンスがなければ前後の空白を落とすだけ
func stripFence(raw string) string {
	text := strings.TrimSpace(raw)
	parts := strings.SplitN(text, codeFence, 3)
	if len(parts) < 2 {
		return text
	}

	segment := strings.TrimSpace(parts[1])
	if len(segment) >= 4 && strings.EqualFold(segment[:4], "json") {
		segment = segment[4:]
	}
	return strings.TrimSpace(segment)
}
