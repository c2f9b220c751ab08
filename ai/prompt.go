package ai

import "fmt"

const SystemInstruction = `You're an AI assistant. Based on the user's grocery needs, return only a JSON object with this format:

{
  "categories": [
    { "name": "Produce", "items": [ {"name": "Tomato", "price": 30} ] },
    { "name": "Dairy", "items": [ {"name": "Milk", "price": 50} ] }
  ]
}

Return ONLY valid JSON. No markdown. No explanations.`

const promptTemplate = `You are an AI assistant helping roommates create a smart grocery list.

Here are their preferences: %s
Their budget level: %s

Generate a shopping list grouped by category, with items and approximate prices.

Respond ONLY with valid JSON in the following format:
{
  "categories": [
    {
      "name": "Produce",
      "items": [
        {"name": "Apples", "price": 40},
        {"name": "Tomatoes", "price": 30}
      ]
    },
    {
      "name": "Dairy",
      "items": [
        {"name": "Milk", "price": 50}
      ]
    }
  ]
}

- Prices must be approximate INR integers.
- No explanations. No markdown. Only valid JSON.
`

// BuildPrompt は好みと予算レベルを買い物リスト生成の指示文に埋め込む
func BuildPrompt(preferences, budgetTier string) string {
	return fmt.Sprintf(promptTemplate, preferences, budgetTier)
}
