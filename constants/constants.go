package constants

// カートの既定値
const (
	DefaultCategory    = "Uncategorized"
	DefaultContributor = "Unknown"
	DefaultQuantity    = 1
	DefaultBudgetTier  = "medium"
)

// エラーメッセージ
const (
	ErrUnexpected        = "Unexpected error"
	ErrInvalidInput      = "Invalid input"
	ErrSignupFields      = "Email, password, and username are required"
	ErrLoginFields       = "Email and password are required"
	ErrUserExists        = "User already exists"
	ErrUserNotFound      = "User not found"
	ErrIncorrectPassword = "Incorrect password"
	ErrInvalidToken      = "Invalid or expired token"
	ErrGroupNameRequired = "Group name is required"
	ErrGroupExists       = "Group already exists"
	ErrGroupNotFound     = "Group does not exist"
	ErrAlreadyInGroup    = "User already in a group"
	ErrNoGroup           = "You are not a part of any group yet!"
	ErrNotInGroup        = "User not in a group"
	ErrItemNameRequired  = "Item name is required"
	ErrPromptRequired    = "Prompt is required"
	ErrAINotConfigured   = "AI suggestions are not configured"
)
