package repositories

import (
	"context"
	"errors"
	"gin-grocery/models"
	"time"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	AddBlacklistedToken(ctx context.Context, token string, expiresAt int64) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	CleanExpiredTokens(ctx context.Context, retention time.Duration) (int64, error)
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

// 同じトークンの二重ログアウトはエラーにしない
func (r *TokenRepository) AddBlacklistedToken(ctx context.Context, token string, expiresAt int64) error {
	blacklistedToken := models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	result := r.db.WithContext(ctx).Create(&blacklistedToken)
	if result.Error != nil && !isDuplicateKey(result.Error) {
		return result.Error
	}
	return nil
}

func (r *TokenRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	var blacklistedToken models.BlacklistedToken
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&blacklistedToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// CleanExpiredTokens は期限切れのトークンを物理削除する。
// 期限なし(0)のトークンは retention が正のときだけ、登録から retention 経過後に削除する。
func (r *TokenRepository) CleanExpiredTokens(ctx context.Context, retention time.Duration) (int64, error) {
	now := time.Now()
	query := r.db.WithContext(ctx).
		Unscoped().
		Where("expires_at > 0 AND expires_at < ?", now.Unix())
	if retention > 0 {
		query = query.Or("expires_at = 0 AND created_at < ?", now.Add(-retention))
	}

	result := query.Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
