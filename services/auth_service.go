package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"gin-grocery/constants"
	"gin-grocery/models"
	"gin-grocery/repositories"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Signup(ctx context.Context, email string, password string, username string) error
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
	VerifyToken(ctx context.Context, tokenString string) (string, error)
	Logout(ctx context.Context, tokenString string) error
}

type LoginResult struct {
	Token    string
	Username string
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	secretKey       []byte
	tokenTTL        time.Duration
}

// tokenTTL が 0 以下なら有効期限なしのトークンを発行する
func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, secretKey string, tokenTTL time.Duration) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		secretKey:       []byte(secretKey),
		tokenTTL:        tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, email string, password string, username string) error {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || password == "" || username == "" {
		return NewValidationError(constants.ErrSignupFields)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(passwordDigest(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.repository.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return NewConflictError(constants.ErrUserExists)
		}
		return err
	}

	slog.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)
	return nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, NewValidationError(constants.ErrLoginFields)
	}

	foundUser, err := s.repository.FindUser(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(constants.ErrUserNotFound)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), passwordDigest(password)); err != nil {
		return nil, NewAuthError(constants.ErrIncorrectPassword, nil)
	}

	token, err := s.CreateToken(foundUser.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: *token, Username: foundUser.Username}, nil
}

// bcrypt は72バイトまでしか見ないので、先に SHA-256 の16進表記(64バイト)にする
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// CreateToken は email を sub クレームに持つ HS256 トークンを発行する
func (s *AuthService) CreateToken(email string) (*string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  email,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, NewAuthError(constants.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, NewAuthError(constants.ErrInvalidToken, nil)
	}
	return claims, nil
}

// VerifyToken はトークンを検証し、識別子であるメールアドレスを返す
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	// トークンがブラックリストに含まれているかチェック
	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if isBlacklisted {
		return "", NewAuthError(constants.ErrInvalidToken, errors.New("token is blacklisted"))
	}

	return claims.Subject, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}

	// トークンをブラックリストに追加
	return s.tokenRepository.AddBlacklistedToken(ctx, tokenString, expiresAt)
}
