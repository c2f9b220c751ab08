package middlewares

import (
	"gin-grocery/constants"
	"gin-grocery/services"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const emailKey = "email"

func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := BearerToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		email, err := authService.VerifyToken(ctx.Request.Context(), tokenString)
		if err != nil {
			if services.KindOf(err) != services.KindAuth {
				slog.ErrorContext(ctx.Request.Context(), "Token verification failed", "error", err)
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
			return
		}

		ctx.Set(emailKey, email)

		ctx.Next()
	}
}

// BearerToken は Authorization ヘッダーからトークン部分を取り出す
func BearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// CurrentEmail は AuthMiddleware が設定した識別子を返す
func CurrentEmail(ctx *gin.Context) (string, bool) {
	email := ctx.GetString(emailKey)
	return email, email != ""
}
