package controllers

import (
	"errors"
	"gin-grocery/ai"
	"gin-grocery/constants"
	"gin-grocery/dto"
	"gin-grocery/middlewares"
	"gin-grocery/services"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation, services.KindConflict:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError はエラーの種類からステータスコードを決めてレスポンスを書く
func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		ctx.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Message})
		return
	}

	var parseErr *ai.ParseError
	if errors.As(err, &parseErr) {
		ctx.JSON(http.StatusInternalServerError, dto.SuggestionErrorResponse{
			Error:     parseErr.Reason,
			RawOutput: parseErr.Raw,
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Unhandled error",
		"error", err,
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
	)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func requireEmail(ctx *gin.Context) (string, bool) {
	email, ok := middlewares.CurrentEmail(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
	}
	return email, ok
}
