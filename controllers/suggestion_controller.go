package controllers

import (
	"gin-grocery/constants"
	"gin-grocery/dto"
	"gin-grocery/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ISuggestionController interface {
	Suggest(ctx *gin.Context)
}

type SuggestionController struct {
	service services.ISuggestionService
}

func NewSuggestionController(service services.ISuggestionService) ISuggestionController {
	return &SuggestionController{service: service}
}

func (c *SuggestionController) Suggest(ctx *gin.Context) {
	var input dto.SuggestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	categories, err := c.service.Suggest(ctx.Request.Context(), input.Prompt, input.Budget)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuggestionResponse{Categories: categories})
}
