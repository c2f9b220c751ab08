package controllers

import (
	"fmt"
	"gin-grocery/constants"
	"gin-grocery/dto"
	"gin-grocery/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	FindAll(ctx *gin.Context)
	Add(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Clear(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func (c *CartController) FindAll(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	items, err := c.service.GetCart(ctx.Request.Context(), email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCartResponse(items))
}

func (c *CartController) Add(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	var input dto.AddCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	items, created, err := c.service.AddItem(ctx.Request.Context(), email, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if created {
		ctx.JSON(http.StatusCreated, dto.CartMutationResponse{Message: "Item added", Cart: dto.NewCartResponse(items)})
		return
	}
	ctx.JSON(http.StatusOK, dto.CartMutationResponse{Message: "Quantity updated", Cart: dto.NewCartResponse(items)})
}

func (c *CartController) Delete(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	itemName := ctx.Param("itemName")
	items, err := c.service.DeleteItem(ctx.Request.Context(), email, itemName)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CartMutationResponse{
		Message: fmt.Sprintf("%s removed", itemName),
		Cart:    dto.NewCartResponse(items),
	})
}

func (c *CartController) Clear(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	if err := c.service.ClearCart(ctx.Request.Context(), email); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CartMutationResponse{
		Message: "Cart cleared successfully",
		Cart:    []dto.CartItemResponse{},
	})
}
