package dto

import "gin-grocery/models"

type AddCartItemInput struct {
	Item     string   `json:"item"`
	Category string   `json:"category"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=1"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Username string   `json:"username"`
}

type CartItemResponse struct {
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	AddedBy  string  `json:"added_by"`
}

type CartMutationResponse struct {
	Message string             `json:"message"`
	Cart    []CartItemResponse `json:"cart"`
}

func NewCartResponse(items []models.CartItem) []CartItemResponse {
	cart := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		cart = append(cart, CartItemResponse{
			Item:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Price:    item.Price,
			AddedBy:  item.Contributor,
		})
	}
	return cart
}
