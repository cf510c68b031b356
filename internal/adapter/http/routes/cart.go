package routes

import (
	"checkout_core/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCarts = "/carts"
)

func addCartRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.GET("/:cart_id", cartHandler.GetCart)
		carts.DELETE("/:cart_id", cartHandler.ClearCart)
		carts.GET("/:cart_id/totals", cartHandler.GetTotals)
		carts.POST("/:cart_id/validate", cartHandler.ValidateCart)
		carts.POST("/:cart_id/items", cartHandler.AddItem)
		carts.PATCH("/:cart_id/items/:product_id", cartHandler.UpdateItem)
		carts.DELETE("/:cart_id/items/:product_id", cartHandler.RemoveItem)
	}
}
