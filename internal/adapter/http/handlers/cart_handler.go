package handlers

import (
	"errors"
	"net/http"

	request "checkout_core/internal/adapter/http/dto/request"
	response "checkout_core/internal/adapter/http/dto/response"
	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"
	"checkout_core/pkg"
	"checkout_core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the persisted buyer cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary      Get cart
// @Description  Returns the stored cart (empty when missing or expired) with totals for the destination.
// @Tags         carts
// @Produce      json
// @Param        cart_id     path   string  true   "Cart ID"
// @Param        city        query  string  false  "Destination city"
// @Param        department  query  string  false  "Destination department"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /carts/{cart_id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	summary, err := h.usecase.GetCart(c.Request.Context(), c.Param("cart_id"), destinationFromQuery(c))
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartSummary(summary))
}

// GetTotals godoc
// @Summary      Cart totals
// @Tags         carts
// @Produce      json
// @Param        cart_id     path   string  true   "Cart ID"
// @Param        city        query  string  false  "Destination city"
// @Param        department  query  string  false  "Destination department"
// @Success      200  {object}  response.CartTotalsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/totals [get]
func (h *CartHandler) GetTotals(c *gin.Context) {
	summary, err := h.usecase.GetCart(c.Request.Context(), c.Param("cart_id"), destinationFromQuery(c))
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.TotalsFromCartSummary(summary))
}

// AddItem godoc
// @Summary      Add item
// @Description  Adds a line, merging it with an identical product and variant and clamping to the known stock.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                   true  "Cart ID"
// @Param        item     body  request.CartItemRequest  true  "Item"
// @Success      201  {object}  response.CartItemsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn(c.Request.Context(), "[cart][handler] invalid add payload", zap.String("cart_id", cartID), zap.Error(err))
		respondError(c, invalidRequest(err))
		return
	}

	items, err := h.usecase.AddItem(c.Request.Context(), cartID, payload.ToEntity())
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusCreated, response.NewCartItemsResponse(cartID, items))
}

// UpdateItem godoc
// @Summary      Update item quantity
// @Description  Sets the quantity of a line; zero removes it.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id     path  string                         true  "Cart ID"
// @Param        product_id  path  string                         true  "Product ID"
// @Param        body        body  request.UpdateCartItemRequest  true  "Quantity"
// @Success      200  {object}  response.CartItemsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/items/{product_id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	items, err := h.usecase.UpdateQuantity(c.Request.Context(), cartID, c.Param("product_id"), payload.Variant(), *payload.Quantity)
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewCartItemsResponse(cartID, items))
}

// RemoveItem godoc
// @Summary      Remove item
// @Description  Removes the line of a product. variant[key]=value narrows it to one variant.
// @Tags         carts
// @Produce      json
// @Param        cart_id     path  string  true  "Cart ID"
// @Param        product_id  path  string  true  "Product ID"
// @Success      200  {object}  response.CartItemsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	variant := request.VariantFromQuery(c.QueryMap("variant"))

	items, err := h.usecase.RemoveItem(c.Request.Context(), cartID, c.Param("product_id"), variant)
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewCartItemsResponse(cartID, items))
}

// ClearCart godoc
// @Summary      Clear cart
// @Tags         carts
// @Param        cart_id  path  string  true  "Cart ID"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /carts/{cart_id} [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.Param("cart_id")); err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateCart godoc
// @Summary      Reconcile cart
// @Description  Re-checks every line against the catalogue. When valid, corrected prices and quantities are saved.
// @Tags         carts
// @Produce      json
// @Param        cart_id  path  string  true  "Cart ID"
// @Success      200  {object}  response.ReconciliationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/validate [post]
func (h *CartHandler) ValidateCart(c *gin.Context) {
	cartID := c.Param("cart_id")
	result, err := h.usecase.Validate(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	logger.Info(c.Request.Context(), "[cart][handler] validated", zap.String("cart_id", cartID), zap.Bool("valid", result.Valid), zap.Int("errors", len(result.Errors)), zap.Int("warnings", len(result.Warnings)))
	c.JSON(http.StatusOK, response.FromReconciliation(result))
}

func destinationFromQuery(c *gin.Context) entities.ShippingDestination {
	return entities.ShippingDestination{City: c.Query("city"), Department: c.Query("department")}
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID):
		return pkg.NewDomainErrorSimple("INVALID_CART_ID", "Invalid cart id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_CART_ITEM", "Invalid cart item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
