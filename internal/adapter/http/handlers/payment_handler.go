package handlers

import (
	"errors"
	"net/http"
	"time"

	request "checkout_core/internal/adapter/http/dto/request"
	response "checkout_core/internal/adapter/http/dto/response"
	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"
	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg"
	"checkout_core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment catalogues, status polling and form validation.

type PaymentHandler struct {
	usecase usecase.ICheckoutUseCase
	now     func() time.Time
}

func NewPaymentHandler(uc usecase.ICheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc, now: time.Now}
}

// ListMethods godoc
// @Summary      Payment methods
// @Description  Enabled payment methods; a built-in list is served when the backend cannot be reached.
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.PaymentMethodsResponse
// @Router       /payments/methods [get]
func (h *PaymentHandler) ListMethods(c *gin.Context) {
	c.JSON(http.StatusOK, response.PaymentMethodsResponse{Methods: h.usecase.ListPaymentMethods(c.Request.Context())})
}

// ListPSEBanks godoc
// @Summary      PSE banks
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.PSEBanksResponse
// @Router       /payments/pse/banks [get]
func (h *PaymentHandler) ListPSEBanks(c *gin.Context) {
	c.JSON(http.StatusOK, response.PSEBanksResponse{Banks: h.usecase.ListPSEBanks(c.Request.Context())})
}

// GetStatus godoc
// @Summary      Payment status
// @Description  Normalized payment status of an order.
// @Tags         payments
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  entities.PaymentResult
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/status/{order_id} [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	result, err := h.usecase.GetPaymentStatus(c.Request.Context(), orderID)
	if err != nil {
		logger.Warn(c.Request.Context(), "[payment][handler] status failed", zap.String("order_id", orderID), zap.Error(err))
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// ValidatePayment godoc
// @Summary      Validate payment data
// @Description  Field level validation of the payment form. Nothing is charged.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  request.PaymentInfoRequest  true  "Payment data"
// @Success      200  {object}  response.PaymentValidationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/validate [post]
func (h *PaymentHandler) ValidatePayment(c *gin.Context) {
	var payload request.PaymentInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	info := payload.ToPaymentInfo()
	result := usecase.ValidatePaymentInfo(info, h.now())

	var cardType usecase.CardType
	if card, ok := info.Details.(entities.CardDetails); ok {
		cardType = usecase.DetectCardType(card.Number)
	}
	c.JSON(http.StatusOK, response.FromPaymentValidation(result, cardType))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentStatusUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_STATUS_UNAVAILABLE", "Payment status unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
