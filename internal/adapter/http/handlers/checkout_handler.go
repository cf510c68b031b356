package handlers

import (
	"errors"
	"net/http"

	request "checkout_core/internal/adapter/http/dto/request"
	response "checkout_core/internal/adapter/http/dto/response"
	"checkout_core/internal/usecase"
	"checkout_core/pkg"
	"checkout_core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for checkout attempts.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout godoc
// @Summary      Checkout
// @Description  Reconciles the stored cart (or the given items), creates the order and processes the payment.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  request.CheckoutRequest  true  "Checkout"
// @Success      201  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn(c.Request.Context(), "[checkout][handler] invalid payload", zap.Error(err))
		respondError(c, invalidRequest(err))
		return
	}

	outcome := h.usecase.Checkout(c.Request.Context(), usecase.CheckoutRequest{
		CartID:            payload.CartID,
		Items:             request.CartItemsToEntities(payload.Items),
		Shipping:          payload.Shipping.ToEntity(),
		Notes:             payload.Notes,
		BillingNIT:        payload.BillingNIT,
		Payment:           payload.Payment.ToPaymentInfo(),
		SavePaymentMethod: payload.SavePaymentMethod,
	})
	body := response.FromCheckoutOutcome(outcome)

	if outcome.FailureReason != usecase.FailureNone {
		logger.Info(c.Request.Context(), "[checkout][handler] attempt failed", zap.String("attempt_id", outcome.AttemptID), zap.String("reason", string(outcome.FailureReason)))
		respondError(c, mapCheckoutFailure(outcome).WithDetails(body))
		return
	}
	logger.Info(c.Request.Context(), "[checkout][handler] attempt succeeded", zap.String("attempt_id", outcome.AttemptID), zap.String("order_id", outcome.Result.OrderID), zap.String("status", string(outcome.Result.Status)))
	c.JSON(http.StatusCreated, body)
}

// GetAttempt godoc
// @Summary      Checkout attempt
// @Description  Returns the ledger record of a checkout attempt.
// @Tags         checkout
// @Produce      json
// @Param        attempt_id  path  string  true  "Attempt ID"
// @Success      200  {object}  response.CheckoutAttemptResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/attempts/{attempt_id} [get]
func (h *CheckoutHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.usecase.GetAttempt(c.Request.Context(), c.Param("attempt_id"))
	if err != nil {
		respondError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutAttempt(attempt))
}

func mapCheckoutFailure(o usecase.CheckoutOutcome) *pkg.AppError {
	msg := o.Result.Message
	switch o.FailureReason {
	case usecase.FailureCartInvalid:
		return pkg.NewDomainErrorSimple("CART_INVALID", msg, http.StatusConflict)
	case usecase.FailureMinimumOrder:
		return pkg.NewDomainErrorSimple("MINIMUM_ORDER_NOT_MET", msg, http.StatusUnprocessableEntity)
	case usecase.FailurePaymentDataInvalid:
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", msg, http.StatusUnprocessableEntity)
	case usecase.FailureOrderCreation:
		return pkg.NewDomainErrorSimple("ORDER_CREATION_FAILED", msg, http.StatusBadGateway)
	case usecase.FailurePaymentProcessing:
		return pkg.NewDomainErrorSimple("PAYMENT_PROCESSING_FAILED", msg, http.StatusBadGateway)
	case usecase.FailurePaymentDeclined:
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", msg, http.StatusPaymentRequired)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttemptID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutAttemptNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_ATTEMPT_NOT_FOUND", "Checkout attempt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutLedgerDisabled):
		return pkg.NewDomainErrorSimple("CHECKOUT_LEDGER_DISABLED", "Checkout attempt ledger is disabled", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
