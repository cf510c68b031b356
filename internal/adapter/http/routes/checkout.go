package routes

import (
	"checkout_core/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout    = "/checkout"
	PathPayments    = "/payments"
	PathValidations = "/validations"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.Checkout)
		checkout.GET("/attempts/:attempt_id", checkoutHandler.GetAttempt)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/methods", paymentHandler.ListMethods)
		payments.GET("/pse/banks", paymentHandler.ListPSEBanks)
		payments.GET("/status/:order_id", paymentHandler.GetStatus)
		payments.POST("/validate", paymentHandler.ValidatePayment)
	}
}

func addValidationRoutes(rg *gin.RouterGroup, validationHandler *handlers.ValidationHandler) {
	validations := rg.Group(PathValidations)
	{
		validations.POST("/nit", validationHandler.ValidateNIT)
	}
}
