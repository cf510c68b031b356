package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidOrderID            = errors.New("invalid order id")
	ErrInvalidAttemptID          = errors.New("invalid checkout attempt id")
	ErrCheckoutAttemptNotFound   = errors.New("checkout attempt not found")
	ErrCheckoutLedgerDisabled    = errors.New("checkout attempt ledger disabled")
	ErrPaymentStatusUnavailable  = errors.New("payment status unavailable")
	ErrPaymentGatewayNotSet      = errors.New("payment gateway not configured")
	errOrderGatewayNotConfigured = errors.New("order gateway not configured")
)

const (
	msgCartNeedsReview     = "Revisa tu carrito antes de continuar"
	msgPaymentDataInvalid  = "Revisa los datos de pago"
	msgOrderCreationFailed = "No fue posible crear el pedido. Intenta nuevamente."
	msgPaymentFailed       = "No fue posible procesar el pago. Intenta nuevamente."
	msgPaymentApproved     = "Pago aprobado"
	msgPaymentPending      = "Tu pago está en proceso de confirmación"
	msgPaymentDeclined     = "El pago fue rechazado"
)

// FailureReason tells why an attempt did not succeed.
type FailureReason string

const (
	FailureNone               FailureReason = ""
	FailureCartInvalid        FailureReason = "cart_invalid"
	FailureMinimumOrder       FailureReason = "minimum_order"
	FailurePaymentDataInvalid FailureReason = "payment_data_invalid"
	FailureOrderCreation      FailureReason = "order_creation_failed"
	FailurePaymentProcessing  FailureReason = "payment_processing_failed"
	FailurePaymentDeclined    FailureReason = "payment_declined"
)

// CheckoutRequest starts a checkout attempt. When Items is empty the stored cart of
// CartID is used.
type CheckoutRequest struct {
	CartID            string
	Items             []entities.CartLineItem
	Shipping          entities.ShippingAddress
	Notes             string
	BillingNIT        string
	Payment           entities.PaymentInfo
	SavePaymentMethod bool
}

// CheckoutOutcome is everything the client needs to render the result of an attempt.
type CheckoutOutcome struct {
	AttemptID      string                         `json:"attempt_id"`
	Stage          entities.CheckoutStage         `json:"stage"`
	FailureReason  FailureReason                  `json:"failure_reason,omitempty"`
	Reconciliation *entities.ReconciliationResult `json:"reconciliation,omitempty"`
	Totals         entities.CartTotals            `json:"totals"`
	Shipping       entities.ShippingQuote         `json:"shipping"`
	Result         entities.PaymentResult         `json:"result"`
}

// ICheckoutUseCase orchestrates order creation followed by payment processing.
//
// Checkout never returns raw transport errors: every failure is reported in the
// outcome. A retry after an error starts a new order, it never resumes the old one.
// Payment info is validated before the order is created, so an invalid form never
// creates an order.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, req CheckoutRequest) CheckoutOutcome
	GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentResult, error)
	ListPaymentMethods(ctx context.Context) []entities.PaymentMethodOption
	ListPSEBanks(ctx context.Context) []entities.PSEBank
	GetAttempt(ctx context.Context, id string) (entities.CheckoutAttempt, error)
}

type CheckoutUseCase struct {
	storage    ICartStorage
	reconciler ICartReconciliationUseCase
	orders     interfaces.IOrderGateway
	payments   interfaces.IPaymentGateway
	methods    interfaces.IPaymentMethodCatalog
	attempts   interfaces.ICheckoutAttemptRepository
	banks      []entities.PSEBank
	now        func() time.Time
	newID      func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the orchestrator. methods and attempts may be nil.
func NewCheckoutUseCase(
	storage ICartStorage,
	reconciler ICartReconciliationUseCase,
	orders interfaces.IOrderGateway,
	payments interfaces.IPaymentGateway,
	methods interfaces.IPaymentMethodCatalog,
	attempts interfaces.ICheckoutAttemptRepository,
	banks []entities.PSEBank,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		storage:    storage,
		reconciler: reconciler,
		orders:     orders,
		payments:   payments,
		methods:    methods,
		attempts:   attempts,
		banks:      banks,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, req CheckoutRequest) (out CheckoutOutcome) {
	cartID := strings.TrimSpace(req.CartID)
	attempt := entities.NewCheckoutAttempt(u.newID(), cartID, u.now())
	attempt.Method = req.Payment.Method()
	out.AttemptID = attempt.ID
	logger.Info(ctx, "[checkout][usecase] attempt started", zap.String("attempt_id", attempt.ID), zap.String("cart_id", cartID), zap.String("method", string(attempt.Method)))

	defer func() {
		out.Stage = attempt.Stage
		res := out.Result
		attempt.Result = &res
		u.record(ctx, *attempt)
	}()

	items := req.Items
	if len(items) == 0 && cartID != "" {
		items = u.storage.Load(ctx, cartID)
	}

	rec := u.reconciler.Reconcile(ctx, items)
	out.Reconciliation = &rec
	if !rec.Valid {
		out.Result = failure(entities.PaymentStatusError, msgCartNeedsReview, issueErrors(rec.Errors))
		out.FailureReason = FailureCartInvalid
		u.advance(ctx, attempt, entities.StageError)
		return out
	}
	items = rec.UpdatedItems
	if rec.HasWarnings() && cartID != "" && len(req.Items) == 0 {
		if err := u.storage.Save(ctx, cartID, items); err != nil {
			logger.Warn(ctx, "[checkout][usecase] corrected cart not saved", zap.String("cart_id", cartID), zap.Error(err))
		}
	}

	summary := Summarize(cartID, items, req.Shipping.Destination())
	out.Totals, out.Shipping = summary.Totals, summary.Shipping
	attempt.Amount = summary.Totals.Total
	if !summary.MinimumOrder.Valid {
		out.Result = failure(entities.PaymentStatusError, summary.MinimumOrder.Message, nil)
		out.FailureReason = FailureMinimumOrder
		u.advance(ctx, attempt, entities.StageError)
		return out
	}

	// payment data is checked up front so a bad form never leaves an orphan order
	if v := ValidatePaymentInfo(req.Payment, u.now()); !v.Valid {
		logger.Info(ctx, "[checkout][usecase] payment info rejected", zap.String("attempt_id", attempt.ID), zap.Int("fields", len(v.Errors)))
		out.Result = failure(entities.PaymentStatusError, msgPaymentDataInvalid, v.Errors)
		out.FailureReason = FailurePaymentDataInvalid
		u.advance(ctx, attempt, entities.StageError)
		return out
	}

	u.advance(ctx, attempt, entities.StageOrderCreating)
	order, err := u.createOrder(ctx, entities.OrderRequest{
		Items:      entities.OrderItemsFromCart(items),
		Shipping:   req.Shipping,
		Notes:      req.Notes,
		BillingNIT: req.BillingNIT,
	})
	if err != nil {
		logger.Error(ctx, "[checkout][usecase] order creation failed", err, zap.String("attempt_id", attempt.ID))
		out.Result = failure(entities.PaymentStatusError, messageOr(err, msgOrderCreationFailed), nil)
		out.FailureReason = FailureOrderCreation
		u.advance(ctx, attempt, entities.StageError)
		return out
	}
	attempt.OrderID = order.ID
	u.advance(ctx, attempt, entities.StageOrderCreated)
	logger.Info(ctx, "[checkout][usecase] order created", zap.String("attempt_id", attempt.ID), zap.String("order_id", order.ID), zap.String("order_number", order.OrderNumber))

	amount := summary.Totals.Total
	if order.Total > 0 {
		amount = order.Total
	}
	attempt.Amount = amount

	u.advance(ctx, attempt, entities.StagePaymentProcessing)
	resp, err := u.processPayment(ctx, entities.PaymentRequest{
		OrderID:           order.ID,
		Amount:            amount,
		Description:       orderDescription(order),
		Info:              req.Payment,
		SavePaymentMethod: req.SavePaymentMethod,
	})
	if err != nil {
		// the order stays in whatever state the backend left it
		logger.Error(ctx, "[checkout][usecase] payment processing failed", err, zap.String("attempt_id", attempt.ID), zap.String("order_id", order.ID))
		out.Result = failure(entities.PaymentStatusError, messageOr(err, msgPaymentFailed), nil)
		out.FailureReason = FailurePaymentProcessing
		out.Result.OrderID, out.Result.OrderNumber = order.ID, order.OrderNumber
		u.advance(ctx, attempt, entities.StageError)
		return out
	}

	out.Result = buildResult(order, resp)
	switch out.Result.Status {
	case entities.PaymentStatusDeclined:
		out.FailureReason = FailurePaymentDeclined
	case entities.PaymentStatusError:
		out.FailureReason = FailurePaymentProcessing
	}
	u.advance(ctx, attempt, entities.StageForStatus(out.Result.Status))
	logger.Info(ctx, "[checkout][usecase] payment processed",
		zap.String("attempt_id", attempt.ID),
		zap.String("order_id", order.ID),
		zap.String("transaction_id", resp.TransactionID),
		zap.String("provider_status", resp.Status),
		zap.String("status", string(out.Result.Status)))

	if out.Result.Success && cartID != "" {
		if err := u.storage.Clear(ctx, cartID); err != nil {
			logger.Warn(ctx, "[checkout][usecase] cart not cleared", zap.String("cart_id", cartID), zap.Error(err))
		}
	}
	return out
}

func (u *CheckoutUseCase) createOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error) {
	if u.orders == nil {
		return entities.Order{}, errOrderGatewayNotConfigured
	}
	order, err := u.orders.CreateOrder(ctx, req)
	if err == nil && strings.TrimSpace(order.ID) == "" {
		err = errors.New("order created without id")
	}
	return order, err
}

func (u *CheckoutUseCase) processPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
	if u.payments == nil {
		return entities.PaymentResponse{}, ErrPaymentGatewayNotSet
	}
	return u.payments.ProcessPayment(ctx, req)
}

func (u *CheckoutUseCase) GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentResult{}, ErrInvalidOrderID
	}
	if u.payments == nil {
		return entities.PaymentResult{}, ErrPaymentGatewayNotSet
	}
	resp, err := u.payments.GetPaymentStatus(ctx, orderID)
	if err != nil {
		logger.Error(ctx, "[payment][usecase] status lookup failed", err, zap.String("order_id", orderID))
		return entities.PaymentResult{}, fmt.Errorf("%w: %w", ErrPaymentStatusUnavailable, err)
	}
	return buildResult(entities.Order{ID: orderID}, resp), nil
}

func (u *CheckoutUseCase) ListPaymentMethods(ctx context.Context) []entities.PaymentMethodOption {
	if u.methods != nil {
		methods, err := u.methods.ListPaymentMethods(ctx)
		if err == nil && len(methods) > 0 {
			return methods
		}
		if err != nil {
			logger.Warn(ctx, "[payment][usecase] payment methods unavailable, using fallback", zap.Error(err))
		}
	}
	return DefaultPaymentMethods()
}

// DefaultPaymentMethods is served when the backend catalogue cannot be read.
func DefaultPaymentMethods() []entities.PaymentMethodOption {
	return []entities.PaymentMethodOption{
		{ID: "pse", Name: "PSE - Débito bancario", Type: entities.PaymentMethodPSE, Enabled: true},
		{ID: "credit_card", Name: "Tarjeta de crédito", Type: entities.PaymentMethodCreditCard, Enabled: true},
		{ID: "bank_transfer", Name: "Transferencia bancaria", Type: entities.PaymentMethodBankTransfer, Enabled: false},
	}
}

func (u *CheckoutUseCase) ListPSEBanks(_ context.Context) []entities.PSEBank {
	out := make([]entities.PSEBank, len(u.banks))
	copy(out, u.banks)
	return out
}

func (u *CheckoutUseCase) GetAttempt(ctx context.Context, id string) (entities.CheckoutAttempt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutAttempt{}, ErrInvalidAttemptID
	}
	if u.attempts == nil {
		return entities.CheckoutAttempt{}, ErrCheckoutLedgerDisabled
	}
	a, err := u.attempts.GetByID(ctx, id)
	if err != nil {
		return entities.CheckoutAttempt{}, err
	}
	if a.ID == "" {
		return entities.CheckoutAttempt{}, ErrCheckoutAttemptNotFound
	}
	return a, nil
}

// NormalizePaymentStatus maps the backend status vocabulary to PaymentStatus.
func NormalizePaymentStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "completed":
		return entities.PaymentStatusApproved
	case "pending", "processing":
		return entities.PaymentStatusPending
	case "declined", "failed":
		return entities.PaymentStatusDeclined
	default:
		return entities.PaymentStatusError
	}
}

func buildResult(order entities.Order, resp entities.PaymentResponse) entities.PaymentResult {
	status := NormalizePaymentStatus(resp.Status)
	ok := status == entities.PaymentStatusApproved || status == entities.PaymentStatusPending
	if ok && !resp.Success {
		status = entities.PaymentStatusError
		ok = false
	}
	msg := resp.Message
	if msg == "" {
		msg = statusMessage(status)
	}
	return entities.PaymentResult{
		Success:       ok,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		TransactionID: resp.TransactionID,
		RedirectURL:   resp.PaymentURL,
		Status:        status,
		Message:       msg,
	}
}

func statusMessage(status entities.PaymentStatus) string {
	switch status {
	case entities.PaymentStatusApproved:
		return msgPaymentApproved
	case entities.PaymentStatusPending:
		return msgPaymentPending
	case entities.PaymentStatusDeclined:
		return msgPaymentDeclined
	default:
		return msgPaymentFailed
	}
}

func failure(status entities.PaymentStatus, msg string, errs map[string]string) entities.PaymentResult {
	return entities.PaymentResult{Success: false, Status: status, Message: msg, Errors: errs}
}

func issueErrors(issues []entities.ReconciliationIssue) map[string]string {
	if len(issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(issues))
	for _, is := range issues {
		key := is.ProductID
		if key == "" {
			key = string(is.Kind)
		}
		out[key] = is.Message
	}
	return out
}

// messageOr surfaces the backend's own message when there is one.
func messageOr(err error, fallback string) string {
	if msg, ok := interfaces.BackendMessage(err); ok {
		return msg
	}
	return fallback
}

func orderDescription(o entities.Order) string {
	if o.OrderNumber != "" {
		return "Pedido " + o.OrderNumber
	}
	return "Pedido " + o.ID
}

func (u *CheckoutUseCase) advance(ctx context.Context, a *entities.CheckoutAttempt, next entities.CheckoutStage) {
	if err := a.Advance(next, u.now()); err != nil {
		logger.Warn(ctx, "[checkout][usecase] stage transition rejected", zap.String("attempt_id", a.ID), zap.Error(err))
	}
}

// record writes the attempt to the ledger. Ledger failures never change the outcome.
func (u *CheckoutUseCase) record(ctx context.Context, a entities.CheckoutAttempt) {
	if u.attempts == nil {
		return
	}
	if err := u.attempts.Save(ctx, a); err != nil {
		logger.Warn(ctx, "[checkout][usecase] attempt not recorded", zap.String("attempt_id", a.ID), zap.Error(err))
	}
}
