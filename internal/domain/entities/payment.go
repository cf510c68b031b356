package entities

// PaymentMethod is the tag of the PaymentInfo sum type.
type PaymentMethod string

const (
	PaymentMethodPSE          PaymentMethod = "pse"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsKnown reports whether m is a supported payment method tag.
func (m PaymentMethod) IsKnown() bool {
	switch m {
	case PaymentMethodPSE, PaymentMethodCreditCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// PaymentDetails is implemented only by the per-method detail structs of this package.
type PaymentDetails interface {
	Method() PaymentMethod
	paymentDetails()
}

// PSEUserType distinguishes natural persons from legal entities on PSE.
type PSEUserType string

const (
	PSEUserTypeNatural  PSEUserType = "natural"
	PSEUserTypeJuridica PSEUserType = "juridica"
)

// PSEDetails carries the fields of a PSE bank debit.
type PSEDetails struct {
	BankCode             string      `json:"bank_code"`
	UserType             PSEUserType `json:"user_type"`
	IdentificationType   string      `json:"identification_type"`
	IdentificationNumber string      `json:"identification_number"`
}

func (PSEDetails) Method() PaymentMethod { return PaymentMethodPSE }
func (PSEDetails) paymentDetails()       {}

// CardDetails carries the fields of a credit card charge.
type CardDetails struct {
	Number       string `json:"card_number"`
	HolderName   string `json:"card_holder_name"`
	ExpiryMonth  int    `json:"expiry_month"`
	ExpiryYear   int    `json:"expiry_year"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments,omitempty"`
	// Token is the provider card token produced by client side tokenization, when used.
	Token        string `json:"token,omitempty"`
}

func (CardDetails) Method() PaymentMethod { return PaymentMethodCreditCard }
func (CardDetails) paymentDetails()       {}

// BankTransferDetails carries the optional fields of a manual bank transfer.
type BankTransferDetails struct {
	BankCode  string `json:"bank_code,omitempty"`
	Reference string `json:"reference,omitempty"`
}

func (BankTransferDetails) Method() PaymentMethod { return PaymentMethodBankTransfer }
func (BankTransferDetails) paymentDetails()       {}

// PaymentInfo is what the buyer submits to pay for an order.
//
// RequestedMethod keeps the raw tag sent by the client so an unsupported method can be
// reported; Details is nil in that case.
type PaymentInfo struct {
	RequestedMethod PaymentMethod
	Email           string
	Details         PaymentDetails
}

// NewPaymentInfo builds a PaymentInfo whose tag matches its details.
func NewPaymentInfo(email string, details PaymentDetails) PaymentInfo {
	info := PaymentInfo{Email: email, Details: details}
	if details != nil {
		info.RequestedMethod = details.Method()
	}
	return info
}

// Method returns the tag of the details, or the raw requested tag when there are none.
func (p PaymentInfo) Method() PaymentMethod {
	if p.Details != nil {
		return p.Details.Method()
	}
	return p.RequestedMethod
}

// PaymentStatus is the normalized client-side payment status.
type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusDeclined PaymentStatus = "declined"
	PaymentStatusError    PaymentStatus = "error"
)

// PaymentRequest is sent to the payment gateway once the order exists.
type PaymentRequest struct {
	OrderID           string
	Amount            int64
	Description       string
	Info              PaymentInfo
	SavePaymentMethod bool
}

// PaymentResponse is the raw gateway answer, before status normalization.
type PaymentResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	PaymentURL    string `json:"payment_url,omitempty"`
	Message       string `json:"message,omitempty"`
}

// PaymentResult is the unified outcome of a checkout attempt. It is never mutated once
// returned; a retry produces a new result.
type PaymentResult struct {
	Success       bool              `json:"success"`
	OrderID       string            `json:"order_id,omitempty"`
	OrderNumber   string            `json:"order_number,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	RedirectURL   string            `json:"redirect_url,omitempty"`
	Status        PaymentStatus     `json:"status"`
	Message       string            `json:"message,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
}

// PaymentMethodOption is an entry of the enabled payment methods catalogue.
type PaymentMethodOption struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Type    PaymentMethod `json:"type"`
	Enabled bool          `json:"enabled"`
}

// PSEBank is a bank reachable through PSE.
type PSEBank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
