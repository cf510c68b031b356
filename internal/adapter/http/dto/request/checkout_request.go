package request

import (
	"strings"

	"checkout_core/internal/domain/entities"
)

type ShippingAddressRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	Department string `json:"department" binding:"required"`
	PostalCode string `json:"postal_code" binding:"omitempty,digits"`
}

func (r ShippingAddressRequest) ToEntity() entities.ShippingAddress {
	return entities.ShippingAddress{
		Name:       strings.TrimSpace(r.Name),
		Phone:      strings.TrimSpace(r.Phone),
		Address:    strings.TrimSpace(r.Address),
		City:       strings.TrimSpace(r.City),
		Department: strings.TrimSpace(r.Department),
		PostalCode: strings.TrimSpace(r.PostalCode),
	}
}

// PaymentInfoRequest is the flat payment form. Only the fields of the selected
// payment_method are read; field level checks happen in the payment validator so the
// storefront gets one message per field.
type PaymentInfoRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	Email         string `json:"email"`

	BankCode             string `json:"bank_code"`
	UserType             string `json:"user_type"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`

	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	CVV            string `json:"cvv"`
	Installments   int    `json:"installments"`
	CardToken      string `json:"card_token"`

	Reference string `json:"reference"`
}

func (r PaymentInfoRequest) ToPaymentInfo() entities.PaymentInfo {
	email := strings.TrimSpace(r.Email)
	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))

	switch method {
	case entities.PaymentMethodPSE:
		return entities.NewPaymentInfo(email, entities.PSEDetails{
			BankCode:             strings.TrimSpace(r.BankCode),
			UserType:             entities.PSEUserType(strings.ToLower(strings.TrimSpace(r.UserType))),
			IdentificationType:   strings.TrimSpace(r.IdentificationType),
			IdentificationNumber: strings.TrimSpace(r.IdentificationNumber),
		})
	case entities.PaymentMethodCreditCard:
		return entities.NewPaymentInfo(email, entities.CardDetails{
			Number:       r.CardNumber,
			HolderName:   strings.TrimSpace(r.CardHolderName),
			ExpiryMonth:  r.ExpiryMonth,
			ExpiryYear:   r.ExpiryYear,
			CVV:          strings.TrimSpace(r.CVV),
			Installments: r.Installments,
			Token:        strings.TrimSpace(r.CardToken),
		})
	case entities.PaymentMethodBankTransfer:
		return entities.NewPaymentInfo(email, entities.BankTransferDetails{
			BankCode:  strings.TrimSpace(r.BankCode),
			Reference: strings.TrimSpace(r.Reference),
		})
	default:
		return entities.PaymentInfo{RequestedMethod: method, Email: email}
	}
}

// CheckoutRequest pays for the stored cart of cart_id, or for items when given.
type CheckoutRequest struct {
	CartID            string                 `json:"cart_id" binding:"required_without=Items"`
	Items             []CartItemRequest      `json:"items" binding:"omitempty,dive"`
	Shipping          ShippingAddressRequest `json:"shipping" binding:"required"`
	Notes             string                 `json:"notes" binding:"max=500"`
	BillingNIT        string                 `json:"billing_nit" binding:"omitempty,nit"`
	Payment           PaymentInfoRequest     `json:"payment" binding:"required"`
	SavePaymentMethod bool                   `json:"save_payment_method"`
}
