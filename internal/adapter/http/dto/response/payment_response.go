package response

import (
	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"
)

type PaymentMethodsResponse struct {
	Methods []entities.PaymentMethodOption `json:"methods"`
}

type PSEBanksResponse struct {
	Banks []entities.PSEBank `json:"banks"`
}

type PaymentValidationResponse struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors"`
	CardType string            `json:"card_type,omitempty"`
}

func FromPaymentValidation(v usecase.PaymentValidation, cardType usecase.CardType) PaymentValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return PaymentValidationResponse{Valid: v.Valid, Errors: errs, CardType: string(cardType)}
}

type NITValidationResponse struct {
	NIT        string `json:"nit"`
	Valid      bool   `json:"valid"`
	CheckDigit *int   `json:"check_digit,omitempty"`
}
