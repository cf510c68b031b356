package request

import (
	"testing"

	"checkout_core/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidators(v))
	return v
}

func TestPaymentInfoRequest_ToPaymentInfo(t *testing.T) {
	pse := PaymentInfoRequest{PaymentMethod: " PSE ", Email: " a@b.co ", BankCode: "1007", UserType: "Natural", IdentificationType: "CC", IdentificationNumber: "123"}.ToPaymentInfo()
	assert.Equal(t, entities.PaymentMethodPSE, pse.Method())
	assert.Equal(t, "a@b.co", pse.Email)
	assert.Equal(t, entities.PSEDetails{BankCode: "1007", UserType: entities.PSEUserTypeNatural, IdentificationType: "CC", IdentificationNumber: "123"}, pse.Details)

	card := PaymentInfoRequest{PaymentMethod: "credit_card", CardNumber: "4111 1111 1111 1111", ExpiryMonth: 12, ExpiryYear: 2030, CVV: "123", CardToken: " tok "}.ToPaymentInfo()
	details, ok := card.Details.(entities.CardDetails)
	require.True(t, ok)
	assert.Equal(t, "tok", details.Token)
	assert.Equal(t, "4111 1111 1111 1111", details.Number)

	unknown := PaymentInfoRequest{PaymentMethod: "crypto"}.ToPaymentInfo()
	assert.Nil(t, unknown.Details)
	assert.Equal(t, entities.PaymentMethod("crypto"), unknown.Method())
}

func TestCartItemRequest_ToEntity(t *testing.T) {
	item := CartItemRequest{ProductID: " p1 ", Quantity: 2, Price: 1000, VariantAttributes: map[string]string{}}.ToEntity()
	assert.Equal(t, "p1", item.ProductID)
	assert.Nil(t, item.VariantAttributes)
	assert.Nil(t, VariantFromQuery(map[string]string{}))
	assert.Equal(t, entities.VariantAttributes{"talla": "M"}, VariantFromQuery(map[string]string{"talla": "M"}))
}

func TestCheckoutRequest_Validation(t *testing.T) {
	v := newValidator(t)
	base := CheckoutRequest{
		CartID:   "c1",
		Shipping: ShippingAddressRequest{Name: "Ana", Phone: "3001234567", Address: "Cra 7 # 12-34", City: "Bogotá", Department: "Cundinamarca", PostalCode: "110111"},
		Payment:  PaymentInfoRequest{PaymentMethod: "pse"},
	}
	require.NoError(t, v.Struct(base))

	withNIT := base
	withNIT.BillingNIT = "900373115-3"
	assert.NoError(t, v.Struct(withNIT))

	badNIT := base
	badNIT.BillingNIT = "900373115-4"
	err := v.Struct(badNIT)
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "CheckoutRequest.billing_nit", verrs[0].Namespace())

	badPostal := base
	badPostal.Shipping.PostalCode = "11A"
	assert.Error(t, v.Struct(badPostal))

	noCart := base
	noCart.CartID = ""
	assert.Error(t, v.Struct(noCart))
	noCart.Items = []CartItemRequest{{ProductID: "p1", Quantity: 1, Price: 1000}}
	assert.NoError(t, v.Struct(noCart))
}
