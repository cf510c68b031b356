package usecase

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"checkout_core/internal/domain/entities"
)

// Field keys used in payment validation errors.
const (
	FieldPaymentMethod        = "payment_method"
	FieldEmail                = "email"
	FieldBankCode             = "bank_code"
	FieldUserType             = "user_type"
	FieldIdentificationType   = "identification_type"
	FieldIdentificationNumber = "identification_number"
	FieldCardNumber           = "card_number"
	FieldCardHolderName       = "card_holder_name"
	FieldExpiry               = "expiry"
	FieldCVV                  = "cvv"
)

// CardType is the informational brand of a card number.
type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeAmex       CardType = "amex"
	CardTypeDiscover   CardType = "discover"
	CardTypeUnknown    CardType = "unknown"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)

	cardTypePatterns = []struct {
		cardType CardType
		pattern  *regexp.Regexp
	}{
		{CardTypeVisa, regexp.MustCompile(`^4`)},
		{CardTypeMastercard, regexp.MustCompile(`^(5[1-5]|2[2-7])`)},
		{CardTypeAmex, regexp.MustCompile(`^3[47]`)},
		{CardTypeDiscover, regexp.MustCompile(`^6(011|5)`)},
	}

	nitWeights = []int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

	ErrInvalidNITBase = errors.New("invalid nit base number")
)

// PaymentValidation is the result of validating a PaymentInfo. It never carries a Go error;
// every problem is a field-keyed message.
type PaymentValidation struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// ValidatePaymentInfo checks the fields required by the payment method of info.
// now anchors the card expiry check.
func ValidatePaymentInfo(info entities.PaymentInfo, now time.Time) PaymentValidation {
	errs := map[string]string{}

	if !info.Method().IsKnown() || info.Details == nil {
		errs[FieldPaymentMethod] = "Método de pago no soportado"
	}
	if !emailPattern.MatchString(strings.TrimSpace(info.Email)) {
		errs[FieldEmail] = "Correo electrónico inválido"
	}

	switch d := info.Details.(type) {
	case entities.PSEDetails:
		validatePSE(d, errs)
	case *entities.PSEDetails:
		if d != nil {
			validatePSE(*d, errs)
		}
	case entities.CardDetails:
		validateCard(d, now, errs)
	case *entities.CardDetails:
		if d != nil {
			validateCard(*d, now, errs)
		}
	}

	return PaymentValidation{Valid: len(errs) == 0, Errors: errs}
}

func validatePSE(d entities.PSEDetails, errs map[string]string) {
	if strings.TrimSpace(d.BankCode) == "" {
		errs[FieldBankCode] = "Selecciona un banco"
	}
	switch d.UserType {
	case entities.PSEUserTypeNatural, entities.PSEUserTypeJuridica:
	case "":
		errs[FieldUserType] = "Selecciona el tipo de persona"
	default:
		errs[FieldUserType] = "Tipo de persona inválido"
	}
	if strings.TrimSpace(d.IdentificationType) == "" {
		errs[FieldIdentificationType] = "Selecciona el tipo de documento"
	}
	idNumber := strings.TrimSpace(d.IdentificationNumber)
	switch {
	case idNumber == "":
		errs[FieldIdentificationNumber] = "El número de documento es obligatorio"
	case !digitsPattern.MatchString(idNumber):
		errs[FieldIdentificationNumber] = "El número de documento solo debe contener dígitos"
	}
}

func validateCard(d entities.CardDetails, now time.Time, errs map[string]string) {
	if !ValidateCardNumber(d.Number) {
		errs[FieldCardNumber] = "Número de tarjeta inválido"
	}
	if strings.TrimSpace(d.HolderName) == "" {
		errs[FieldCardHolderName] = "El nombre del titular es obligatorio"
	}
	if !validateExpiry(d.ExpiryMonth, d.ExpiryYear, now) {
		errs[FieldExpiry] = "La tarjeta está vencida o la fecha es inválida"
	}
	if !cvvPattern.MatchString(strings.TrimSpace(d.CVV)) {
		errs[FieldCVV] = "CVV inválido"
	}
}

// NormalizeCardNumber strips the spaces users type between digit groups.
func NormalizeCardNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

// ValidateCardNumber checks length (13-19 digits) and the Luhn checksum.
func ValidateCardNumber(number string) bool {
	n := NormalizeCardNumber(number)
	if len(n) < 13 || len(n) > 19 || !digitsPattern.MatchString(n) {
		return false
	}
	return luhnValid(n)
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validateExpiry accepts two or four digit years. A card is valid through the whole
// expiry month.
func validateExpiry(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}
	if year < now.Year() {
		return false
	}
	return year > now.Year() || month >= int(now.Month())
}

// DetectCardType returns the card brand from its prefix. It does not imply validity.
func DetectCardType(number string) CardType {
	n := NormalizeCardNumber(number)
	for _, p := range cardTypePatterns {
		if p.pattern.MatchString(n) {
			return p.cardType
		}
	}
	return CardTypeUnknown
}

// CalculateNITCheckDigit computes the DIAN modulus-11 check digit of a NIT base number.
func CalculateNITCheckDigit(base string) (int, error) {
	base = strings.TrimSpace(base)
	if base == "" || len(base) > len(nitWeights) || !digitsPattern.MatchString(base) {
		return 0, ErrInvalidNITBase
	}
	sum := 0
	for i := 0; i < len(base); i++ {
		d := int(base[len(base)-1-i] - '0')
		sum += d * nitWeights[i]
	}
	r := sum % 11
	if r < 2 {
		return r, nil
	}
	return 11 - r, nil
}

// ValidateNIT validates a NIT written as "900373115-3", "900.373.115-3" or "9003731153"
// (check digit last).
func ValidateNIT(nit string) bool {
	clean := strings.NewReplacer(".", "", " ", "").Replace(strings.TrimSpace(nit))
	var base, dv string
	if i := strings.LastIndex(clean, "-"); i >= 0 {
		base, dv = clean[:i], clean[i+1:]
	} else if len(clean) > 1 {
		base, dv = clean[:len(clean)-1], clean[len(clean)-1:]
	}
	if len(dv) != 1 {
		return false
	}
	want, err := CalculateNITCheckDigit(base)
	if err != nil {
		return false
	}
	got, err := strconv.Atoi(dv)
	return err == nil && got == want
}
