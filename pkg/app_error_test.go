package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dial tcp: refused" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}

	withDetails := NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment", http.StatusUnprocessableEntity).
		WithDetails(map[string]string{"cvv": "CVV inválido"})
	if withDetails.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", withDetails.HTTPStatus)
	}
	if withDetails.ToHTTPError().Details == nil {
		t.Fatalf("expected details")
	}
}
