package handlers

import (
	"errors"
	"net/http"
	"strings"

	"checkout_core/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// invalidRequest reports a binding failure. Validation failures carry one entry per
// offending field, keyed by its JSON path.
func invalidRequest(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidRequest
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return errInvalidRequest.WithDetails(details)
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
