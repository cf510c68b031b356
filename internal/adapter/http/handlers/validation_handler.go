package handlers

import (
	"net/http"
	"strings"

	request "checkout_core/internal/adapter/http/dto/request"
	response "checkout_core/internal/adapter/http/dto/response"
	"checkout_core/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

// ValidateNIT godoc
// @Summary      Validate NIT
// @Description  Checks the DIAN modulus-11 check digit of a NIT ("900373115-3", "900.373.115-3" or "9003731153").
// @Tags         validations
// @Accept       json
// @Produce      json
// @Param        body  body  request.NITRequest  true  "NIT"
// @Success      200  {object}  response.NITValidationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /validations/nit [post]
func (h *ValidationHandler) ValidateNIT(c *gin.Context) {
	var payload request.NITRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	nit := strings.TrimSpace(payload.NIT)
	res := response.NITValidationResponse{NIT: nit, Valid: usecase.ValidateNIT(nit)}
	if base := nitBase(nit); base != "" {
		if dv, err := usecase.CalculateNITCheckDigit(base); err == nil {
			res.CheckDigit = &dv
		}
	}
	c.JSON(http.StatusOK, res)
}

// nitBase strips separators and the check digit. A NIT without a dash is treated as
// base + check digit.
func nitBase(nit string) string {
	clean := strings.NewReplacer(".", "", " ", "").Replace(nit)
	if i := strings.LastIndex(clean, "-"); i >= 0 {
		return clean[:i]
	}
	if len(clean) > 1 {
		return clean[:len(clean)-1]
	}
	return ""
}
