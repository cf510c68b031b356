package handlers

import (
	"sync"
	"testing"

	request "checkout_core/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := request.RegisterValidators(v); err != nil {
				t.Fatalf("register validators: %v", err)
			}
		}
	})
	return gin.New()
}
