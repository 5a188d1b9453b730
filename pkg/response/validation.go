package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindError converts a gin binding failure into a 400 envelope, listing one
// field/code pair per violated rule.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]ErrorDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, ErrorDetail{
				Field: strings.ToLower(fe.Field()),
				Code:  strings.ToUpper(fe.Tag()),
			})
		}
		Error(c, http.StatusBadRequest, "invalid request payload", details...)
		return
	}
	Error(c, http.StatusBadRequest, "invalid request payload",
		ErrorDetail{Type: "bind_error", Detail: err.Error()})
}
