package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report issues against the wire names (json/form/uri tags) rather than
	// the Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// respondValidationError writes the 400 envelope with one issue per failed
// constraint. Binding failures that are not validator errors (type coercion,
// malformed JSON) become a single generic issue.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	issues := make([]dto.ValidationIssue, 0, 1)
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			issues = append(issues, dto.ValidationIssue{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fe.Error(),
			})
		}
	} else {
		issues = append(issues, dto.ValidationIssue{
			Rule:    "invalid",
			Message: err.Error(),
		})
	}

	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
		Message: "Validation error",
		Issues:  issues,
	})
}

// respondInternalError writes the opaque 500 envelope. The cause is logged by
// the caller, never leaked to the client.
func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
}
