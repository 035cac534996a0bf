package api

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"steadyday.app/pkg/errors"
	"steadyday.app/pkg/validation"
)

// RegisterValidators installs the custom binding tags on gin's validator
// and reports errors under the query parameter names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("gin binding validator is not go-playground/validator", nil)
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("location", validateLocation); err != nil {
		return errors.NewConfigurationError("failed to register location validator", err)
	}
	return nil
}

// validateLocation accepts area and region names
func validateLocation(fl validator.FieldLevel) bool {
	return validation.IsValidLocation(fl.Field().String())
}

// bindQuery binds query parameters into req, translating validator errors
// into ValidationErrors that name the offending parameter.
func bindQuery(c *gin.Context, req interface{}) error {
	err := c.ShouldBindQuery(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.NewValidationError("invalid query parameters")
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return errors.NewValidationError(fmt.Sprintf("%s parameter is required", fe.Field()))
	case "max":
		return errors.NewValidationError(fmt.Sprintf("%s parameter must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return errors.NewValidationError(fmt.Sprintf("%s parameter is invalid", fe.Field()))
	}
}
