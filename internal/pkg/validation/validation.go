package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request struct against its validate tags and returns a
// single human-readable message for the first failing field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if ok := isValidationErrors(err, &errs); !ok || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fieldName(fe))
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fieldName(fe), fe.Param())
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fieldName(fe), fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fieldName(fe), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fieldName(fe))
	}
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
}
