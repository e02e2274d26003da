// Package schemas holds the declarative validation rule sets. Validation
// doubles as normalization: inputs are trimmed and defaulted in place, so
// handlers only ever see the normalized value.
package schemas

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the first violated rule's message and maps to
// an HTTP 400 at the edge.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("containslower", containsClass(unicode.IsLower))
	v.RegisterValidation("containsupper", containsClass(unicode.IsUpper))
	return v
}

func containsClass(class func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if class(r) {
				return true
			}
		}
		return false
	}
}

// check runs struct validation and converts the first violation into its
// human-readable message. Anything that is not a rule violation (a broken
// rule set, a nil input) is returned as-is and surfaces as a 500.
func check(s interface{}, messages map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
			return &ValidationError{Message: msg}
		}
		return &ValidationError{Message: fmt.Sprintf("%s is not valid", first.Field())}
	}
	return err
}
