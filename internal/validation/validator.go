// Package validation wraps the request-schema validator. Struct fields are
// reported under their json names so responses speak the API's field
// vocabulary, not Go's.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// phoneRe matches the accepted phone format: an Egyptian country code
// followed by ten digits.
var phoneRe = regexp.MustCompile(`^\+20\d{10}$`)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Returned error is only non-nil when the tag is already registered.
		_ = validate.RegisterValidation("phone_eg", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Struct validates s against its `validate` tags. On failure the raw
// validator.ValidationErrors is returned untouched so the error pipeline
// can classify every issue with its field path and bounds.
func Struct(s any) error {
	return getValidator().Struct(s)
}
