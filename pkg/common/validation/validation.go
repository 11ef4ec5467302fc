// Package validation binds JSON request bodies into transfer schemas and checks
// them with go-playground/validator. Failures come back as 400 API errors with
// one entry per offending field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"

	apierrors "cadastro-pessoas/pkg/common/errors"
	"cadastro-pessoas/pkg/common/patch"
)

// Validatable is implemented by payloads with rules that tags cannot express.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single field problem raised from Validate.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names ("id_pessoa") instead of Go names ("IDPessoa")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(optionalValue,
		patch.Optional[string]{},
		patch.Optional[int]{},
		patch.Optional[int64]{},
	)
	return v
}

func optionalValue(field reflect.Value) any {
	if o, ok := field.Interface().(interface{ Validatable() any }); ok {
		return o.Validatable()
	}
	return nil
}

// Bind decodes the request into payload with Hertz's binder. An empty body
// leaves payload untouched.
func Bind(c *app.RequestContext, payload any) error {
	if err := c.Bind(payload); err != nil {
		hlog.Debugf("bind failed: %v", err)
		return apierrors.NewValidation("invalid request body")
	}
	return nil
}

// Struct runs the tag rules and then payload.Validate when present.
func Struct(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return toAPIError(err)
	}
	if v, ok := payload.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return toAPIError(err)
		}
	}
	return nil
}

// BindAndValidate binds the body into payload and validates it.
func BindAndValidate(c *app.RequestContext, payload any) error {
	if err := Bind(c, payload); err != nil {
		return err
	}
	return Struct(payload)
}

func toAPIError(err error) error {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		fields := make([]apierrors.FieldError, 0, len(custom))
		for _, e := range custom {
			fields = append(fields, apierrors.FieldError{Field: e.Field, Error: e.Message})
		}
		return apierrors.NewValidation("", fields...)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// invalid payload type passed to the validator
		return err
	}

	fields := make([]apierrors.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, apierrors.FieldError{
			Field: fe.Field(),
			Error: fieldMessage(fe),
		})
	}
	return apierrors.NewValidation("", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "len":
		if isString {
			return fmt.Sprintf("must be exactly %s characters", fe.Param())
		}
		return fmt.Sprintf("must have length %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
