package cases

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bft-labs/equipsize/internal/domain"
	"github.com/bft-labs/equipsize/pkg/exchanger"
)

// Validator is a wrapper around the go-playground validator with the case
// file rules registered.
type Validator struct {
	validator *validator.Validate
}

// NewValidator returns a Validator with the custom "finite" and "pitch" tags
// and TOML key names in error messages.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", finiteValidator)
	_ = v.RegisterValidation("pitch", pitchValidator)
	return &Validator{validator: v}
}

// Validate checks every case in f and reports all failures at once,
// wrapped in domain.ErrInvalidCase.
func (v *Validator) Validate(f File) error {
	err := v.validator.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCase, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidCase, strings.Join(msgs, "; "))
}

// Struct validates a single case.
func (v *Validator) Struct(s any) error {
	return v.validator.Struct(s)
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "File.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s", field, comparisons[fe.Tag()], fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "finite":
		return field + " must be a finite number"
	case "pitch":
		return field + " must be t, s, triangular or square"
	case "unique":
		return fmt.Sprintf("%s has duplicate %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

var comparisons = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

func finiteValidator(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

func pitchValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := exchanger.ParsePitch(val)
	return err == nil
}
