package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

const specialChars = `!@#$%^&*(),.?":{}|<>`

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("passwordlen", "min=8,max=15")
	mustRegister(v, "hasdigit", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), "0123456789")
	})
	mustRegister(v, "hasspecial", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), specialChars)
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates s against its `validate` tags and returns one entry per
// failing field, or nil.
func Struct(s any) Errs {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Errs{{Field: "body", Msg: err.Error()}}
	}
	out := make(Errs, 0, len(ves))
	for _, fe := range ves {
		out = append(out, ErrField{Field: fe.Field(), Msg: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("the %s is required", f)
	case "min":
		return fmt.Sprintf("the %s must have minimum length of %s", f, fe.Param())
	case "email":
		return fmt.Sprintf("the %s must be in a valid email format", f)
	case "passwordlen":
		return fmt.Sprintf("the %s should have min and max length between 8-15", f)
	case "hasdigit":
		return fmt.Sprintf("the %s should have at least one number", f)
	case "hasspecial":
		return fmt.Sprintf("the %s should have at least one special character", f)
	}
	return fmt.Sprintf("the %s is invalid", f)
}
