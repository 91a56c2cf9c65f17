package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/buyout/internal/usecase"
)

// RegisterValidators installs phone and telegram rules on gin's binding engine
// and reports fields by their json names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return usecase.ValidatePhone(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("telegram", func(fl validator.FieldLevel) bool {
		return usecase.ValidateTelegram(fl.Field().String())
	})
}
