package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	models "github.com/skyfarer/flightbook/internal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// models.Date validates through its underlying time, so "required"
	// rejects the zero date.
	v.RegisterCustomTypeFunc(dateValue, models.Date{})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Date); ok {
		return d.Time
	}
	return nil
}
