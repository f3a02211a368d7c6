package schemas

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NewValidator builds a validator that sees through Optional fields:
// absent and null values are skipped, present values are validated as
// their inner type.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(optionalValuer, Optional[string]{}, Optional[uuid.UUID]{})
	return v
}

func optionalValuer(field reflect.Value) interface{} {
	switch opt := field.Interface().(type) {
	case Optional[string]:
		if opt.Set && opt.Valid {
			return opt.Value
		}
	case Optional[uuid.UUID]:
		if opt.Set && opt.Valid {
			return opt.Value
		}
	}
	return nil
}
