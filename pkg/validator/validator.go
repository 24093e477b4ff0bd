package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator provides struct validation based on `validate` tags.
type Validator interface {
	Validate(interface{}) error
}

type structValidator struct {
	v *validator.Validate
}

func New() Validator {
	return &structValidator{v: validator.New()}
}

func (s *structValidator) Validate(obj interface{}) error {
	if err := s.v.Struct(obj); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("%s failed validation on %s", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}
