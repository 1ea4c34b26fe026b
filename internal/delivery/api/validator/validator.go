// Package validator plugs go-playground/validator into Echo.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*CustomValidator)(nil)

func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and flattens the failures into one readable line.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := strings.ToLower(fe.Field()) + " failed on " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return &Error{Fields: msgs}
}

// Error lists every field that failed validation.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return strings.Join(e.Fields, "; ")
}
