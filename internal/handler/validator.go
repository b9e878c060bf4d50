package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LootRarity_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate = newValidator()

func newValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("dropdomain", validateDropDomain)
	return &Validator{validate: v}
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
// so responses never leak Go struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := toSnake(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "dropdomain":
			errs[field] = fmt.Sprintf("Must be one of %s, %s", domain.DomainNPC, domain.DomainThieving)
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateDropDomain(fl validator.FieldLevel) bool {
	return domain.DropDomain(strings.ToLower(fl.Field().String())).Valid()
}

// toSnake turns ItemID into item_id.
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' && (s[i-1] < 'A' || s[i-1] > 'Z') {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
