package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"PersonalFinance/internal/entity"
	"PersonalFinance/pkg/period"
)

// NewValidator returns a validator that reports JSON field names and knows the
// finance-specific tags: notblank, month, txdate, txcategory and budgetcategory.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, err := period.Parse(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("txdate", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseTransactionDate(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("txcategory", func(fl validator.FieldLevel) bool {
		return entity.IsValidTransactionCategory(fl.Field().String())
	})
	_ = validate.RegisterValidation("budgetcategory", func(fl validator.FieldLevel) bool {
		return entity.IsValidBudgetCategory(fl.Field().String())
	})

	return validate
}
