package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(14,2) amount column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the result of validating an entity before a write.
// A nil or empty value means the entity is valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// orNil keeps callers from getting a non-nil error interface holding an empty slice.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// checkAmount requires a positive amount in whole cents that fits the amount columns.
func (v *ValidationErrors) checkAmount(amount decimal.Decimal, label string) {
	switch {
	case !amount.IsPositive():
		v.add("amount", label+" must be a positive number")
	case !amount.Equal(amount.Truncate(2)):
		v.add("amount", label+" cannot have more than 2 decimal places")
	case amount.GreaterThan(MaxAmount):
		v.add("amount", label+" cannot exceed "+MaxAmount.StringFixed(2))
	}
}
