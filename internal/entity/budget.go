package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"PersonalFinance/pkg/period"
)

type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     string          `json:"month"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (b *Budget) Validate() error {
	var errs ValidationErrors

	errs.checkAmount(b.Amount, "Budget amount")

	if b.Category == "" {
		errs.add("category", "Category is required")
	} else if !IsValidBudgetCategory(b.Category) {
		errs.add("category", "Category is not a valid budget category")
	}

	if _, err := period.Parse(b.Month); err != nil {
		errs.add("month", "Month must be in YYYY-MM format")
	}

	return errs.orNil()
}
