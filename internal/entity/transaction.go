package entity

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"PersonalFinance/pkg/period"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

const (
	MaxDescriptionLength = 200
	MaxTransactionList   = 100
)

func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be an RFC3339 timestamp or YYYY-MM-DD")

// ParseTransactionDate accepts an RFC3339 timestamp or a calendar date, the latter read as UTC midnight.
func ParseTransactionDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Normalize trims the description; it runs before Validate on every write.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
}

func (t *Transaction) Validate() error {
	var errs ValidationErrors

	errs.checkAmount(t.Amount, "Amount")

	description := strings.TrimSpace(t.Description)
	if description == "" {
		errs.add("description", "Description is required")
	} else if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errs.add("description", "Description cannot exceed 200 characters")
	}

	if t.Category == "" {
		errs.add("category", "Category is required")
	} else if !IsValidTransactionCategory(t.Category) {
		errs.add("category", "Category is not a valid transaction category")
	}

	if !IsValidTransactionType(t.Type) {
		errs.add("type", "Type must be either expense or income")
	}

	return errs.orNil()
}

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	Month    *period.Month
	Type     string
	Category string
	Limit    int
}
