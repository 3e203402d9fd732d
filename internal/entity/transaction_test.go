package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		Amount:      decimal.NewFromInt(50),
		Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Description: "Groceries",
		Category:    string(CategoryFoodDining),
		Type:        string(TransactionTypeExpense),
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(tx *Transaction)
		wantField string
	}{
		{name: "valid expense", mutate: func(tx *Transaction) {}},
		{name: "valid income", mutate: func(tx *Transaction) {
			tx.Type = string(TransactionTypeIncome)
			tx.Category = string(CategorySalary)
		}},
		{name: "zero amount", mutate: func(tx *Transaction) { tx.Amount = decimal.Zero }, wantField: "amount"},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-3) }, wantField: "amount"},
		{name: "whole cents", mutate: func(tx *Transaction) { tx.Amount = decimal.RequireFromString("12.34") }},
		{name: "sub-cent amount", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromFloat(12.345) }, wantField: "amount"},
		{name: "positive amount below one cent", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromFloat(0.004) }, wantField: "amount"},
		{name: "largest storable amount", mutate: func(tx *Transaction) { tx.Amount = MaxAmount }},
		{name: "amount overflows column", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromFloat(1e13) }, wantField: "amount"},
		{name: "empty description", mutate: func(tx *Transaction) { tx.Description = "" }, wantField: "description"},
		{name: "whitespace description", mutate: func(tx *Transaction) { tx.Description = "  \t " }, wantField: "description"},
		{name: "max length description", mutate: func(tx *Transaction) { tx.Description = strings.Repeat("é", 200) }},
		{name: "description too long", mutate: func(tx *Transaction) { tx.Description = strings.Repeat("a", 201) }, wantField: "description"},
		{name: "missing category", mutate: func(tx *Transaction) { tx.Category = "" }, wantField: "category"},
		{name: "unknown category", mutate: func(tx *Transaction) { tx.Category = "Gambling" }, wantField: "category"},
		{name: "unknown type", mutate: func(tx *Transaction) { tx.Type = "transfer" }, wantField: "type"},
		{name: "missing type", mutate: func(tx *Transaction) { tx.Type = "" }, wantField: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Len(t, verrs, 1)
			assert.True(t, verrs.Has(tt.wantField), "expected error on %s, got %v", tt.wantField, verrs)
		})
	}
}

func TestTransaction_ValidateCollectsEveryField(t *testing.T) {
	tx := Transaction{}

	err := tx.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	for _, field := range []string{"amount", "description", "category", "type"} {
		assert.True(t, verrs.Has(field), "missing %s", field)
	}
}

func TestTransaction_DescriptionLimitCountsRunes(t *testing.T) {
	tx := validTransaction()
	tx.Description = strings.Repeat("é", MaxDescriptionLength)
	assert.NoError(t, tx.Validate())
}

func TestTransaction_Normalize(t *testing.T) {
	tx := validTransaction()
	tx.Description = "  Coffee  "
	tx.Normalize()
	assert.Equal(t, "Coffee", tx.Description)
}

func TestParseTransactionDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", input: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 utc", input: "2024-03-15T10:30:00Z", want: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{name: "rfc3339 offset converted to utc", input: "2024-03-15T10:30:00+02:00", want: time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: " 2024-03-15 ", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "impossible day", input: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransactionDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestTransaction_ValidateAmountMessages(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{amount: decimal.NewFromFloat(0.004), want: "Amount cannot have more than 2 decimal places"},
		{amount: decimal.NewFromInt(-1), want: "Amount must be a positive number"},
		{amount: decimal.NewFromFloat(1e12), want: "Amount cannot exceed 999999999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.amount.String(), func(t *testing.T) {
			tx := validTransaction()
			tx.Amount = tt.amount

			var verrs ValidationErrors
			require.True(t, errors.As(tx.Validate(), &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.want, verrs[0].Message)
		})
	}
}
