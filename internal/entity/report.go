package entity

import "github.com/shopspring/decimal"

// CategoryTotal is one row of a grouped monthly sum.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type BudgetComparison struct {
	Category   string
	Budget     decimal.Decimal
	Actual     decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
}

type Report struct {
	Month              string
	MonthlyExpenses    []CategoryTotal
	MonthlyIncome      []CategoryTotal
	TotalExpenses      decimal.Decimal
	TotalIncome        decimal.Decimal
	RecentTransactions []Transaction
	BudgetComparison   []BudgetComparison
}

var hundred = decimal.NewFromInt(100)

// SumTotals adds up grouped totals.
func SumTotals(groups []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range groups {
		sum = sum.Add(g.Total)
	}
	return sum
}

// CompareBudgets pairs each budget with the expense total of its category.
// Categories without expenses count as zero spent; a zero budget yields a zero percentage.
func CompareBudgets(budgets []Budget, expenses []CategoryTotal) []BudgetComparison {
	spent := make(map[string]decimal.Decimal, len(expenses))
	for _, e := range expenses {
		spent[e.Category] = e.Total
	}

	comparisons := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		actual, ok := spent[b.Category]
		if !ok {
			actual = decimal.Zero
		}

		percentage := decimal.Zero
		if !b.Amount.IsZero() {
			percentage = actual.Div(b.Amount).Mul(hundred).Round(2)
		}

		comparisons = append(comparisons, BudgetComparison{
			Category:   b.Category,
			Budget:     b.Amount,
			Actual:     actual,
			Remaining:  b.Amount.Sub(actual),
			Percentage: percentage,
		})
	}

	return comparisons
}
