package analytics

import (
	"PersonalFinance/internal/api/transaction"
	"PersonalFinance/internal/entity"
)

const RecentTransactionsLimit = 5

type ReportQuery struct {
	Month string `query:"month" validate:"omitempty,month"`
}

type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type BudgetComparisonResponse struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Actual     float64 `json:"actual"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type ReportResponse struct {
	MonthlyExpenses    []CategoryTotalResponse           `json:"monthlyExpenses"`
	MonthlyIncome      []CategoryTotalResponse           `json:"monthlyIncome"`
	TotalExpenses      float64                           `json:"totalExpenses"`
	TotalIncome        float64                           `json:"totalIncome"`
	RecentTransactions []transaction.TransactionResponse `json:"recentTransactions"`
	BudgetComparison   []BudgetComparisonResponse        `json:"budgetComparison"`
	Month              string                            `json:"month"`
}

func NewReportResponse(r entity.Report) ReportResponse {
	comparisons := make([]BudgetComparisonResponse, 0, len(r.BudgetComparison))
	for _, c := range r.BudgetComparison {
		comparisons = append(comparisons, BudgetComparisonResponse{
			Category:   c.Category,
			Budget:     c.Budget.InexactFloat64(),
			Actual:     c.Actual.InexactFloat64(),
			Remaining:  c.Remaining.InexactFloat64(),
			Percentage: c.Percentage.InexactFloat64(),
		})
	}

	return ReportResponse{
		MonthlyExpenses:    newCategoryTotals(r.MonthlyExpenses),
		MonthlyIncome:      newCategoryTotals(r.MonthlyIncome),
		TotalExpenses:      r.TotalExpenses.InexactFloat64(),
		TotalIncome:        r.TotalIncome.InexactFloat64(),
		RecentTransactions: transaction.NewTransactionResponses(r.RecentTransactions),
		BudgetComparison:   comparisons,
		Month:              r.Month,
	}
}

func newCategoryTotals(groups []entity.CategoryTotal) []CategoryTotalResponse {
	totals := make([]CategoryTotalResponse, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, CategoryTotalResponse{
			Category: g.Category,
			Total:    g.Total.InexactFloat64(),
		})
	}
	return totals
}
