package budget

import "PersonalFinance/pkg/response"

var (
	ErrInvalidMonth  = response.NewError(400, "month must be in YYYY-MM format")
	ErrInvalidBudget = response.NewError(400, "budget violates a data constraint")
	ErrFetchBudgets  = response.NewError(500, "failed to fetch budgets")
	ErrSaveBudget    = response.NewError(500, "failed to save budget")
)
