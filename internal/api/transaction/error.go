package transaction

import "PersonalFinance/pkg/response"

var (
	ErrTransactionNotFound = response.NewError(404, "transaction not found")
	ErrInvalidMonth        = response.NewError(400, "month must be in YYYY-MM format")
	ErrInvalidTransaction  = response.NewError(400, "transaction violates a data constraint")
	ErrFetchTransactions   = response.NewError(500, "failed to fetch transactions")
	ErrCreateTransaction   = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction   = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction   = response.NewError(500, "failed to delete transaction")
)
