package transaction

import (
	"time"

	"PersonalFinance/internal/entity"
)

type TransactionRequest struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Date        string  `json:"date" validate:"omitempty,txdate"`
	Description string  `json:"description" validate:"notblank"`
	Category    string  `json:"category" validate:"required,txcategory"`
	Type        string  `json:"type" validate:"required,oneof=expense income"`
}

type ListTransactionsQuery struct {
	Month    string `query:"month" validate:"omitempty,month"`
	Type     string `query:"type"`
	Category string `query:"category"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CategoriesResponse struct {
	TransactionCategories []string `json:"transactionCategories"`
	BudgetCategories      []string `json:"budgetCategories"`
}

func NewTransactionResponse(tx entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount.InexactFloat64(),
		Date:        tx.Date.UTC().Format(time.RFC3339),
		Description: tx.Description,
		Category:    tx.Category,
		Type:        tx.Type,
		CreatedAt:   tx.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func NewTransactionResponses(txs []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, NewTransactionResponse(tx))
	}
	return responses
}
