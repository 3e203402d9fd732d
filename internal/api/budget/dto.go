package budget

import (
	"time"

	"PersonalFinance/internal/entity"
)

type BudgetRequest struct {
	Category string  `json:"category" validate:"required,budgetcategory"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Month    string  `json:"month" validate:"required,month"`
}

type ListBudgetsQuery struct {
	Month string `query:"month" validate:"omitempty,month"`
}

type BudgetResponse struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Month     string  `json:"month"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func NewBudgetResponse(b entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID,
		Category:  b.Category,
		Amount:    b.Amount.InexactFloat64(),
		Month:     b.Month,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func NewBudgetResponses(budgets []entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		responses = append(responses, NewBudgetResponse(b))
	}
	return responses
}
