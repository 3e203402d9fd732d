package budgetService

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/api/budget"
	"PersonalFinance/internal/entity"
	contextPkg "PersonalFinance/pkg/context"
	"PersonalFinance/pkg/period"
)

func (s *budgetService) ListBudgets(ctx context.Context, query budget.ListBudgetsQuery) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	month, err := period.ParseOrCurrent(query.Month, s.utils.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      query.Month,
		}).Warn("Invalid month filter")
		return nil, budget.ErrInvalidMonth
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	budgets, err := repo.Budget.ListBudgets(ctx, month.String())
	if err != nil {
		return nil, budget.ErrFetchBudgets
	}

	return budgets, nil
}

func (s *budgetService) UpsertBudget(ctx context.Context, req budget.BudgetRequest) (entity.Budget, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.utils.Now()

	b := entity.Budget{
		Category:  req.Category,
		Amount:    decimal.NewFromFloat(req.Amount),
		Month:     req.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.Validate(); err != nil {
		return entity.Budget{}, false, err
	}

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Budget{}, false, err
	}
	b.ID = id

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, false, err
	}

	saved, created, err := repo.Budget.UpsertBudget(ctx, b)
	if err != nil {
		if errors.Is(err, budget.ErrInvalidBudget) {
			return entity.Budget{}, false, err
		}
		return entity.Budget{}, false, budget.ErrSaveBudget
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"budget_id":  saved.ID,
		"category":   saved.Category,
		"month":      saved.Month,
		"created":    created,
	}).Info("Budget saved")

	return saved, created, nil
}
