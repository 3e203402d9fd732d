package budgetService

import (
	"context"

	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/api/budget"
	budgetRepository "PersonalFinance/internal/api/budget/repository"
	"PersonalFinance/internal/entity"
	"PersonalFinance/pkg/utils"
)

type IBudgetService interface {
	ListBudgets(ctx context.Context, query budget.ListBudgetsQuery) ([]entity.Budget, error)
	UpsertBudget(ctx context.Context, req budget.BudgetRequest) (saved entity.Budget, created bool, err error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	utils            utils.IUtils
}

func New(log *logrus.Logger, br budgetRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		utils:            utils,
	}
}
