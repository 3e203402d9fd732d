package analyticsService

import (
	"context"

	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/api/analytics"
	"PersonalFinance/internal/entity"
	contextPkg "PersonalFinance/pkg/context"
	"PersonalFinance/pkg/period"
)

func (s *analyticsService) GetReport(ctx context.Context, query analytics.ReportQuery) (entity.Report, error) {
	requestID := contextPkg.GetRequestID(ctx)

	month, err := period.ParseOrCurrent(query.Month, s.utils.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      query.Month,
		}).Warn("Invalid analytics month")
		return entity.Report{}, analytics.ErrInvalidMonth
	}
	start, end := month.Start(), month.End()

	repo, err := s.analyticsRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to open analytics snapshot")
		return entity.Report{}, analytics.ErrBuildReport
	}
	committed := false
	defer func() {
		if !committed {
			_ = repo.Rollback()
		}
	}()

	expenses, err := repo.Analytics.SumByCategory(ctx, string(entity.TransactionTypeExpense), start, end)
	if err != nil {
		return entity.Report{}, analytics.ErrBuildReport
	}

	income, err := repo.Analytics.SumByCategory(ctx, string(entity.TransactionTypeIncome), start, end)
	if err != nil {
		return entity.Report{}, analytics.ErrBuildReport
	}

	recent, err := repo.Analytics.RecentTransactions(ctx, start, end, analytics.RecentTransactionsLimit)
	if err != nil {
		return entity.Report{}, analytics.ErrBuildReport
	}

	budgets, err := repo.Analytics.BudgetsByMonth(ctx, month.String())
	if err != nil {
		return entity.Report{}, analytics.ErrBuildReport
	}

	committed = true
	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to close analytics snapshot")
		return entity.Report{}, analytics.ErrBuildReport
	}

	return entity.Report{
		Month:              month.String(),
		MonthlyExpenses:    expenses,
		MonthlyIncome:      income,
		TotalExpenses:      entity.SumTotals(expenses),
		TotalIncome:        entity.SumTotals(income),
		RecentTransactions: recent,
		BudgetComparison:   entity.CompareBudgets(budgets, expenses),
	}, nil
}
