package analyticsRepository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	budgetRepository "PersonalFinance/internal/api/budget/repository"
	transactionRepository "PersonalFinance/internal/api/transaction/repository"
	"PersonalFinance/internal/entity"
	contextPkg "PersonalFinance/pkg/context"
)

type CategoryTotalDB struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

func (r *analyticsRepository) SumByCategory(ctx context.Context, txType string, start, end time.Time) ([]entity.CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"type":  txType,
		"start": start,
		"end":   end,
	}

	query, args, err := sqlx.Named(querySumByCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByCategory named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []CategoryTotalDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       txType,
			"error":      err.Error(),
		}).Error("Database error when summing transactions by category")
		return nil, err
	}

	totals := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.CategoryTotal{Category: row.Category, Total: row.Total})
	}

	return totals, nil
}

func (r *analyticsRepository) RecentTransactions(ctx context.Context, start, end time.Time, limit int) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"start": start,
		"end":   end,
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryRecentTransactions, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RecentTransactions named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []transactionRepository.TransactionDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching recent transactions")
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.ToEntity())
	}

	return transactions, nil
}

func (r *analyticsRepository) BudgetsByMonth(ctx context.Context, month string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryBudgetsByMonth, map[string]interface{}{"month": month})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("BudgetsByMonth named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []budgetRepository.BudgetDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
			"error":      err.Error(),
		}).Error("Database error when fetching budgets for analytics")
		return nil, err
	}

	budgets := make([]entity.Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, row.ToEntity())
	}

	return budgets, nil
}
