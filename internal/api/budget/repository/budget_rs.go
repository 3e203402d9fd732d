package budgetRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"PersonalFinance/database/postgres"
	"PersonalFinance/internal/api/budget"
	"PersonalFinance/internal/entity"
	contextPkg "PersonalFinance/pkg/context"
)

type BudgetDB struct {
	ID        sql.NullString      `db:"id"`
	Category  sql.NullString      `db:"category"`
	Amount    decimal.NullDecimal `db:"amount"`
	Month     sql.NullString      `db:"month"`
	CreatedAt time.Time           `db:"created_at"`
	UpdatedAt time.Time           `db:"updated_at"`
}

type upsertedBudgetDB struct {
	BudgetDB
	Inserted bool `db:"inserted"`
}

func (b BudgetDB) ToEntity() entity.Budget {
	return entity.Budget{
		ID:        b.ID.String,
		Category:  b.Category.String,
		Amount:    b.Amount.Decimal,
		Month:     b.Month.String,
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}
}

func (r *budgetRepository) ListBudgets(ctx context.Context, month string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryListBudgetsByMonth, map[string]interface{}{"month": month})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBudgets named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []BudgetDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
			"error":      err.Error(),
		}).Error("Database error when listing budgets")
		return nil, err
	}

	budgets := make([]entity.Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, row.ToEntity())
	}

	return budgets, nil
}

func (r *budgetRepository) UpsertBudget(ctx context.Context, b entity.Budget) (entity.Budget, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         b.ID,
		"category":   b.Category,
		"amount":     b.Amount,
		"month":      b.Month,
		"created_at": b.CreatedAt,
		"updated_at": b.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpsertBudget")
		return entity.Budget{}, false, err
	}
	query = r.q.Rebind(query)

	var row upsertedBudgetDB
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if postgres.IsInvalidInput(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Budget rejected by database constraint")
			return entity.Budget{}, false, budget.ErrInvalidBudget
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   b.Category,
			"month":      b.Month,
			"error":      err.Error(),
		}).Error("Database error when upserting budget")
		return entity.Budget{}, false, err
	}

	return row.ToEntity(), row.Inserted, nil
}
