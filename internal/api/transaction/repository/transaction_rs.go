package transactionRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"PersonalFinance/database/postgres"
	"PersonalFinance/internal/api/transaction"
	"PersonalFinance/internal/entity"
	contextPkg "PersonalFinance/pkg/context"
)

type TransactionDB struct {
	ID          sql.NullString      `db:"id"`
	Amount      decimal.NullDecimal `db:"amount"`
	Date        sql.NullTime        `db:"date"`
	Description sql.NullString      `db:"description"`
	Category    sql.NullString      `db:"category"`
	Type        sql.NullString      `db:"type"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

func (t TransactionDB) ToEntity() entity.Transaction {
	return entity.Transaction{
		ID:          t.ID.String,
		Amount:      t.Amount.Decimal,
		Date:        t.Date.Time.UTC(),
		Description: t.Description.String,
		Category:    t.Category.String,
		Type:        t.Type.String,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"amount":      tx.Amount,
		"date":        tx.Date,
		"description": tx.Description,
		"category":    tx.Category,
		"type":        tx.Type,
		"created_at":  tx.CreatedAt,
		"updated_at":  tx.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	var row TransactionDB
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if postgres.IsInvalidInput(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Transaction rejected by database constraint")
			return entity.Transaction{}, transaction.ErrInvalidTransaction
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return entity.Transaction{}, err
	}

	return row.ToEntity(), nil
}

func (r *transactionRepository) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetTransactionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	var row TransactionDB
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Error("Database error when fetching transaction")
		return entity.Transaction{}, err
	}

	return row.ToEntity(), nil
}

func (r *transactionRepository) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	limit := filter.Limit
	if limit <= 0 || limit > entity.MaxTransactionList {
		limit = entity.MaxTransactionList
	}

	argsKV := map[string]interface{}{"limit": limit}
	var conditions []string

	if filter.Month != nil {
		conditions = append(conditions, "date >= :start", "date < :end")
		argsKV["start"] = filter.Month.Start()
		argsKV["end"] = filter.Month.End()
	}
	if filter.Type != "" {
		conditions = append(conditions, "type = :type")
		argsKV["type"] = filter.Type
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = :category")
		argsKV["category"] = filter.Category
	}

	base := queryListTransactions
	if len(conditions) > 0 {
		base += "WHERE " + strings.Join(conditions, " AND ")
	}

	query, args, err := sqlx.Named(base+queryListTransactionsOrder, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListTransactions named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []TransactionDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing transactions")
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.ToEntity())
	}

	return transactions, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"amount":      tx.Amount,
		"date":        tx.Date,
		"description": tx.Description,
		"category":    tx.Category,
		"type":        tx.Type,
		"updated_at":  tx.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateTransaction")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	var row TransactionDB
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": tx.ID,
			}).Warn("No transaction found to update")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		if postgres.IsInvalidInput(err) {
			return entity.Transaction{}, transaction.ErrInvalidTransaction
		}
		r.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": tx.ID,
			"error":          err.Error(),
		}).Error("Database error when updating transaction")
		return entity.Transaction{}, err
	}

	return row.ToEntity(), nil
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteTransaction, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteTransaction")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Error("Database error when deleting transaction")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read affected rows")
		return err
	}

	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
		}).Warn("No transaction found to delete")
		return transaction.ErrTransactionNotFound
	}

	return nil
}
