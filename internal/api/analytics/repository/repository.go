package analyticsRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	// NewClient with snapshot=true runs every read in one read-only
	// repeatable-read transaction; the caller must Commit or Rollback it.
	NewClient(ctx context.Context, snapshot bool) (Client, error)
}

func (r *repository) NewClient(ctx context.Context, snapshot bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if snapshot {
		txx, err := r.DB.BeginTxx(ctx, &sql.TxOptions{
			Isolation: sql.LevelRepeatableRead,
			ReadOnly:  true,
		})
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Analytics: &analyticsRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Analytics interface {
		SumByCategory(ctx context.Context, txType string, start, end time.Time) ([]entity.CategoryTotal, error)
		RecentTransactions(ctx context.Context, start, end time.Time, limit int) ([]entity.Transaction, error)
		BudgetsByMonth(ctx context.Context, month string) ([]entity.Budget, error)
	}

	Commit   func() error
	Rollback func() error
}

type analyticsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
