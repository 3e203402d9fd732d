package transactionService

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/api/transaction"
	"PersonalFinance/internal/entity"
	contextPkg "PersonalFinance/pkg/context"
	"PersonalFinance/pkg/period"
)

func (s *transactionService) ListTransactions(ctx context.Context, query transaction.ListTransactionsQuery) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	filter := entity.TransactionFilter{
		Type:     query.Type,
		Category: query.Category,
		Limit:    entity.MaxTransactionList,
	}

	if query.Month != "" {
		month, err := period.Parse(query.Month)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"month":      query.Month,
			}).Warn("Invalid month filter")
			return nil, transaction.ErrInvalidMonth
		}
		filter.Month = &month
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.ListTransactions(ctx, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return nil, transaction.ErrFetchTransactions
	}

	return transactions, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	tx, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return entity.Transaction{}, err
		}
		return entity.Transaction{}, transaction.ErrFetchTransactions
	}

	return tx, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.TransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.utils.Now()

	tx, err := s.fromRequest(req, now)
	if err != nil {
		return entity.Transaction{}, err
	}

	tx.ID, err = s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}
	tx.CreatedAt = now
	tx.UpdatedAt = now

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	created, err := repo.Transaction.CreateTransaction(ctx, tx)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidTransaction) {
			return entity.Transaction{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": created.ID,
	}).Info("Transaction created")

	return created, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id string, req transaction.TransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.utils.Now()

	tx, err := s.fromRequest(req, now)
	if err != nil {
		return entity.Transaction{}, err
	}
	tx.ID = id
	tx.UpdatedAt = now

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	updated, err := repo.Transaction.UpdateTransaction(ctx, tx)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) || errors.Is(err, transaction.ErrInvalidTransaction) {
			return entity.Transaction{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	return nil
}

// fromRequest builds a normalized, validated entity. An omitted date means now.
func (s *transactionService) fromRequest(req transaction.TransactionRequest, now time.Time) (entity.Transaction, error) {
	tx := entity.Transaction{
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        now,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
	}

	var dateErr error
	if req.Date != "" {
		tx.Date, dateErr = entity.ParseTransactionDate(req.Date)
	}

	tx.Normalize()
	err := tx.Validate()

	if dateErr != nil {
		var errs entity.ValidationErrors
		errors.As(err, &errs)
		errs = append(errs, entity.FieldError{Field: "date", Message: "Date must be an RFC3339 timestamp or YYYY-MM-DD"})
		return entity.Transaction{}, errs
	}
	if err != nil {
		return entity.Transaction{}, err
	}

	return tx, nil
}
