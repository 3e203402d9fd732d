package transactionService

import (
	"context"

	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/api/transaction"
	transactionRepository "PersonalFinance/internal/api/transaction/repository"
	"PersonalFinance/internal/entity"
	"PersonalFinance/pkg/utils"
)

type ITransactionService interface {
	ListTransactions(ctx context.Context, query transaction.ListTransactionsQuery) ([]entity.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error)
	CreateTransaction(ctx context.Context, req transaction.TransactionRequest) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req transaction.TransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

func New(log *logrus.Logger, tr transactionRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		utils:                 utils,
	}
}
