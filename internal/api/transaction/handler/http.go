package transactionHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	transactionService "PersonalFinance/internal/api/transaction/service"
	"PersonalFinance/internal/middleware"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	srv.Get("/transactions", h.ListTransactions)
	srv.Post("/transactions", h.CreateTransaction)
	srv.Get("/transactions/:id", h.GetTransactionByID)
	srv.Put("/transactions/:id", h.UpdateTransaction)
	srv.Delete("/transactions/:id", h.DeleteTransaction)

	srv.Get("/categories", h.ListCategories)
}
