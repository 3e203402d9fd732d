package budgetHandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"PersonalFinance/internal/api/budget"
	contextPkg "PersonalFinance/pkg/context"
	"PersonalFinance/pkg/handlerUtil"
	"PersonalFinance/pkg/log"
)

func (h *BudgetHandler) ListBudgets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query budget.ListBudgetsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	budgets, err := h.budgetService.ListBudgets(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_budgets")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budget.NewBudgetResponses(budgets))
	}
}

// UpsertBudget answers 201 when the category and month had no budget yet, 200 otherwise.
func (h *BudgetHandler) UpsertBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing upsert budget request")

	var req budget.BudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	saved, created, err := h.budgetService.UpsertBudget(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upsert_budget")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, status, budget.NewBudgetResponse(saved))
	}
}
