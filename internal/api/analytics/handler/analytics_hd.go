package analyticsHandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"PersonalFinance/internal/api/analytics"
	contextPkg "PersonalFinance/pkg/context"
	"PersonalFinance/pkg/handlerUtil"
	"PersonalFinance/pkg/log"
)

func (h *AnalyticsHandler) GetReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"month":      ctx.Query("month"),
	}).Debug("Processing analytics request")

	var query analytics.ReportQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	report, err := h.analyticsService.GetReport(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, analytics.NewReportResponse(report))
	}
}
