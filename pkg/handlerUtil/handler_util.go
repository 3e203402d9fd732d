package handlerUtil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/entity"
	"PersonalFinance/pkg/log"
	"PersonalFinance/pkg/response"
)

const CodeValidationError = "VALIDATION_ERROR"

type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Fields  []entity.FieldError `json:"fields,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var validationErrs entity.ValidationErrors
	if errors.As(err, &validationErrs) {
		return h.respondValidation(c, requestID, validationErrs, path)
	}

	status := response.StatusCode(err)
	if status < fiber.StatusInternalServerError {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       status,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}

	// Only messages of our own 5xx sentinels reach the client.
	message := "An unexpected error occurred"
	var respErr *response.Error
	if errors.As(err, &respErr) {
		message = respErr.Error()
	}

	traceID := log.ErrorWithTraceID(h.logger, log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(status).JSON(ErrorResponse{
		Error:   message,
		TraceID: traceID,
	})
}

// HandleValidationError answers 400 for request binding and validator failures.
func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	var validationErrs entity.ValidationErrors

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			validationErrs = append(validationErrs, entity.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	} else if !errors.As(err, &validationErrs) {
		validationErrs = entity.ValidationErrors{{Field: "body", Message: err.Error()}}
	}

	return h.respondValidation(c, requestID, validationErrs, path)
}

func (h *ErrorHandler) respondValidation(c *fiber.Ctx, requestID string, errs entity.ValidationErrors, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      errs.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:  "Validation failed: " + errs.Error(),
		Code:   CodeValidationError,
		Fields: errs,
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

func validationMessage(fe validator.FieldError) string {
	name := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", name)
	case "gt":
		return fmt.Sprintf("%s must be a positive number", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "month":
		return fmt.Sprintf("%s must be in YYYY-MM format", name)
	case "txcategory", "budgetcategory":
		return fmt.Sprintf("%s is not a valid category", name)
	case "txdate":
		return fmt.Sprintf("%s must be an RFC3339 timestamp or YYYY-MM-DD", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
