package budgetHandler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PersonalFinance/internal/api/budget"
	budgetHandler "PersonalFinance/internal/api/budget/handler"
	"PersonalFinance/internal/config"
	"PersonalFinance/internal/entity"
	"PersonalFinance/internal/middleware"
	"PersonalFinance/pkg/handlerUtil"
)

type fakeService struct {
	seen      map[string]bool
	lastQuery budget.ListBudgetsQuery
	err       error
}

func (f *fakeService) ListBudgets(_ context.Context, q budget.ListBudgetsQuery) ([]entity.Budget, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	return []entity.Budget{{ID: "b1", Category: "Shopping", Amount: decimal.NewFromInt(80), Month: "2024-03"}}, nil
}

func (f *fakeService) UpsertBudget(_ context.Context, req budget.BudgetRequest) (entity.Budget, bool, error) {
	if f.err != nil {
		return entity.Budget{}, false, f.err
	}
	key := req.Category + "|" + req.Month
	created := !f.seen[key]
	f.seen[key] = true
	return entity.Budget{
		ID:        "b-" + key,
		Category:  req.Category,
		Amount:    decimal.NewFromFloat(req.Amount),
		Month:     req.Month,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}, created, nil
}

func newTestApp(svc *fakeService) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mw := middleware.New(log, middleware.Options{})
	app := config.NewFiber("test", log)
	app.Use(mw.NewRequestIDMiddleware())

	budgetHandler.New(log, config.NewValidator(), mw, svc).Start(app.Group("/api/v1"))
	return app
}

func send(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestUpsertBudget_CreatedThenOK(t *testing.T) {
	app := newTestApp(&fakeService{seen: map[string]bool{}})
	body := `{"category":"Food & Dining","amount":100,"month":"2024-03"}`

	resp, raw := send(t, app, http.MethodPost, "/api/v1/budgets", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved budget.BudgetResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &saved))
	assert.Equal(t, "Food & Dining", saved.Category)
	assert.Equal(t, 100.0, saved.Amount)
	assert.Equal(t, "2024-03", saved.Month)

	resp, _ = send(t, app, http.MethodPost, "/api/v1/budgets", `{"category":"Food & Dining","amount":120,"month":"2024-03"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpsertBudget_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "zero amount", body: `{"category":"Shopping","amount":0,"month":"2024-03"}`, wantField: "amount"},
		{name: "non budget category", body: `{"category":"Freelance","amount":5,"month":"2024-03"}`, wantField: "category"},
		{name: "missing month", body: `{"category":"Shopping","amount":5}`, wantField: "month"},
		{name: "bad month", body: `{"category":"Shopping","amount":5,"month":"03-2024"}`, wantField: "month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := send(t, newTestApp(&fakeService{seen: map[string]bool{}}), http.MethodPost, "/api/v1/budgets", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp handlerUtil.ErrorResponse
			require.NoError(t, jsoniter.Unmarshal(raw, &errResp))
			assert.True(t, entity.ValidationErrors(errResp.Fields).Has(tt.wantField), "fields: %v", errResp.Fields)
		})
	}
}

func TestListBudgets(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	resp, raw := send(t, app, http.MethodGet, "/api/v1/budgets?month=2024-03", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-03", svc.lastQuery.Month)

	var list []budget.BudgetResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 80.0, list[0].Amount)

	resp, _ = send(t, app, http.MethodGet, "/api/v1/budgets?month=2024-3", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = send(t, newTestApp(&fakeService{err: budget.ErrFetchBudgets}), http.MethodGet, "/api/v1/budgets", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
