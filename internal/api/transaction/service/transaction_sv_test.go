package transactionService

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PersonalFinance/internal/api/transaction"
	transactionRepository "PersonalFinance/internal/api/transaction/repository"
	"PersonalFinance/internal/entity"
	"PersonalFinance/pkg/utils"
)

var fixedNow = time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)

type fakeStore struct {
	rows       map[string]entity.Transaction
	lastFilter entity.TransactionFilter
	failWith   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]entity.Transaction{}}
}

func (f *fakeStore) NewClient(bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: f,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

func (f *fakeStore) CreateTransaction(_ context.Context, tx entity.Transaction) (entity.Transaction, error) {
	if f.failWith != nil {
		return entity.Transaction{}, f.failWith
	}
	f.rows[tx.ID] = tx
	return tx, nil
}

func (f *fakeStore) GetTransactionByID(_ context.Context, id string) (entity.Transaction, error) {
	tx, ok := f.rows[id]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeStore) ListTransactions(_ context.Context, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastFilter = filter
	var out []entity.Transaction
	for _, tx := range f.rows {
		if filter.Month != nil && !filter.Month.Contains(tx.Date) {
			continue
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) UpdateTransaction(_ context.Context, tx entity.Transaction) (entity.Transaction, error) {
	if f.failWith != nil {
		return entity.Transaction{}, f.failWith
	}
	existing, ok := f.rows[tx.ID]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	tx.CreatedAt = existing.CreatedAt
	f.rows[tx.ID] = tx
	return tx, nil
}

func (f *fakeStore) DeleteTransaction(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.rows[id]; !ok {
		return transaction.ErrTransactionNotFound
	}
	delete(f.rows, id)
	return nil
}

func newTestService(store *fakeStore) ITransactionService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, store, utils.NewWithClock(func() time.Time { return fixedNow }))
}

func validRequest() transaction.TransactionRequest {
	return transaction.TransactionRequest{
		Amount:      42.5,
		Date:        "2024-03-15",
		Description: "  Weekly groceries  ",
		Category:    "Food & Dining",
		Type:        "expense",
	}
}

func TestCreateTransaction(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.CreateTransaction(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Weekly groceries", created.Description)
	assert.True(t, decimal.RequireFromString("42.5").Equal(created.Amount))
	assert.Equal(t, "Food & Dining", created.Category)
	assert.Equal(t, "expense", created.Type)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), created.Date)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, fixedNow, created.UpdatedAt)
	assert.Contains(t, store.rows, created.ID)
}

func TestCreateTransaction_KeepsAmountAndTrimsBeforeLengthCheck(t *testing.T) {
	req := validRequest()
	req.Amount = 1234.56
	req.Description = "  " + strings.Repeat("a", 200) + "  "

	created, err := newTestService(newFakeStore()).CreateTransaction(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", created.Amount.StringFixed(2))
	assert.True(t, decimal.RequireFromString("1234.56").Equal(created.Amount))
	assert.Equal(t, strings.Repeat("a", 200), created.Description)
}

func TestCreateTransaction_DefaultsDateToNow(t *testing.T) {
	req := validRequest()
	req.Date = ""

	created, err := newTestService(newFakeStore()).CreateTransaction(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, created.Date)
}

func TestCreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*transaction.TransactionRequest)
		wantField string
	}{
		{name: "zero amount", mutate: func(r *transaction.TransactionRequest) { r.Amount = 0 }, wantField: "amount"},
		{name: "negative amount", mutate: func(r *transaction.TransactionRequest) { r.Amount = -3 }, wantField: "amount"},
		{name: "amount below one cent", mutate: func(r *transaction.TransactionRequest) { r.Amount = 0.004 }, wantField: "amount"},
		{name: "sub-cent amount", mutate: func(r *transaction.TransactionRequest) { r.Amount = 12.345 }, wantField: "amount"},
		{name: "amount beyond storage", mutate: func(r *transaction.TransactionRequest) { r.Amount = 1e13 }, wantField: "amount"},
		{name: "description too long after trim", mutate: func(r *transaction.TransactionRequest) { r.Description = strings.Repeat("a", 201) }, wantField: "description"},
		{name: "blank description", mutate: func(r *transaction.TransactionRequest) { r.Description = "   " }, wantField: "description"},
		{name: "unknown category", mutate: func(r *transaction.TransactionRequest) { r.Category = "Gambling" }, wantField: "category"},
		{name: "unknown type", mutate: func(r *transaction.TransactionRequest) { r.Type = "transfer" }, wantField: "type"},
		{name: "bad date", mutate: func(r *transaction.TransactionRequest) { r.Date = "15/03/2024" }, wantField: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			req := validRequest()
			tt.mutate(&req)

			_, err := newTestService(store).CreateTransaction(context.Background(), req)

			var verrs entity.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			assert.True(t, verrs.Has(tt.wantField), "fields: %v", verrs)
			assert.Empty(t, store.rows)
		})
	}
}

func TestCreateTransaction_StoreFailureIsInternal(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connection reset")

	_, err := newTestService(store).CreateTransaction(context.Background(), validRequest())
	assert.ErrorIs(t, err, transaction.ErrCreateTransaction)
}

func TestListTransactions(t *testing.T) {
	store := newFakeStore()
	store.rows["a"] = entity.Transaction{ID: "a", Date: time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)}
	store.rows["b"] = entity.Transaction{ID: "b", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	store.rows["c"] = entity.Transaction{ID: "c", Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}
	svc := newTestService(store)

	got, err := svc.ListTransactions(context.Background(), transaction.ListTransactionsQuery{Month: "2024-03", Type: "expense"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "expense", store.lastFilter.Type)
	assert.Equal(t, entity.MaxTransactionList, store.lastFilter.Limit)

	_, err = svc.ListTransactions(context.Background(), transaction.ListTransactionsQuery{Month: "2024-3"})
	assert.ErrorIs(t, err, transaction.ErrInvalidMonth)
}

func TestUpdateTransaction(t *testing.T) {
	store := newFakeStore()
	created := fixedNow.Add(-48 * time.Hour)
	store.rows["tx1"] = entity.Transaction{ID: "tx1", CreatedAt: created, UpdatedAt: created}
	svc := newTestService(store)

	req := validRequest()
	req.Date = ""
	updated, err := svc.UpdateTransaction(context.Background(), "tx1", req)
	require.NoError(t, err)
	assert.Equal(t, "tx1", updated.ID)
	assert.Equal(t, fixedNow, updated.Date)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
	assert.Equal(t, created, updated.CreatedAt)

	_, err = svc.UpdateTransaction(context.Background(), "nope", validRequest())
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)

	bad := validRequest()
	bad.Amount = 0
	_, err = svc.UpdateTransaction(context.Background(), "tx1", bad)
	var verrs entity.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestDeleteTransaction(t *testing.T) {
	store := newFakeStore()
	store.rows["tx1"] = entity.Transaction{ID: "tx1"}
	svc := newTestService(store)

	require.NoError(t, svc.DeleteTransaction(context.Background(), "tx1"))
	assert.NotContains(t, store.rows, "tx1")
	assert.ErrorIs(t, svc.DeleteTransaction(context.Background(), "tx1"), transaction.ErrTransactionNotFound)

	store.failWith = errors.New("boom")
	assert.ErrorIs(t, svc.DeleteTransaction(context.Background(), "tx1"), transaction.ErrDeleteTransaction)
}
