package analyticsRepository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PersonalFinance/database/postgres/postgrestest"
	"PersonalFinance/pkg/period"
)

func TestAnalyticsRepository_Snapshot(t *testing.T) {
	db := postgrestest.Open(t)
	ctx := context.Background()

	seed := []struct {
		id, txType, category, amount string
		date                         time.Time
	}{
		{"01HANALYTICS00000000000001", "expense", "Food & Dining", "50", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"01HANALYTICS00000000000002", "expense", "Food & Dining", "30", time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)},
		{"01HANALYTICS00000000000003", "income", "Salary", "1000", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"01HANALYTICS00000000000004", "expense", "Shopping", "120", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"01HANALYTICS00000000000005", "expense", "Shopping", "999", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, s := range seed {
		_, err := db.Exec(
			`INSERT INTO transactions (id, amount, date, description, category, type) VALUES ($1, $2, $3, 'seed', $4, $5)`,
			s.id, s.amount, s.date, s.category, s.txType,
		)
		require.NoError(t, err)
	}
	_, err := db.Exec(`INSERT INTO budgets (id, category, amount, month) VALUES ('01HANALYTICSBUDGET00000001', 'Food & Dining', 100, '2024-03')`)
	require.NoError(t, err)

	client, err := New(db, postgrestest.Logger()).NewClient(ctx, true)
	require.NoError(t, err)
	defer func() { _ = client.Rollback() }()

	march, err := period.Parse("2024-03")
	require.NoError(t, err)

	expenses, err := client.Analytics.SumByCategory(ctx, "expense", march.Start(), march.End())
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Shopping", expenses[0].Category)
	assert.True(t, decimal.NewFromInt(120).Equal(expenses[0].Total))
	assert.Equal(t, "Food & Dining", expenses[1].Category)
	assert.True(t, decimal.NewFromInt(80).Equal(expenses[1].Total))

	income, err := client.Analytics.SumByCategory(ctx, "income", march.Start(), march.End())
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(income[0].Total))

	recent, err := client.Analytics.RecentTransactions(ctx, march.Start(), march.End(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "01HANALYTICS00000000000002", recent[0].ID)
	assert.Equal(t, "01HANALYTICS00000000000004", recent[1].ID)

	budgets, err := client.Analytics.BudgetsByMonth(ctx, "2024-03")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.True(t, decimal.NewFromInt(100).Equal(budgets[0].Amount))

	require.NoError(t, client.Commit())
}
