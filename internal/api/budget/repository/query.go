package budgetRepository

const (
	queryListBudgetsByMonth = `
		SELECT
			id,
			category,
			amount,
			month,
			created_at,
			updated_at
		FROM budgets
		WHERE month = :month
		ORDER BY category ASC
	`

	// xmax is zero only for a freshly inserted row version.
	queryUpsertBudget = `
		INSERT INTO budgets (
			id,
			category,
			amount,
			month,
			created_at,
			updated_at
		) VALUES (
			:id,
			:category,
			:amount,
			:month,
			:created_at,
			:updated_at
		)
		ON CONFLICT (category, month) DO UPDATE
		SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
		RETURNING
			id,
			category,
			amount,
			month,
			created_at,
			updated_at,
			(xmax = 0) AS inserted
	`
)
