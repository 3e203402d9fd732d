package analyticsRepository

const (
	querySumByCategory = `
		SELECT
			category,
			SUM(amount) AS total
		FROM transactions
		WHERE type = :type
			AND date >= :start
			AND date < :end
		GROUP BY category
		ORDER BY total DESC, category ASC
	`

	queryRecentTransactions = `
		SELECT
			id,
			amount,
			date,
			description,
			category,
			type,
			created_at,
			updated_at
		FROM transactions
		WHERE date >= :start
			AND date < :end
		ORDER BY date DESC, created_at DESC
		LIMIT :limit
	`

	queryBudgetsByMonth = `
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
)
