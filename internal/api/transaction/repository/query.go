package transactionRepository

const (
	transactionColumns = `
			id,
			amount,
			date,
			description,
			category,
			type,
			created_at,
			updated_at`

	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			amount,
			date,
			description,
			category,
			type,
			created_at,
			updated_at
		) VALUES (
			:id,
			:amount,
			:date,
			:description,
			:category,
			:type,
			:created_at,
			:updated_at
		)
		RETURNING` + transactionColumns

	queryGetTransactionByID = `
		SELECT` + transactionColumns + `
		FROM transactions
		WHERE id = :id
	`

	queryListTransactions = `
		SELECT` + transactionColumns + `
		FROM transactions
	`

	queryListTransactionsOrder = `
		ORDER BY date DESC, created_at DESC
		LIMIT :limit
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			amount = :amount,
			date = :date,
			description = :description,
			category = :category,
			type = :type,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING` + transactionColumns

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
