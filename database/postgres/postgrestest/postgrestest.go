// Package postgrestest opens a migrated database for repository integration tests.
package postgrestest

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"PersonalFinance/database/postgres"
)

const (
	containerImage = "postgres:16-alpine"

	// advisoryLockKey is arbitrary; it only has to be shared by every test binary.
	advisoryLockKey int64 = 72_616_001
)

var (
	containerOnce sync.Once
	containerURL  string
	containerErr  error
)

// Open connects to the test database, waits for exclusive use of it, applies
// migrations and empties the application tables.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := postgres.New(postgres.Config{URL: databaseURL(t), ConnectAttempts: 1}, nil)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	lockDatabase(t, db)

	if err := postgres.Migrate(db, postgres.Up); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if _, err := db.Exec(`TRUNCATE transactions, budgets`); err != nil {
		t.Fatalf("truncate test database: %v", err)
	}

	return db
}

// lockDatabase holds a session advisory lock until the test ends, so test
// binaries sharing one database never truncate each other's rows.
func lockDatabase(t testing.TB, db *sqlx.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.Connx(ctx)
	if err != nil {
		t.Fatalf("reserve lock connection: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		_ = conn.Close()
		t.Fatalf("acquire test database lock: %v", err)
	}

	t.Cleanup(func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockKey)
		_ = conn.Close()
	})
}

// databaseURL returns TEST_DATABASE_URL. When it is unset and
// TEST_POSTGRES_CONTAINER is "1", a throwaway postgres container is started
// once per test binary. Otherwise the test is skipped.
func databaseURL(t testing.TB) string {
	t.Helper()

	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	return containerDatabaseURL(t)
}

func containerDatabaseURL(t testing.TB) string {
	t.Helper()

	if os.Getenv("TEST_POSTGRES_CONTAINER") != "1" || testing.Short() {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		var ctr *tcpostgres.PostgresContainer
		ctr, containerErr = tcpostgres.Run(ctx, containerImage,
			tcpostgres.WithDatabase("finance_test"),
			tcpostgres.WithUsername("finance"),
			tcpostgres.WithPassword("finance"),
			tcpostgres.BasicWaitStrategies(),
		)
		if containerErr != nil {
			if ctr != nil {
				_ = testcontainers.TerminateContainer(ctr)
			}
			return
		}
		containerURL, containerErr = ctr.ConnectionString(ctx, "sslmode=disable")
	})

	if containerErr != nil {
		t.Skipf("postgres container unavailable: %v", containerErr)
	}
	return containerURL
}

// Logger returns a quiet logger for repositories under test.
func Logger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}
