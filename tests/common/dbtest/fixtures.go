//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// CreateDivision inserts a division and, when percentage is non-nil, an
// active discount rule for it.
func CreateDivision(t *testing.T, db DBLike, name string, percentage *decimal.Decimal) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	divisionID := uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO divisions (id, name, is_active) VALUES ($1, $2, true)", divisionID, name)
	require.NoError(t, err)

	if percentage != nil {
		_, err = db.Exec(ctx,
			"INSERT INTO division_discount_rules (division_id, discount_percentage, is_active) VALUES ($1, $2, true)",
			divisionID, *percentage)
		require.NoError(t, err)
	}
	return divisionID
}

// CreateEmployee inserts an active employee; a nil limit falls back to the
// configured default.
func CreateEmployee(t *testing.T, db DBLike, email string, monthlyLimit *decimal.Decimal) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO employees (id, full_name, email, is_active, monthly_spending_limit) VALUES ($1, $2, $3, true, $4)",
		employeeID, "Employee "+email, email, monthlyLimit)
	require.NoError(t, err)
	return employeeID
}

func DeactivateEmployee(t *testing.T, db DBLike, employeeID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE employees SET is_active = false WHERE id = $1", employeeID)
	require.NoError(t, err)
}

// CreateLedgerEntry writes a past redemption directly, with its own used code,
// so spending can be set up without going through the API.
func CreateLedgerEntry(t *testing.T, db DBLike, employeeID, divisionID uuid.UUID, original, percentage decimal.Decimal, at time.Time) {
	t.Helper()

	ctx := context.Background()
	codeID := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO discount_codes (id, employee_id, division_id, discount_percentage, manual_code, qr_payload, status, expires_at, created_at, used_at)
		VALUES ($1, $2, $3, $4, $5, '', 'used', $6, $7, $6)`,
		codeID, employeeID, divisionID, percentage, "L"+codeID.String()[:8], at, at.Add(-time.Minute))
	require.NoError(t, err)

	discount := original.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
	_, err = db.Exec(ctx, `
		INSERT INTO transactions (id, discount_code_id, employee_id, division_id, original_amount, discount_percentage, discount_amount, final_amount, validated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.New(), codeID, employeeID, divisionID, original, percentage, discount, original.Sub(discount), uuid.New(), at)
	require.NoError(t, err)
}

func CountTransactions(t *testing.T, db DBLike, employeeID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM transactions WHERE employee_id = $1", employeeID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountActiveCodes(t *testing.T, db DBLike, employeeID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM discount_codes WHERE employee_id = $1 AND status = 'active'", employeeID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
