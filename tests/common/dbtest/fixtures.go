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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestMember inserts a member row directly, bypassing the registry.
func CreateTestMember(t *testing.T, db DBLike, code, name, surname string, registered time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO members (id, name, surname, registration_date) VALUES ($1, $2, $3, $4)",
		code, name, surname, registered)
	require.NoError(t, err)
}

func CountFieldBookings(t *testing.T, db DBLike, memberID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM field_bookings WHERE member_id = $1", memberID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountPoolBookings(t *testing.T, db DBLike, memberID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM pool_bookings WHERE member_id = $1", memberID).Scan(&n)
	require.NoError(t, err)
	return n
}

// PoolUsage returns the summed bed and umbrella units booked on date.
func PoolUsage(t *testing.T, db DBLike, date string) (beds, umbrellas int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(sum(beds), 0), COALESCE(sum(umbrellas), 0) FROM pool_bookings WHERE booking_date = $1::date",
		date).Scan(&beds, &umbrellas)
	require.NoError(t, err)
	return beds, umbrellas
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except the per-service migration version tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT LIKE '%schema_migrations'`)
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
