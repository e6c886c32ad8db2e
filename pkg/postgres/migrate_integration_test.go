//go:build integration

package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/pkg/postgres"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/testutil"
)

func TestRunMigrations_AppliesOnce(t *testing.T) {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "internal", "infrastructure", "postgres", "migrations")

	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)

	require.NoError(t, postgres.RunMigrations(pc.DSN, dir))
	// second run has nothing to apply
	require.NoError(t, postgres.RunMigrations(pc.DSN, dir))

	var n int
	err := pc.Pool.QueryRow(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ANY($1)`,
		[]string{"covenant_loans", "covenant_statuses", "covenant_alerts", "esg_profiles", "loan_documents", "verification_items"},
	).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}
