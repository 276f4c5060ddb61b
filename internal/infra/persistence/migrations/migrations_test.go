package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_HaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(embedded, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(embedded, name)
		require.NoError(t, err)

		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
	}
}

func TestEmbeddedMigrations_DefineIntegrityIndexes(t *testing.T) {
	body, err := fs.ReadFile(embedded, "sql/20260301000001_init.sql")
	require.NoError(t, err)

	text := string(body)
	for _, index := range []string{
		"ux_accounts_role_email",
		"ux_service_orders_active",
		"ux_ratings_post_consumer",
		"ux_disputes_pending",
		"ux_refund_requests_pending",
	} {
		assert.True(t, strings.Contains(text, index), "missing index %s", index)
	}
}

func TestEmbeddedMigrations_ClaimsCascadeWithOrders(t *testing.T) {
	body, err := fs.ReadFile(embedded, "sql/20260301000002_claims_order_cascade.sql")
	require.NoError(t, err)

	up := strings.SplitN(string(body), "-- +goose Down", 2)[0]
	for _, table := range []string{"disputes", "refund_requests"} {
		assert.Contains(t, up, "ALTER TABLE "+table+" ADD CONSTRAINT "+table+"_order_id_fkey", table)
	}
	assert.Equal(t, 2, strings.Count(up, "ON DELETE CASCADE"))
	assert.NotContains(t, up, "SET NULL")
}
