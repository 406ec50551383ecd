package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsHaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestAuditTriggerReadsReasonSettings(t *testing.T) {
	body, err := fs.ReadFile(FS, "20250101000003_create_audit_log.sql")
	require.NoError(t, err)

	sql := string(body)
	for _, setting := range []string{"precise.user_name", "precise.reason", "precise.action"} {
		assert.True(t, strings.Contains(sql, "current_setting('"+setting+"', true)"), setting)
	}
	for _, table := range []string{"country", "state", "city"} {
		assert.Contains(t, sql, "CREATE TRIGGER "+table+"_audit")
	}
}
