package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/precise-api/internal/platform/logger"
)

func TestSlogGooseLogger(t *testing.T) {
	buf, l := logger.NewTestLogger()
	gl := &slogGooseLogger{logger: l}

	gl.Printf("OK   %s (%dms)\n", "20250101000001_create_master_tables.sql", 12)
	gl.Fatalf("failed to apply %s", "20250101000003_create_audit_log.sql")

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, "OK   20250101000001_create_master_tables.sql (12ms)")
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "failed to apply 20250101000003_create_audit_log.sql")
}
