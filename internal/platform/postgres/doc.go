// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// All stores run through store.DBTX so that a store obtained from WithTx shares
// the caller's transaction. Audit reasons are handed to the database with
// transaction-local settings (see ReasonStore) and copied into audit_log by
// triggers created in the embedded migrations.
package postgres
