// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Every store can be rebound to an open
// transaction through WithTx, which is how the audit reason and the data
// mutation end up in the same unit of work.
package store
