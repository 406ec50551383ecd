package domain

import "time"

// Audit holds the bookkeeping columns shared by every master-data table.
type Audit struct {
	CreatedOn time.Time
	CreatedBy string
	UpdatedOn *time.Time
	UpdatedBy *string
}

// Country is a row of the country master table.
type Country struct {
	ID   int64
	Code string
	Name string
	Audit
}

// State is a row of the state master table. CountryName is populated on reads
// from the owning country and ignored on writes.
type State struct {
	ID          int64
	Code        string
	Name        string
	CountryID   int64
	CountryName string
	Audit
}

// City is a row of the city master table. StateName and CountryName are
// populated on reads and ignored on writes.
type City struct {
	ID          int64
	Code        string
	Name        string
	StateID     int64
	StateName   string
	CountryName string
	Audit
}
