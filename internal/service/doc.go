// Package service contains the master-data use cases. It coordinates the
// repositories defined in internal/store and owns the transactional
// "mutate with audit reason" workflow shared by every update and delete.
//
// Key components:
//
//   - AuditedMutator: begin, record the audit reason, run the mutation on the
//     same transaction, commit. Any failure rolls everything back.
//   - CountryService, StateService, CityService: reads, creates with reference
//     checks, and updates or deletes that go through AuditedMutator.
//
// The service layer depends on domain entities and store interfaces, never on
// a specific database implementation.
package service
