// Package mocks provides shared fakes for the service and store interfaces
// used by the HTTP layer tests.
//
// Each mock carries a function field per method. When the field is nil the
// mock falls back to its default values, so tests only set what they need:
//
//	countries := &mocks.MockCountryService{
//	    GetFn: func(ctx context.Context, id int64) (*domain.Country, error) {
//	        return nil, store.ErrCountryNotFound
//	    },
//	}
package mocks
