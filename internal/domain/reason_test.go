package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditReasonValidate(t *testing.T) {
	tests := []struct {
		name    string
		reason  AuditReason
		wantErr error
	}{
		{
			name:   "valid update reason",
			reason: NewUpdateReason("admin", "fix typo in country name"),
		},
		{
			name:   "valid delete reason",
			reason: NewDeleteReason("admin", "duplicate entry"),
		},
		{
			name:    "missing actor",
			reason:  NewUpdateReason("  ", "fix typo"),
			wantErr: ErrEmptyActor,
		},
		{
			name:    "missing reason text",
			reason:  NewUpdateReason("admin", ""),
			wantErr: ErrEmptyReason,
		},
		{
			name:    "unknown action",
			reason:  AuditReason{ActingUser: "admin", Text: "why", Action: "truncate"},
			wantErr: ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.reason.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("country_id", "has invalid format", ErrInvalidID)

	assert.Equal(t, "country_id has invalid format", err.Error())
	assert.ErrorIs(t, err, ErrInvalidID)
}
