package domain

import "strings"

// ReasonAction identifies the kind of mutation an audit reason justifies.
type ReasonAction string

// Supported reason actions.
const (
	ReasonActionUpdate ReasonAction = "update"
	ReasonActionDelete ReasonAction = "delete"
)

// AuditReason is the justification recorded immediately before a mutation,
// inside the same transaction. It is never read back by the application;
// database triggers attach it to the audit trail of the rows the mutation touches.
type AuditReason struct {
	ActingUser string
	Text       string
	Action     ReasonAction
}

// NewUpdateReason builds the reason for an update performed by actor.
func NewUpdateReason(actor, text string) AuditReason {
	return AuditReason{ActingUser: actor, Text: text, Action: ReasonActionUpdate}
}

// NewDeleteReason builds the reason for a delete performed by actor.
func NewDeleteReason(actor, text string) AuditReason {
	return AuditReason{ActingUser: actor, Text: text, Action: ReasonActionDelete}
}

// Validate checks that the reason names an actor, a justification and a known action.
func (r AuditReason) Validate() error {
	if strings.TrimSpace(r.ActingUser) == "" {
		return ErrEmptyActor
	}
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyReason
	}
	switch r.Action {
	case ReasonActionUpdate, ReasonActionDelete:
		return nil
	default:
		return NewValidationError("action", "is not a known reason action", ErrValidation)
	}
}
