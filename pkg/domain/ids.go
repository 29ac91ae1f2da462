// Package domain holds the typed identifiers shared by every module.
//
// IDs are distinct named UUID types so the compiler rejects cross-type
// assignment (passing an OperationID where a PartyID is expected fails to
// build). Parse functions enforce the invariant that IDs are valid,
// non-empty, non-nil UUIDs at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "vigia/pkg/domain-errors"
)

type (
	// OperationID identifies a notarial operation.
	OperationID uuid.UUID
	// PartyID identifies a due-diligence party record (seller or buyer).
	PartyID uuid.UUID
	// AlertID identifies a compliance alert.
	AlertID uuid.UUID
	// NotaryID identifies a notary office (the tenant boundary for alerts).
	NotaryID uuid.UUID
	// UserID identifies a platform user (creator, reviewer).
	UserID uuid.UUID
)

func (id OperationID) String() string { return uuid.UUID(id).String() }
func (id PartyID) String() string     { return uuid.UUID(id).String() }
func (id AlertID) String() string     { return uuid.UUID(id).String() }
func (id NotaryID) String() string    { return uuid.UUID(id).String() }
func (id UserID) String() string      { return uuid.UUID(id).String() }

// MarshalText/UnmarshalText delegate to uuid.UUID so the IDs travel as
// canonical UUID strings in JSON, not as raw byte arrays.
func (id OperationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id PartyID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id AlertID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id NotaryID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id UserID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }

func (id *OperationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PartyID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *AlertID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *NotaryID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *UserID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id OperationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id PartyID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id AlertID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id NotaryID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }

// NewOperationID returns a fresh random OperationID.
func NewOperationID() OperationID { return OperationID(uuid.New()) }

// NewPartyID returns a fresh random PartyID.
func NewPartyID() PartyID { return PartyID(uuid.New()) }

// NewAlertID returns a fresh random AlertID.
func NewAlertID() AlertID { return AlertID(uuid.New()) }

// NewNotaryID returns a fresh random NotaryID.
func NewNotaryID() NotaryID { return NotaryID(uuid.New()) }

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

func parseUUID(raw, kind string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(dErrors.CodeInvalidInput, kind+" id is not a valid UUID", err)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be the nil UUID")
	}
	return parsed, nil
}

// ParseOperationID validates and converts a raw string into an OperationID.
func ParseOperationID(raw string) (OperationID, error) {
	parsed, err := parseUUID(raw, "operation")
	return OperationID(parsed), err
}

// ParsePartyID validates and converts a raw string into a PartyID.
func ParsePartyID(raw string) (PartyID, error) {
	parsed, err := parseUUID(raw, "party")
	return PartyID(parsed), err
}

// ParseAlertID validates and converts a raw string into an AlertID.
func ParseAlertID(raw string) (AlertID, error) {
	parsed, err := parseUUID(raw, "alert")
	return AlertID(parsed), err
}

// ParseNotaryID validates and converts a raw string into a NotaryID.
func ParseNotaryID(raw string) (NotaryID, error) {
	parsed, err := parseUUID(raw, "notary")
	return NotaryID(parsed), err
}

// ParseUserID validates and converts a raw string into a UserID.
func ParseUserID(raw string) (UserID, error) {
	parsed, err := parseUUID(raw, "user")
	return UserID(parsed), err
}
