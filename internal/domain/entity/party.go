package entity

import (
	"github.com/google/uuid"
)

// PartyRef is a tagged reference to an account of any role. It replaces loosely typed
// "consumer or provider" references: the kind is always stored next to the id.
type PartyRef struct {
	Kind Role      `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// NewPartyRef builds a reference for the given role and account id.
func NewPartyRef(kind Role, id uuid.UUID) PartyRef {
	return PartyRef{Kind: kind, ID: id}
}

// IsZero reports whether the reference points nowhere.
func (p PartyRef) IsZero() bool {
	return p.Kind == "" && p.ID == uuid.Nil
}

// Is reports whether this reference points to the given party.
func (p PartyRef) Is(other PartyRef) bool {
	return p.Kind == other.Kind && p.ID == other.ID
}

// Party is the capability every role-specific actor shares. Lifecycle operations are
// parameterised over it instead of duplicating logic per role.
type Party interface {
	Ref() PartyRef
	ContactEmail() string
	DisplayName() string
}

// Principal is the authenticated account making a request.
type Principal struct {
	ID    uuid.UUID
	Role  Role
	Email string
	Name  string
}

// Ref returns the tagged reference of the principal.
func (p Principal) Ref() PartyRef {
	return PartyRef{Kind: p.Role, ID: p.ID}
}

// ContactEmail returns the address used for outbound email.
func (p Principal) ContactEmail() string {
	return p.Email
}

// DisplayName returns the name shown in notifications.
func (p Principal) DisplayName() string {
	return p.Name
}

// EntityKind names the record a notification or event relates to.
type EntityKind string

const (
	EntityKindOrder   EntityKind = "order"
	EntityKindDispute EntityKind = "dispute"
	EntityKindRefund  EntityKind = "refund"
	EntityKindAccount EntityKind = "account"
)

// EntityRef points at the record that caused a notification.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}
