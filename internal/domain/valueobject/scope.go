// Package valueobject contains domain value objects for the Trackify ledger.
package valueobject

import (
	"github.com/google/uuid"

	"github.com/trackify/backend/internal/domain/entity"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// Scope is the ownership filter applied to every category and expense
// read or write. An admin scope is unrestricted.
type Scope struct {
	IsAdmin bool
	OwnerID uuid.UUID
}

// ResolveScope maps an actor onto its scope. It performs no I/O.
func ResolveScope(actor Actor) Scope {
	return Scope{
		IsAdmin: actor.Role.IsAdministrator(),
		OwnerID: actor.AccountID,
	}
}

// OwnerScope returns the restricted scope of a single account.
func OwnerScope(ownerID uuid.UUID) Scope {
	return Scope{OwnerID: ownerID}
}

// Allows reports whether a record owned by ownerID is visible in the scope.
func (s Scope) Allows(ownerID uuid.UUID) bool {
	return s.IsAdmin || s.OwnerID == ownerID
}
