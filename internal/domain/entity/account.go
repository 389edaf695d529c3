// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents the access role of an account.
type Role string

const (
	RoleOwner         Role = "owner"
	RoleAdministrator Role = "admin"
)

// ParseRole maps a stored or claimed role string onto the closed role set.
// Anything unrecognized is an owner.
func ParseRole(value string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdministrator:
		return RoleAdministrator
	case RoleOwner:
		return RoleOwner
	default:
		return RoleOwner
	}
}

// IsAdministrator reports whether the role grants unrestricted access.
func (r Role) IsAdministrator() bool {
	switch r {
	case RoleAdministrator:
		return true
	case RoleOwner:
		return false
	default:
		return false
	}
}

// Account represents a registered user of the ledger.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// NewAccount creates a new Account with a normalized email.
func NewAccount(name, email, passwordHash string, role Role) *Account {
	return &Account{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountPatch holds the optional fields of a profile update.
// A nil field leaves the current value untouched.
type AccountPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil
}

// Apply merges the patch into the account.
func (a *Account) Apply(patch AccountPatch) {
	if patch.Name != nil {
		a.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		a.Email = NormalizeEmail(*patch.Email)
	}
	if patch.PasswordHash != nil {
		a.PasswordHash = *patch.PasswordHash
	}
}
