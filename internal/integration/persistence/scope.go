// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"

	"github.com/trackify/backend/internal/domain/valueobject"
)

// applyScope restricts a query to the owner of a non-admin scope.
func applyScope(query *gorm.DB, scope valueobject.Scope) *gorm.DB {
	if scope.IsAdmin {
		return query
	}
	return query.Where("owner_id = ?", scope.OwnerID)
}
