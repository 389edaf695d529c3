// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// ParseID parses a record identifier. Malformed values and the nil UUID report false.
func ParseID(value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
