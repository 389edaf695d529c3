// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/trackify/backend/internal/domain/valueobject"
)

// ReportCache stores computed report payloads per scope.
type ReportCache interface {
	// Get loads a cached report into dest. It reports whether an entry was found.
	Get(ctx context.Context, scope valueobject.Scope, report, params string, dest any) (bool, error)

	// Set stores a report payload.
	Set(ctx context.Context, scope valueobject.Scope, report, params string, value any) error

	// Invalidate drops every cached report visible to the scope.
	Invalidate(ctx context.Context, scope valueobject.Scope) error
}
