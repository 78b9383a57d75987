package store

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityKind names the entity a store operation failed to resolve.
type EntityKind string

const (
	KindProject  EntityKind = "project"
	KindSchedule EntityKind = "schedule"
	KindCategory EntityKind = "category"
	KindItem     EntityKind = "item"

	// KindProduct is used by the service layer when a catalog lookup
	// fails; the store itself never holds products.
	KindProduct EntityKind = "product"
)

// NotFoundError is returned when an id passed to a store operation does not
// resolve. Unknown ids are never silent no-ops.
type NotFoundError struct {
	Kind EntityKind
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError is returned when a mutation carries a value the store
// refuses to apply.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func notFound(kind EntityKind, id uuid.UUID) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
