package actor

import (
	"errors"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRole = errs.Mark(errors.New("invalid actor role"), errs.ErrInput)

type Role string

const (
	// RoleClient books milling time for its own olives.
	RoleClient Role = "client"
	// RoleOperator runs the mill and may act on any booking.
	RoleOperator Role = "operator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOperator:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the caller identity forwarded by the gateway.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsOperator() bool {
	return a.Role == RoleOperator
}

// CanModify reports whether the actor may change a booking owned by ownerID.
// In-house bookings are reserved to operators.
func (a Actor) CanModify(ownerID uuid.UUID) bool {
	if a.IsOperator() {
		return true
	}
	return !catalog.IsInHouse(ownerID) && a.ID == ownerID
}
