package user

import (
	"strings"

	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRole = errs.Mark(errs.New("invalid role"), errs.ErrValidation)

type Role string

const (
	RoleSpecialist Role = "specialist"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSpecialist, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of a command. For specialists the user id
// is the specialist id.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanActFor reports whether the actor may act on behalf of the given specialist.
func (a Actor) CanActFor(specialistID uuid.UUID) bool {
	return a.IsAdmin() || (a.Role == RoleSpecialist && a.ID == specialistID)
}
