package shared

import (
	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAdminOnly       = errs.Mark(errs.New("operation requires admin role"), errs.ErrForbidden)
	ErrNotOwnSchedule  = errs.Mark(errs.New("actor cannot act for this specialist"), errs.ErrForbidden)
	ErrSpecialistIDNil = errs.Mark(errs.New("specialist id is required"), errs.ErrValidation)
)

func RequireAdmin(actor user.Actor) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// RequireActFor lets admins through and specialists only for themselves.
func RequireActFor(actor user.Actor, specialistID uuid.UUID) error {
	if specialistID == uuid.Nil {
		return ErrSpecialistIDNil
	}
	if !actor.CanActFor(specialistID) {
		return ErrNotOwnSchedule
	}
	return nil
}
