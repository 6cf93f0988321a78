package request

import (
	"strings"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/patch"
	"fieldservice/internal/usecase/commands"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.Mark(errs.New("date must be YYYY-MM-DD"), errs.ErrValidation)

type CreateBookingRequest struct {
	ClientName            string     `json:"client_name" binding:"max=120"`
	ServiceType           string     `json:"service_type"`
	ServicesPerPerson     []string   `json:"services_per_person"`
	Date                  string     `json:"date"`
	TimeOfDay             string     `json:"time"`
	Address               string     `json:"address"`
	Neighborhood          string     `json:"neighborhood"`
	ContactPhone          string     `json:"contact_phone"`
	AttendeeCount         *int       `json:"attendee_count" binding:"omitempty,min=1"`
	HasAllergies          *bool      `json:"has_allergies"`
	AllergyNotes          string     `json:"allergy_notes"`
	ReferredBy            string     `json:"referred_by"`
	SuggestedSpecialistID *uuid.UUID `json:"suggested_specialist_id"`
	BackendID             *string    `json:"backend_id"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	var date time.Time
	if raw := strings.TrimSpace(r.Date); raw != "" {
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return commands.CreateBookingInput{}, errs.Mark(errs.Wrap(err, "parse date"), ErrInvalidDate)
		}
		date = d
	}

	return commands.CreateBookingInput{
		Details: booking.Details{
			ClientName:        r.ClientName,
			ServiceType:       r.ServiceType,
			ServicesPerPerson: r.ServicesPerPerson,
			Date:              date,
			TimeOfDay:         r.TimeOfDay,
			Address:           r.Address,
			Neighborhood:      r.Neighborhood,
			ContactPhone:      r.ContactPhone,
			AttendeeCount:     patch.Coalesce(r.AttendeeCount, 0),
			HasAllergies:      patch.Coalesce(r.HasAllergies, false),
			AllergyNotes:      r.AllergyNotes,
			ReferredBy:        r.ReferredBy,
		},
		SuggestedSpecialistID: r.SuggestedSpecialistID,
		BackendID:             r.BackendID,
	}, nil
}

type AssignRequest struct {
	SpecialistID uuid.UUID `json:"specialist_id" binding:"required"`
}

// SpecialistRef names the specialist a command is issued for. Specialists may
// leave it out; admins acting on someone's behalf must set it.
type SpecialistRef struct {
	SpecialistID *uuid.UUID `json:"specialist_id"`
}

func (r SpecialistRef) Resolve(actorID uuid.UUID) uuid.UUID {
	return patch.Coalesce(r.SpecialistID, actorID)
}

type AcceptRequest struct {
	SpecialistRef
}

type RejectRequest struct {
	SpecialistRef
	Reason string `json:"reason" binding:"max=500"`
}

type CompleteRequest struct {
	SpecialistRef
	Services           []string `json:"services"`
	Price              int64    `json:"price"`
	ConsumedProductIDs []string `json:"consumed_product_ids"`
	AdditionalCosts    int64    `json:"additional_costs"`
	Notes              string   `json:"notes" binding:"max=2000"`
}

func (r *CompleteRequest) ToDetails() booking.CompletionDetails {
	return booking.CompletionDetails{
		Services:           r.Services,
		Price:              money.New(r.Price),
		ConsumedProductIDs: r.ConsumedProductIDs,
		AdditionalCosts:    money.New(r.AdditionalCosts),
		Notes:              r.Notes,
	}
}
