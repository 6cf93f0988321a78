package booking

import (
	"strings"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"
)

const (
	MaxClientNameLength = 120
	TimeOfDayLayout     = "15:04"
)

var (
	ErrClientNameRequired = errs.Mark(errs.New("client name is required"), errs.ErrValidation)
	ErrClientNameTooLong  = errs.Mark(errs.New("client name is too long"), errs.ErrValidation)
	ErrServiceRequired    = errs.Mark(errs.New("at least one service type is required"), errs.ErrValidation)
	ErrDateRequired       = errs.Mark(errs.New("date is required"), errs.ErrValidation)
	ErrInvalidTimeOfDay   = errs.Mark(errs.New("time must be HH:MM"), errs.ErrValidation)
	ErrInvalidAttendees   = errs.Mark(errs.New("attendee count must be positive"), errs.ErrValidation)
	ErrAddressRequired    = errs.Mark(errs.New("address is required"), errs.ErrValidation)
	ErrNonPositivePrice   = errs.Mark(errs.New("confirmed price must be positive"), errs.ErrValidation)
	ErrNegativeCosts      = errs.Mark(errs.New("additional costs cannot be negative"), errs.ErrValidation)
)

// Details is the descriptive part of a booking. It never changes the workflow.
type Details struct {
	ClientName        string
	ServiceType       string
	ServicesPerPerson []string
	Date              time.Time
	TimeOfDay         string
	Address           string
	Neighborhood      string
	ContactPhone      string
	AttendeeCount     int
	HasAllergies      bool
	AllergyNotes      string
	ReferredBy        string
}

func (d Details) Normalize() Details {
	d.ClientName = strings.TrimSpace(d.ClientName)
	d.ServiceType = strings.TrimSpace(d.ServiceType)
	services := make([]string, 0, len(d.ServicesPerPerson))
	for _, s := range d.ServicesPerPerson {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	d.ServicesPerPerson = services
	if d.ServiceType == "" && len(services) > 0 {
		d.ServiceType = services[0]
	}
	if d.AttendeeCount == 0 {
		d.AttendeeCount = max(len(services), 1)
	}
	d.Address = strings.TrimSpace(d.Address)
	d.TimeOfDay = strings.TrimSpace(d.TimeOfDay)
	if !d.Date.IsZero() {
		y, m, day := d.Date.Date()
		d.Date = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	return d
}

func (d Details) Validate() error {
	switch {
	case d.ClientName == "":
		return ErrClientNameRequired
	case len(d.ClientName) > MaxClientNameLength:
		return ErrClientNameTooLong
	case d.ServiceType == "" && len(d.ServicesPerPerson) == 0:
		return ErrServiceRequired
	case d.Date.IsZero():
		return ErrDateRequired
	case d.Address == "":
		return ErrAddressRequired
	case d.AttendeeCount < 1:
		return ErrInvalidAttendees
	}
	if d.TimeOfDay != "" {
		if _, err := time.Parse(TimeOfDayLayout, d.TimeOfDay); err != nil {
			return ErrInvalidTimeOfDay
		}
	}
	return nil
}

// ServiceTypes lists one entry per priced service: the per-person list when
// present, otherwise the single service type.
func (d Details) ServiceTypes() []string {
	if len(d.ServicesPerPerson) > 0 {
		out := make([]string, len(d.ServicesPerPerson))
		copy(out, d.ServicesPerPerson)
		return out
	}
	if d.ServiceType == "" {
		return nil
	}
	return []string{d.ServiceType}
}

// CompletionDetails is what the specialist confirms when closing a booking.
type CompletionDetails struct {
	Services           []string
	Price              money.Money
	ConsumedProductIDs []string
	AdditionalCosts    money.Money
	Notes              string
}

func (c CompletionDetails) Validate() error {
	services := 0
	for _, s := range c.Services {
		if strings.TrimSpace(s) != "" {
			services++
		}
	}
	if services == 0 {
		return ErrServiceRequired
	}
	if !c.Price.IsPositive() {
		return ErrNonPositivePrice
	}
	if c.AdditionalCosts.IsNegative() {
		return ErrNegativeCosts
	}
	return nil
}
