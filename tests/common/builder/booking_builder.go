//go:build unit || e2e

package builder

import (
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/money"
	reqdto "fieldservice/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ClientName        string
	ServiceType       string
	ServicesPerPerson []string
	Date              time.Time
	TimeOfDay         string
	Address           string
	Neighborhood      string
	ContactPhone      string
	AttendeeCount     int
	Now               time.Time

	Status           booking.Status
	SpecialistID     *uuid.UUID
	AssignedAt       *time.Time
	RejectionHistory []string
	PaymentStatus    booking.PaymentStatus
	Price            *money.Money
	EstimatedPrice   *money.Money
	Deductions       money.Money
	Version          int64
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ClientName:    "Laura Gómez",
		ServiceType:   "standard",
		Date:          time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TimeOfDay:     "15:30",
		Address:       "Av. Corrientes 1234",
		Neighborhood:  "Almagro",
		ContactPhone:  "+54 11 5555 0101",
		AttendeeCount: 1,
		Now:           now,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPending,
		Version:       1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) AssignedTo(specialistID uuid.UUID, at time.Time) *BookingBuilder {
	b.Status = booking.StatusAssigned
	b.SpecialistID = &specialistID
	b.AssignedAt = &at
	return b
}

func (b *BookingBuilder) AcceptedBy(specialistID uuid.UUID, at time.Time) *BookingBuilder {
	b.AssignedTo(specialistID, at)
	b.Status = booking.StatusAccepted
	return b
}

func (b *BookingBuilder) CompletedBy(specialistID uuid.UUID, price, deductions int64) *BookingBuilder {
	b.AcceptedBy(specialistID, b.Now)
	p := money.New(price)
	b.Status = booking.StatusCompleted
	b.Price = &p
	b.Deductions = money.New(deductions)
	return b
}

func (b *BookingBuilder) Details() booking.Details {
	return booking.Details{
		ClientName:        b.ClientName,
		ServiceType:       b.ServiceType,
		ServicesPerPerson: b.ServicesPerPerson,
		Date:              b.Date,
		TimeOfDay:         b.TimeOfDay,
		Address:           b.Address,
		Neighborhood:      b.Neighborhood,
		ContactPhone:      b.ContactPhone,
		AttendeeCount:     b.AttendeeCount,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Details(), nil, nil, b.Now)
}

// BuildReconstructed skips validation and places the booking directly in the configured state.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.Reconstruct(b.BuildSnapshot())
}

func (b *BookingBuilder) BuildSnapshot() booking.Snapshot {
	var completedAt *time.Time
	if b.Status == booking.StatusCompleted {
		at := b.Now
		completedAt = &at
	}
	history := b.RejectionHistory
	if history == nil {
		history = []string{}
	}
	return booking.Snapshot{
		ID:               uuid.New(),
		Details:          b.Details().Normalize(),
		Status:           b.Status,
		SpecialistID:     b.SpecialistID,
		AssignedAt:       b.AssignedAt,
		RejectionHistory: history,
		PaymentStatus:    b.PaymentStatus,
		Price:            b.Price,
		EstimatedPrice:   b.EstimatedPrice,
		Deductions:       b.Deductions,
		CompletedAt:      completedAt,
		Version:          b.Version,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	d := b.Details()
	return reqdto.CreateBookingRequest{
		ClientName:        d.ClientName,
		ServiceType:       d.ServiceType,
		ServicesPerPerson: d.ServicesPerPerson,
		Date:              d.Date.Format(reqdto.DateLayout),
		TimeOfDay:         d.TimeOfDay,
		Address:           d.Address,
		Neighborhood:      d.Neighborhood,
		ContactPhone:      d.ContactPhone,
		AttendeeCount:     &d.AttendeeCount,
	}
}
