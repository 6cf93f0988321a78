package booking

import (
	"slices"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransitionNotAllowed = errs.Mark(errs.New("transition not allowed"), errs.ErrInvalidTransition)
	ErrAlreadyPaid          = errs.Mark(errs.New("booking is already paid"), errs.ErrInvalidTransition)
	ErrNotAssigned          = errs.Mark(errs.New("booking is no longer assigned"), errs.ErrStaleAssignment)
	ErrAssignedToOther      = errs.Mark(errs.New("booking is assigned to another specialist"), errs.ErrStaleAssignment)
	ErrSpecialistRequired   = errs.Mark(errs.New("specialist id is required"), errs.ErrValidation)
	ErrSpecialistName       = errs.Mark(errs.New("specialist name is required"), errs.ErrValidation)
)

type Booking struct {
	id                    uuid.UUID
	backendID             *string
	details               Details
	suggestedSpecialistID *uuid.UUID

	status           Status
	observedStatus   Status
	specialistID     *uuid.UUID
	assignedAt       *time.Time
	rejectionHistory []string
	paymentStatus    PaymentStatus

	price             *money.Money
	estimatedPrice    *money.Money
	deductions        money.Money
	additionalCosts   money.Money
	confirmedServices []string
	completionNotes   string

	completedAt *time.Time
	paidAt      *time.Time
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a booking in pending. A suggested specialist is only a
// hint for the admin; it is not an assignment.
func NewBooking(details Details, suggested *uuid.UUID, backendID *string, now time.Time) (*Booking, error) {
	details = details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return &Booking{
		id:                    uuid.New(),
		backendID:             backendID,
		details:               details,
		suggestedSpecialistID: suggested,
		status:                StatusPending,
		observedStatus:        StatusPending,
		paymentStatus:         PaymentPending,
		rejectionHistory:      []string{},
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// Snapshot is the flat, persistable form of a booking.
type Snapshot struct {
	ID                    uuid.UUID
	BackendID             *string
	Details               Details
	SuggestedSpecialistID *uuid.UUID
	Status                Status
	SpecialistID          *uuid.UUID
	AssignedAt            *time.Time
	RejectionHistory      []string
	PaymentStatus         PaymentStatus
	Price                 *money.Money
	EstimatedPrice        *money.Money
	Deductions            money.Money
	AdditionalCosts       money.Money
	ConfirmedServices     []string
	CompletionNotes       string
	CompletedAt           *time.Time
	PaidAt                *time.Time
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func Reconstruct(s Snapshot) *Booking {
	payment := s.PaymentStatus
	if payment == "" {
		payment = PaymentPending
	}
	return &Booking{
		id:                    s.ID,
		backendID:             s.BackendID,
		details:               s.Details,
		suggestedSpecialistID: s.SuggestedSpecialistID,
		status:                s.Status,
		observedStatus:        s.Status,
		specialistID:          s.SpecialistID,
		assignedAt:            s.AssignedAt,
		rejectionHistory:      slices.Clone(s.RejectionHistory),
		paymentStatus:         payment,
		price:                 s.Price,
		estimatedPrice:        s.EstimatedPrice,
		deductions:            s.Deductions,
		additionalCosts:       s.AdditionalCosts,
		confirmedServices:     slices.Clone(s.ConfirmedServices),
		completionNotes:       s.CompletionNotes,
		completedAt:           s.CompletedAt,
		paidAt:                s.PaidAt,
		version:               s.Version,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	d := b.details
	d.ServicesPerPerson = slices.Clone(d.ServicesPerPerson)
	return Snapshot{
		ID:                    b.id,
		BackendID:             b.backendID,
		Details:               d,
		SuggestedSpecialistID: b.suggestedSpecialistID,
		Status:                b.status,
		SpecialistID:          b.specialistID,
		AssignedAt:            b.assignedAt,
		RejectionHistory:      slices.Clone(b.rejectionHistory),
		PaymentStatus:         b.paymentStatus,
		Price:                 b.price,
		EstimatedPrice:        b.estimatedPrice,
		Deductions:            b.deductions,
		AdditionalCosts:       b.additionalCosts,
		ConfirmedServices:     slices.Clone(b.confirmedServices),
		CompletionNotes:       b.completionNotes,
		CompletedAt:           b.completedAt,
		PaidAt:                b.paidAt,
		Version:               b.version,
		CreatedAt:             b.createdAt,
		UpdatedAt:             b.updatedAt,
	}
}

// Assign (re)assigns the booking and opens a new response window. Any
// pre-completion status may be reassigned.
func (b *Booking) Assign(specialistID uuid.UUID, estimated money.Money, now time.Time) error {
	if specialistID == uuid.Nil {
		return ErrSpecialistRequired
	}
	if b.status == StatusCompleted {
		return errs.Wrapf(ErrTransitionNotAllowed, "assign from %s", b.status)
	}
	id := specialistID
	at := now
	b.status = StatusAssigned
	b.specialistID = &id
	b.assignedAt = &at
	b.estimatedPrice = &estimated
	b.updatedAt = now
	return nil
}

func (b *Booking) Accept(specialistID uuid.UUID, now time.Time) error {
	if err := b.checkAssignedTo(specialistID, "accept"); err != nil {
		return err
	}
	b.status = StatusAccepted
	b.updatedAt = now
	return nil
}

// Reject sends the booking back to pending and records who declined.
// The history is informational; it never blocks a later reassignment.
func (b *Booking) Reject(specialistID uuid.UUID, specialistName string, now time.Time) error {
	if err := b.checkAssignedTo(specialistID, "reject"); err != nil {
		return err
	}
	if specialistName == "" {
		return ErrSpecialistName
	}
	b.rejectionHistory = append(b.rejectionHistory, specialistName)
	b.unassign(now)
	return nil
}

// Release is the timeout path: same as Reject but the history is left alone.
func (b *Booking) Release(now time.Time) error {
	if b.status != StatusAssigned {
		return errs.Wrapf(ErrNotAssigned, "release from %s", b.status)
	}
	b.unassign(now)
	return nil
}

// Complete closes an accepted booking. deductions is the total cost of the
// consumed products, resolved by the caller from the product catalog.
func (b *Booking) Complete(specialistID uuid.UUID, c CompletionDetails, deductions money.Money, now time.Time) error {
	if b.status != StatusAccepted {
		return errs.Wrapf(ErrTransitionNotAllowed, "complete from %s", b.status)
	}
	if b.specialistID == nil || *b.specialistID != specialistID {
		return ErrAssignedToOther
	}
	if err := c.Validate(); err != nil {
		return err
	}
	price := c.Price
	at := now
	b.status = StatusCompleted
	b.price = &price
	b.deductions = deductions
	b.additionalCosts = c.AdditionalCosts
	b.confirmedServices = slices.Clone(c.Services)
	b.completionNotes = c.Notes
	b.paymentStatus = PaymentPending
	b.completedAt = &at
	b.updatedAt = now
	return nil
}

// MarkPaid is one-way. Paying twice is a caller bug and is reported.
func (b *Booking) MarkPaid(now time.Time) error {
	if b.status != StatusCompleted {
		return errs.Wrapf(ErrTransitionNotAllowed, "mark paid from %s", b.status)
	}
	if b.paymentStatus == PaymentPaid {
		return ErrAlreadyPaid
	}
	at := now
	b.paymentStatus = PaymentPaid
	b.paidAt = &at
	b.updatedAt = now
	return nil
}

func (b *Booking) checkAssignedTo(specialistID uuid.UUID, op string) error {
	switch b.status {
	case StatusAssigned:
		if b.specialistID == nil || *b.specialistID != specialistID {
			return ErrAssignedToOther
		}
		return nil
	case StatusPending:
		return errs.Wrapf(ErrNotAssigned, "%s from %s", op, b.status)
	default:
		return errs.Wrapf(ErrTransitionNotAllowed, "%s from %s", op, b.status)
	}
}

func (b *Booking) unassign(now time.Time) {
	b.status = StatusPending
	b.specialistID = nil
	b.assignedAt = nil
	b.updatedAt = now
}

// Deadline is the end of the current response window. ok is false when the
// booking is not waiting on a specialist or the assignment time is unknown.
func (b *Booking) Deadline(window time.Duration) (deadline time.Time, ok bool) {
	if b.status != StatusAssigned || b.assignedAt == nil {
		return time.Time{}, false
	}
	return b.assignedAt.Add(window), true
}

func (b *Booking) IsExpired(now time.Time, window time.Duration) bool {
	d, ok := b.Deadline(window)
	return ok && now.After(d)
}

func (b *Booking) RejectionCount(name string) int {
	n := 0
	for _, r := range b.rejectionHistory {
		if r == name {
			n++
		}
	}
	return n
}

func (b *Booking) WasRejectedBy(name string) bool {
	return slices.Contains(b.rejectionHistory, name)
}

func (b *Booking) IsCompleted() bool { return b.status == StatusCompleted }
func (b *Booking) IsPaid() bool      { return b.paymentStatus == PaymentPaid }

func (b *Booking) ID() uuid.UUID                     { return b.id }
func (b *Booking) BackendID() *string                { return b.backendID }
func (b *Booking) Details() Details                  { return b.details }
func (b *Booking) SuggestedSpecialistID() *uuid.UUID { return b.suggestedSpecialistID }
func (b *Booking) Status() Status                    { return b.status }
func (b *Booking) ObservedStatus() Status            { return b.observedStatus }
func (b *Booking) SpecialistID() *uuid.UUID          { return b.specialistID }
func (b *Booking) AssignedAt() *time.Time            { return b.assignedAt }
func (b *Booking) RejectionHistory() []string        { return slices.Clone(b.rejectionHistory) }
func (b *Booking) PaymentStatus() PaymentStatus      { return b.paymentStatus }
func (b *Booking) Price() *money.Money               { return b.price }
func (b *Booking) EstimatedPrice() *money.Money      { return b.estimatedPrice }
func (b *Booking) Deductions() money.Money           { return b.deductions }
func (b *Booking) AdditionalCosts() money.Money      { return b.additionalCosts }
func (b *Booking) ConfirmedServices() []string       { return slices.Clone(b.confirmedServices) }
func (b *Booking) CompletionNotes() string           { return b.completionNotes }
func (b *Booking) CompletedAt() *time.Time           { return b.completedAt }
func (b *Booking) PaidAt() *time.Time                { return b.paidAt }
func (b *Booking) Version() int64                    { return b.version }
func (b *Booking) CreatedAt() time.Time              { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time              { return b.updatedAt }
