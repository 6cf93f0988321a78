package referral

import (
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyPaid    = errs.Mark(errs.New("referral commission is already paid"), errs.ErrInvalidTransition)
	ErrSelfReferral   = errs.Mark(errs.New("referrer and referred specialist must differ"), errs.ErrValidation)
	ErrNonPositiveFee = errs.Mark(errs.New("service amount must be positive"), errs.ErrValidation)
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string { return string(s) }

// Commission is owed to a referrer once, on the referred specialist's first
// completed booking.
type Commission struct {
	id               uuid.UUID
	referrerID       uuid.UUID
	referredID       uuid.UUID
	bookingID        uuid.UUID
	serviceAmount    money.Money
	commissionAmount money.Money
	status           Status
	createdAt        time.Time
	paidAt           *time.Time
}

func NewCommission(
	referrerID, referredID, bookingID uuid.UUID,
	serviceAmount money.Money,
	pct money.Percentage,
	now time.Time,
) (*Commission, error) {
	if referrerID == referredID {
		return nil, ErrSelfReferral
	}
	if !serviceAmount.IsPositive() {
		return nil, ErrNonPositiveFee
	}
	return &Commission{
		id:               uuid.New(),
		referrerID:       referrerID,
		referredID:       referredID,
		bookingID:        bookingID,
		serviceAmount:    serviceAmount,
		commissionAmount: serviceAmount.Of(pct),
		status:           StatusPending,
		createdAt:        now,
	}, nil
}

func ReconstructCommission(
	id, referrerID, referredID, bookingID uuid.UUID,
	serviceAmount, commissionAmount money.Money,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
) *Commission {
	return &Commission{
		id:               id,
		referrerID:       referrerID,
		referredID:       referredID,
		bookingID:        bookingID,
		serviceAmount:    serviceAmount,
		commissionAmount: commissionAmount,
		status:           status,
		createdAt:        createdAt,
		paidAt:           paidAt,
	}
}

func (c *Commission) MarkPaid(now time.Time) error {
	if c.status == StatusPaid {
		return ErrAlreadyPaid
	}
	at := now
	c.status = StatusPaid
	c.paidAt = &at
	return nil
}

func (c *Commission) ID() uuid.UUID                 { return c.id }
func (c *Commission) ReferrerID() uuid.UUID         { return c.referrerID }
func (c *Commission) ReferredID() uuid.UUID         { return c.referredID }
func (c *Commission) BookingID() uuid.UUID          { return c.bookingID }
func (c *Commission) ServiceAmount() money.Money    { return c.serviceAmount }
func (c *Commission) CommissionAmount() money.Money { return c.commissionAmount }
func (c *Commission) Status() Status                { return c.status }
func (c *Commission) CreatedAt() time.Time          { return c.createdAt }
func (c *Commission) PaidAt() *time.Time            { return c.paidAt }

type Summary struct {
	ReferrerID   uuid.UUID
	PendingTotal money.Money
	PaidTotal    money.Money
	Commissions  []*Commission
}

func Summarize(referrerID uuid.UUID, cs []*Commission) Summary {
	s := Summary{ReferrerID: referrerID, Commissions: cs}
	for _, c := range cs {
		if c.status == StatusPaid {
			s.PaidTotal = s.PaidTotal.Add(c.commissionAmount)
		} else {
			s.PendingTotal = s.PendingTotal.Add(c.commissionAmount)
		}
	}
	return s
}
