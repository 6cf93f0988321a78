package specialist

import (
	"strings"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired        = errs.Mark(errs.New("specialist name is required"), errs.ErrValidation)
	ErrInvalidReferralCode = errs.Mark(errs.New("referral code must be 4-32 characters"), errs.ErrValidation)
)

// Specialist is read-mostly from the booking core. Earnings are derived from
// completed bookings and never stored here.
type Specialist struct {
	id             uuid.UUID
	name           string
	commissionRate *money.Percentage
	referralCode   *string
	referredByID   *uuid.UUID
	createdAt      time.Time
}

func NewSpecialist(name string, rate *money.Percentage, referralCode *string, referredBy *uuid.UUID, now time.Time) (*Specialist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	code, err := normalizeCode(referralCode)
	if err != nil {
		return nil, err
	}
	return &Specialist{
		id:             uuid.New(),
		name:           name,
		commissionRate: rate,
		referralCode:   code,
		referredByID:   referredBy,
		createdAt:      now,
	}, nil
}

func ReconstructSpecialist(
	id uuid.UUID,
	name string,
	rate *money.Percentage,
	referralCode *string,
	referredByID *uuid.UUID,
	createdAt time.Time,
) *Specialist {
	return &Specialist{
		id:             id,
		name:           name,
		commissionRate: rate,
		referralCode:   referralCode,
		referredByID:   referredByID,
		createdAt:      createdAt,
	}
}

func normalizeCode(code *string) (*string, error) {
	if code == nil {
		return nil, nil
	}
	c := strings.ToUpper(strings.TrimSpace(*code))
	if c == "" {
		return nil, nil
	}
	if len(c) < 4 || len(c) > 32 {
		return nil, ErrInvalidReferralCode
	}
	return &c, nil
}

// EffectiveRate falls back to def when the record has no rate of its own.
func (s *Specialist) EffectiveRate(def money.Percentage) money.Percentage {
	if s.commissionRate == nil {
		return def
	}
	return *s.commissionRate
}

func (s *Specialist) WasReferred() bool { return s.referredByID != nil }

func (s *Specialist) ID() uuid.UUID                     { return s.id }
func (s *Specialist) Name() string                      { return s.name }
func (s *Specialist) CommissionRate() *money.Percentage { return s.commissionRate }
func (s *Specialist) ReferralCode() *string             { return s.referralCode }
func (s *Specialist) ReferredByID() *uuid.UUID          { return s.referredByID }
func (s *Specialist) CreatedAt() time.Time              { return s.createdAt }
