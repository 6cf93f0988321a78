//go:build unit || e2e

package builder

import (
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/specialist"

	"github.com/google/uuid"
)

type SpecialistBuilder struct {
	ID             uuid.UUID
	Name           string
	CommissionRate *int64
	ReferralCode   *string
	ReferredByID   *uuid.UUID
	CreatedAt      time.Time
}

func NewSpecialistBuilder() *SpecialistBuilder {
	return &SpecialistBuilder{
		ID:        uuid.New(),
		Name:      "Carla Ruiz",
		CreatedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
	}
}

func (s *SpecialistBuilder) With(mutate func(*SpecialistBuilder)) *SpecialistBuilder {
	mutate(s)
	return s
}

func (s *SpecialistBuilder) WithRate(pct int64) *SpecialistBuilder {
	s.CommissionRate = &pct
	return s
}

func (s *SpecialistBuilder) ReferredBy(id uuid.UUID) *SpecialistBuilder {
	s.ReferredByID = &id
	return s
}

// Build methods
func (s *SpecialistBuilder) BuildDomain() *specialist.Specialist {
	var rate *money.Percentage
	if s.CommissionRate != nil {
		p := money.MustPercentage(*s.CommissionRate)
		rate = &p
	}
	return specialist.ReconstructSpecialist(s.ID, s.Name, rate, s.ReferralCode, s.ReferredByID, s.CreatedAt)
}
