package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/specialist"
	"fieldservice/internal/infra"

	"github.com/google/uuid"
)

type bookingRepo struct{ s *state }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	snap := b.Snapshot()
	snap.Version = 1
	r.s.bookings[b.ID()] = snap
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	snap, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return booking.Reconstruct(snap), nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	current, ok := r.s.bookings[b.ID()]
	if !ok {
		return infra.NotFound("booking not found")
	}
	if current.Version != b.Version() || current.Status != b.ObservedStatus() {
		return infra.Conflict("booking changed concurrently")
	}
	snap := b.Snapshot()
	snap.Version = current.Version + 1
	r.s.bookings[b.ID()] = snap
	return nil
}

func (r *bookingRepo) list(match func(booking.Snapshot) bool) []*booking.Booking {
	out := []*booking.Booking{}
	for _, snap := range r.s.bookings {
		if match(snap) {
			out = append(out, booking.Reconstruct(snap))
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int {
		if c := a.Details().Date.Compare(b.Details().Date); c != 0 {
			return c
		}
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out
}

func (r *bookingRepo) ListByStatus(_ context.Context, status booking.Status) ([]*booking.Booking, error) {
	return r.list(func(s booking.Snapshot) bool { return s.Status == status }), nil
}

func (r *bookingRepo) ListBySpecialist(_ context.Context, specialistID uuid.UUID, statuses ...booking.Status) ([]*booking.Booking, error) {
	return r.list(func(s booking.Snapshot) bool {
		if s.SpecialistID == nil || *s.SpecialistID != specialistID {
			return false
		}
		return len(statuses) == 0 || slices.Contains(statuses, s.Status)
	}), nil
}

func (r *bookingRepo) ListRejectedBy(_ context.Context, name string) ([]*booking.Booking, error) {
	return r.list(func(s booking.Snapshot) bool { return slices.Contains(s.RejectionHistory, name) }), nil
}

func (r *bookingRepo) CountCompletedBySpecialist(_ context.Context, specialistID uuid.UUID) (int, error) {
	n := 0
	for _, s := range r.s.bookings {
		if s.Status == booking.StatusCompleted && s.SpecialistID != nil && *s.SpecialistID == specialistID {
			n++
		}
	}
	return n, nil
}

type specialistRepo struct{ s *state }

func (r *specialistRepo) Create(_ context.Context, sp *specialist.Specialist) error {
	for _, existing := range r.s.specialists {
		if sp.ReferralCode() != nil && existing.ReferralCode() != nil && *existing.ReferralCode() == *sp.ReferralCode() {
			return infra.WrapRepoErr("referral code already used", nil, infra.KindDuplicateKey)
		}
	}
	r.s.specialists[sp.ID()] = sp
	return nil
}

func (r *specialistRepo) FindByID(_ context.Context, id uuid.UUID) (*specialist.Specialist, error) {
	sp, ok := r.s.specialists[id]
	if !ok {
		return nil, infra.NotFound("specialist not found")
	}
	return sp, nil
}

// LockForUpdate only checks existence; the UoW mutex already serializes writers.
func (r *specialistRepo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	_, err := r.FindByID(ctx, id)
	return err
}

type productRequestRepo struct{ s *state }

func (r *productRequestRepo) Create(_ context.Context, pr *productrequest.ProductRequest) error {
	snap := pr.Snapshot()
	snap.Version = 1
	r.s.productRequests[pr.ID()] = snap
	return nil
}

func (r *productRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*productrequest.ProductRequest, error) {
	snap, ok := r.s.productRequests[id]
	if !ok {
		return nil, infra.NotFound("product request not found")
	}
	return productrequest.Reconstruct(snap), nil
}

func (r *productRequestRepo) Update(_ context.Context, pr *productrequest.ProductRequest) error {
	current, ok := r.s.productRequests[pr.ID()]
	if !ok {
		return infra.NotFound("product request not found")
	}
	if current.Version != pr.Version() {
		return infra.Conflict("product request changed concurrently")
	}
	snap := pr.Snapshot()
	snap.Version = current.Version + 1
	r.s.productRequests[pr.ID()] = snap
	return nil
}

func (r *productRequestRepo) HasFullKit(_ context.Context, specialistID uuid.UUID) (bool, error) {
	for _, s := range r.s.productRequests {
		if s.SpecialistID == specialistID && s.Contents.Kind() == productrequest.KindFullKit {
			return true, nil
		}
	}
	return false, nil
}

func (r *productRequestRepo) list(match func(productrequest.Snapshot) bool) []*productrequest.ProductRequest {
	out := []*productrequest.ProductRequest{}
	for _, s := range r.s.productRequests {
		if match(s) {
			out = append(out, productrequest.Reconstruct(s))
		}
	}
	slices.SortFunc(out, func(a, b *productrequest.ProductRequest) int {
		return a.RequestDate().Compare(b.RequestDate())
	})
	return out
}

func (r *productRequestRepo) ListBySpecialist(_ context.Context, specialistID uuid.UUID) ([]*productrequest.ProductRequest, error) {
	return r.list(func(s productrequest.Snapshot) bool { return s.SpecialistID == specialistID }), nil
}

func (r *productRequestRepo) ListByStatus(_ context.Context, status productrequest.Status) ([]*productrequest.ProductRequest, error) {
	return r.list(func(s productrequest.Snapshot) bool { return s.Status == status }), nil
}

type commissionRow struct {
	ID, ReferrerID, ReferredID, BookingID uuid.UUID
	ServiceAmount, CommissionAmount       money.Money
	Status                                referral.Status
	CreatedAt                             time.Time
	PaidAt                                *time.Time
}

func toRow(c *referral.Commission) commissionRow {
	return commissionRow{
		ID:               c.ID(),
		ReferrerID:       c.ReferrerID(),
		ReferredID:       c.ReferredID(),
		BookingID:        c.BookingID(),
		ServiceAmount:    c.ServiceAmount(),
		CommissionAmount: c.CommissionAmount(),
		Status:           c.Status(),
		CreatedAt:        c.CreatedAt(),
		PaidAt:           c.PaidAt(),
	}
}

func (row commissionRow) domain() *referral.Commission {
	return referral.ReconstructCommission(row.ID, row.ReferrerID, row.ReferredID, row.BookingID,
		row.ServiceAmount, row.CommissionAmount, row.Status, row.CreatedAt, row.PaidAt)
}

type referralRepo struct{ s *state }

func (r *referralRepo) Create(_ context.Context, c *referral.Commission) (bool, error) {
	for _, row := range r.s.referrals {
		if row.ReferredID == c.ReferredID() {
			return false, nil
		}
	}
	r.s.referrals[c.ID()] = toRow(c)
	return true, nil
}

func (r *referralRepo) FindByID(_ context.Context, id uuid.UUID) (*referral.Commission, error) {
	row, ok := r.s.referrals[id]
	if !ok {
		return nil, infra.NotFound("referral commission not found")
	}
	return row.domain(), nil
}

func (r *referralRepo) MarkPaid(_ context.Context, c *referral.Commission) error {
	row, ok := r.s.referrals[c.ID()]
	if !ok {
		return infra.NotFound("referral commission not found")
	}
	if row.Status != referral.StatusPending {
		return infra.Conflict("referral commission is not pending")
	}
	r.s.referrals[c.ID()] = toRow(c)
	return nil
}

func (r *referralRepo) ListByReferrer(_ context.Context, referrerID uuid.UUID) ([]*referral.Commission, error) {
	out := []*referral.Commission{}
	for _, row := range r.s.referrals {
		if row.ReferrerID == referrerID {
			out = append(out, row.domain())
		}
	}
	slices.SortFunc(out, func(a, b *referral.Commission) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	return out, nil
}

type catalogRepo struct{ s *state }

func (r *catalogRepo) ServicePrices(context.Context) (earnings.Catalog, error) {
	out := make(earnings.Catalog, len(r.s.services))
	for k, v := range r.s.services {
		out[k] = v
	}
	return out, nil
}

func (r *catalogRepo) ProductPrices(_ context.Context, ids []string) (map[string]money.Money, error) {
	out := make(map[string]money.Money, len(ids))
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type notificationRepo struct{ s *state }

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.jobs = append(r.s.jobs, NotificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}
