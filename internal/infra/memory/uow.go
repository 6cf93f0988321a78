// Package memory is an in-process implementation of every persistence port.
// Writes run against a copy of the state that replaces the original only when
// the transaction function succeeds, so failed transactions leave no trace.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/specialist"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	bookings        map[uuid.UUID]booking.Snapshot
	specialists     map[uuid.UUID]*specialist.Specialist
	productRequests map[uuid.UUID]productrequest.Snapshot
	referrals       map[uuid.UUID]commissionRow
	services        map[string]money.Money
	products        map[string]money.Money
	jobs            []NotificationJob
}

func newState() *state {
	return &state{
		bookings:        map[uuid.UUID]booking.Snapshot{},
		specialists:     map[uuid.UUID]*specialist.Specialist{},
		productRequests: map[uuid.UUID]productrequest.Snapshot{},
		referrals:       map[uuid.UUID]commissionRow{},
		services:        map[string]money.Money{},
		products:        map[string]money.Money{},
	}
}

// clone is shallow per entry: stored values are replaced, never mutated in place.
func (s *state) clone() *state {
	return &state{
		bookings:        maps.Clone(s.bookings),
		specialists:     maps.Clone(s.specialists),
		productRequests: maps.Clone(s.productRequests),
		referrals:       maps.Clone(s.referrals),
		services:        maps.Clone(s.services),
		products:        maps.Clone(s.products),
		jobs:            append([]NotificationJob(nil), s.jobs...),
	}
}

type UoW struct {
	mu    sync.Mutex
	state *state
}

func NewUoW() *UoW {
	return &UoW{state: newState()}
}

var _ shared.UnitOfWork = (*UoW)(nil)

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &memTx{s: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	work := u.state.clone()
	u.mu.Unlock()
	return fn(ctx, &memTx{s: work})
}

// Seeding helpers for tests and local runs.

func (u *UoW) SeedServicePrice(serviceType string, price int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.services[serviceType] = money.New(price)
}

func (u *UoW) SeedProduct(id string, unitPrice int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.products[id] = money.New(unitPrice)
}

func (u *UoW) SeedSpecialist(s *specialist.Specialist) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.specialists[s.ID()] = s
}

func (u *UoW) SeedBooking(b *booking.Booking) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.bookings[b.ID()] = b.Snapshot()
}

func (u *UoW) SeedCommission(c *referral.Commission) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.referrals[c.ID()] = toRow(c)
}

// Booking returns the committed state of a booking.
func (u *UoW) Booking(id uuid.UUID) (*booking.Booking, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	snap, ok := u.state.bookings[id]
	if !ok {
		return nil, false
	}
	return booking.Reconstruct(snap), true
}

func (u *UoW) Jobs() []NotificationJob {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]NotificationJob(nil), u.state.jobs...)
}

type memTx struct {
	s *state
}

func (t *memTx) Bookings() shared.BookingRepository               { return &bookingRepo{s: t.s} }
func (t *memTx) Specialists() shared.SpecialistRepository         { return &specialistRepo{s: t.s} }
func (t *memTx) ProductRequests() shared.ProductRequestRepository { return &productRequestRepo{s: t.s} }
func (t *memTx) Referrals() shared.ReferralRepository             { return &referralRepo{s: t.s} }
func (t *memTx) Catalog() shared.CatalogRepository                { return &catalogRepo{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository     { return &notificationRepo{s: t.s} }
