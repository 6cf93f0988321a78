//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/infra/memory"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/queries"
	"fieldservice/internal/usecase/shared"
	"fieldservice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries_PendingForSpecialist(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUoW()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	q := queries.NewBookingQueries(uow, clock.NewMockClock(now), shared.Policy{ResponseWindow: 2 * time.Hour})

	specialistID := uuid.New()
	recent := builder.NewBookingBuilder().AssignedTo(specialistID, now.Add(-30*time.Minute)).BuildReconstructed()
	overdue := builder.NewBookingBuilder().AssignedTo(specialistID, now.Add(-3*time.Hour)).BuildReconstructed()
	unknown := builder.NewBookingBuilder().AssignedTo(specialistID, now).With(func(b *builder.BookingBuilder) {
		b.AssignedAt = nil
	}).BuildReconstructed()
	someoneElse := builder.NewBookingBuilder().AssignedTo(uuid.New(), now).BuildReconstructed()
	accepted := builder.NewBookingBuilder().AcceptedBy(specialistID, now).BuildReconstructed()
	for _, b := range []*booking.Booking{recent, overdue, unknown, someoneElse, accepted} {
		uow.SeedBooking(b)
	}

	actor := user.Actor{ID: specialistID, Role: user.RoleSpecialist}
	views, err := q.PendingForSpecialist(ctx, actor, specialistID)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, overdue.ID(), views[0].Booking.ID())
	assert.True(t, views[0].Expired)
	assert.Zero(t, views[0].Remaining)

	assert.Equal(t, recent.ID(), views[1].Booking.ID())
	assert.False(t, views[1].Expired)
	assert.Equal(t, 90*time.Minute, views[1].Remaining)

	assert.Equal(t, unknown.ID(), views[2].Booking.ID())
	assert.Nil(t, views[2].Deadline)

	_, err = q.PendingForSpecialist(ctx, user.Actor{ID: uuid.New(), Role: user.RoleSpecialist}, specialistID)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}

func TestBookingQueries_RejectionCount(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUoW()
	q := queries.NewBookingQueries(uow, clock.NewRealClock(), shared.Policy{ResponseWindow: time.Hour})

	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.RejectionHistory = []string{"Ana", "Bea", "Ana"}
	}).BuildReconstructed()
	uow.SeedBooking(b)
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	n, err := q.RejectionCount(ctx, admin, b.ID(), "Ana")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = q.RejectionCount(ctx, admin, b.ID(), "Carla")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = q.RejectionHistoryOf(ctx, admin, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
