//go:build unit

package earnings_test

import (
	"testing"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"
	"fieldservice/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = earnings.Catalog{
	"standard": money.New(45000),
	"express":  money.New(30000),
	"deluxe":   money.New(60000),
}

func TestComputeEntry(t *testing.T) {
	specialistID := uuid.New()

	t.Run("sixty percent with deductions", func(t *testing.T) {
		b := builder.NewBookingBuilder().CompletedBy(specialistID, 100000, 10000).BuildReconstructed()
		e, err := earnings.ComputeEntry(b, money.MustPercentage(60), catalog)
		require.NoError(t, err)

		assert.Equal(t, int64(100000), e.Gross.Amount())
		assert.Equal(t, int64(60000), e.SpecialistShare.Amount())
		assert.Equal(t, int64(40000), e.StudioShare.Amount())
		assert.Equal(t, int64(50000), e.NetPayable.Amount())
		assert.False(t, e.NeedsReview)
	})

	t.Run("negative net payable is kept and flagged", func(t *testing.T) {
		b := builder.NewBookingBuilder().CompletedBy(specialistID, 20000, 15000).BuildReconstructed()
		e, err := earnings.ComputeEntry(b, money.MustPercentage(50), catalog)
		require.NoError(t, err)

		assert.Equal(t, int64(-5000), e.NetPayable.Amount())
		assert.Equal(t, e.SpecialistShare.Sub(e.Deductions), e.NetPayable)
		assert.True(t, e.NeedsReview)
	})

	t.Run("gross falls back to estimate then catalog sum", func(t *testing.T) {
		est := money.New(41000)
		withEstimate := builder.NewBookingBuilder().CompletedBy(specialistID, 0, 0).With(func(bb *builder.BookingBuilder) {
			bb.Price = nil
			bb.EstimatedPrice = &est
		}).BuildReconstructed()
		gross, err := earnings.GrossPrice(withEstimate, catalog)
		require.NoError(t, err)
		assert.Equal(t, int64(41000), gross.Amount())

		multi := builder.NewBookingBuilder().CompletedBy(specialistID, 0, 0).With(func(bb *builder.BookingBuilder) {
			bb.Price = nil
			bb.ServicesPerPerson = []string{"express", "deluxe", "express"}
		}).BuildReconstructed()
		gross, err = earnings.GrossPrice(multi, catalog)
		require.NoError(t, err)
		assert.Equal(t, int64(120000), gross.Amount())
	})

	t.Run("unknown service in catalog", func(t *testing.T) {
		b := builder.NewBookingBuilder().CompletedBy(specialistID, 0, 0).With(func(bb *builder.BookingBuilder) {
			bb.Price = nil
			bb.ServiceType = "platinum"
		}).BuildReconstructed()
		_, err := earnings.ComputeEntry(b, money.MustPercentage(50), catalog)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("not completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().AcceptedBy(specialistID, builder.NewBookingBuilder().Now).BuildReconstructed()
		_, err := earnings.ComputeEntry(b, money.MustPercentage(50), catalog)
		assert.ErrorIs(t, err, earnings.ErrNotCompleted)
	})
}

func TestSummarize(t *testing.T) {
	specialistID := uuid.New()
	paid := builder.NewBookingBuilder().CompletedBy(specialistID, 100000, 10000).With(func(bb *builder.BookingBuilder) {
		bb.PaymentStatus = booking.PaymentPaid
	}).BuildReconstructed()
	pending := builder.NewBookingBuilder().CompletedBy(specialistID, 50000, 0).BuildReconstructed()
	overdrawn := builder.NewBookingBuilder().CompletedBy(specialistID, 10000, 8000).BuildReconstructed()
	open := builder.NewBookingBuilder().AssignedTo(specialistID, pending.CreatedAt()).BuildReconstructed()

	s, err := earnings.Summarize(specialistID, money.MustPercentage(50), []*booking.Booking{paid, pending, overdrawn, open}, catalog)
	require.NoError(t, err)

	type totals struct {
		Pending, Paid, Gross, Studio, Deductions int64
		Completed, NeedsReview                   int
	}
	got := totals{
		Pending:     s.PendingTotal.Amount(),
		Paid:        s.PaidTotal.Amount(),
		Gross:       s.GrossTotal.Amount(),
		Studio:      s.StudioShareTotal.Amount(),
		Deductions:  s.DeductionsTotal.Amount(),
		Completed:   s.CompletedCount,
		NeedsReview: s.NeedsReviewCount,
	}
	want := totals{
		Pending:     25000 + (5000 - 8000),
		Paid:        40000,
		Gross:       160000,
		Studio:      80000,
		Deductions:  18000,
		Completed:   3,
		NeedsReview: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, s.Entries, 3)
}
