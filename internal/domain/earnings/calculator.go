// Package earnings derives what each completed booking owes the specialist
// and what the studio keeps. Nothing here is stored; it is recomputed from
// bookings on every read.
package earnings

import (
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotCompleted    = errs.Mark(errs.New("booking is not completed"), errs.ErrInvalidTransition)
	ErrUnpricedService = errs.Mark(errs.New("service type has no catalog price"), errs.ErrValidation)
)

// PriceList resolves catalog prices by service type.
type PriceList interface {
	PriceOf(serviceType string) (money.Money, bool)
}

type Catalog map[string]money.Money

func (c Catalog) PriceOf(serviceType string) (money.Money, bool) {
	p, ok := c[serviceType]
	return p, ok
}

// CatalogTotal sums one catalog price per service, so several attendees
// with different service levels add up rather than average out.
func CatalogTotal(prices PriceList, services []string) (money.Money, error) {
	if len(services) == 0 {
		return money.Zero(), errs.Wrap(ErrUnpricedService, "no services")
	}
	total := money.Zero()
	for _, s := range services {
		p, ok := prices.PriceOf(s)
		if !ok {
			return money.Zero(), errs.Wrapf(ErrUnpricedService, "service %q", s)
		}
		total = total.Add(p)
	}
	return total, nil
}

// GrossPrice prefers the confirmed price, then the estimate taken at
// assignment, then the catalog.
func GrossPrice(b *booking.Booking, prices PriceList) (money.Money, error) {
	if p := b.Price(); p != nil {
		return *p, nil
	}
	if p := b.EstimatedPrice(); p != nil {
		return *p, nil
	}
	return CatalogTotal(prices, b.Details().ServiceTypes())
}

type Entry struct {
	BookingID       uuid.UUID
	ClientName      string
	Date            time.Time
	CompletedAt     *time.Time
	Gross           money.Money
	Rate            money.Percentage
	SpecialistShare money.Money
	StudioShare     money.Money
	Deductions      money.Money
	NetPayable      money.Money
	PaymentStatus   booking.PaymentStatus
	// NeedsReview is set when deductions exceed the specialist share.
	// The negative amount is kept as is.
	NeedsReview bool
}

func ComputeEntry(b *booking.Booking, rate money.Percentage, prices PriceList) (Entry, error) {
	if !b.IsCompleted() {
		return Entry{}, errs.Wrapf(ErrNotCompleted, "booking %s", b.ID())
	}
	gross, err := GrossPrice(b, prices)
	if err != nil {
		return Entry{}, errs.Wrapf(err, "booking %s", b.ID())
	}
	share := gross.Of(rate)
	net := share.Sub(b.Deductions())
	return Entry{
		BookingID:       b.ID(),
		ClientName:      b.Details().ClientName,
		Date:            b.Details().Date,
		CompletedAt:     b.CompletedAt(),
		Gross:           gross,
		Rate:            rate,
		SpecialistShare: share,
		StudioShare:     gross.Sub(share),
		Deductions:      b.Deductions(),
		NetPayable:      net,
		PaymentStatus:   b.PaymentStatus(),
		NeedsReview:     net.IsNegative(),
	}, nil
}

type Summary struct {
	SpecialistID     uuid.UUID
	Rate             money.Percentage
	PendingTotal     money.Money
	PaidTotal        money.Money
	GrossTotal       money.Money
	StudioShareTotal money.Money
	DeductionsTotal  money.Money
	CompletedCount   int
	NeedsReviewCount int
	Entries          []Entry
}

// Summarize partitions completed bookings by payment status. Bookings in any
// other status are skipped.
func Summarize(specialistID uuid.UUID, rate money.Percentage, bookings []*booking.Booking, prices PriceList) (Summary, error) {
	s := Summary{SpecialistID: specialistID, Rate: rate, Entries: []Entry{}}
	var failures []error
	for _, b := range bookings {
		if !b.IsCompleted() {
			continue
		}
		e, err := ComputeEntry(b, rate, prices)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		s.Entries = append(s.Entries, e)
		s.CompletedCount++
		s.GrossTotal = s.GrossTotal.Add(e.Gross)
		s.StudioShareTotal = s.StudioShareTotal.Add(e.StudioShare)
		s.DeductionsTotal = s.DeductionsTotal.Add(e.Deductions)
		if e.NeedsReview {
			s.NeedsReviewCount++
		}
		if e.PaymentStatus == booking.PaymentPaid {
			s.PaidTotal = s.PaidTotal.Add(e.NetPayable)
		} else {
			s.PendingTotal = s.PendingTotal.Add(e.NetPayable)
		}
	}
	if len(failures) > 0 {
		return Summary{}, errs.Combine(failures...)
	}
	return s, nil
}
