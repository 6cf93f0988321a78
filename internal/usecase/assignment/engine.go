// Package assignment owns the response window: it is the only writer of
// timeout releases.
package assignment

//go:generate mockgen -source=engine.go -destination=../../../tests/mock/assignment/engine.go -package=assignmentmock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReleasedBy attributes timeout releases in notifications and logs.
const ReleasedBy = "system/timeout"

type ScanResult struct {
	Scanned          int
	Released         int
	Skipped          int
	FallbackRecorded int
	Failed           int
}

type Engine interface {
	// TickExpiryScan releases every assigned booking whose window has elapsed.
	// It is idempotent and safe to call from several goroutines.
	TickExpiryScan(ctx context.Context) (ScanResult, error)
}

type engineImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.Notifier
	cache    shared.AssignmentTimeCache
	metrics  shared.Metrics
	window   time.Duration

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewEngine(
	uow shared.UnitOfWork,
	clk clock.Clock,
	notifier shared.Notifier,
	cache shared.AssignmentTimeCache,
	metrics shared.Metrics,
	policy shared.Policy,
) Engine {
	return &engineImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
		cache:    cache,
		metrics:  metrics,
		window:   policy.ResponseWindow,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

type outcome int

const (
	outcomeReleased outcome = iota
	outcomeSkipped
)

func (e *engineImpl) TickExpiryScan(ctx context.Context) (ScanResult, error) {
	started := e.clock.Now()
	defer func() { e.metrics.ScanDuration(e.clock.Now().Sub(started)) }()

	var assigned []*booking.Booking
	err := e.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		assigned, derr = tx.Bookings().ListByStatus(ctx, booking.StatusAssigned)
		return derr
	})
	if err != nil {
		e.metrics.ScanFailed()
		return ScanResult{}, errs.Wrap(err, "list assigned bookings")
	}

	res := ScanResult{Scanned: len(assigned)}
	var failures []error
	for _, b := range assigned {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}

		episode, fallback, recorded, err := e.episodeStart(ctx, b, started)
		if err != nil {
			failures = append(failures, e.fail(ctx, b.ID(), err))
			res.Failed++
			continue
		}
		if recorded {
			res.FallbackRecorded++
			continue
		}
		if !started.After(episode.Add(e.window)) {
			continue
		}

		out, err := e.releaseOnce(ctx, b.ID(), b.AssignedAt(), fallback)
		switch {
		case err != nil:
			failures = append(failures, e.fail(ctx, b.ID(), err))
			res.Failed++
		case out == outcomeSkipped:
			res.Skipped++
		default:
			res.Released++
		}
	}

	if len(failures) > 0 {
		return res, errs.Combine(failures...)
	}
	return res, nil
}

// episodeStart returns when the current assignment episode began. Bookings
// without a recorded time get one persisted on first sight and are not
// considered expired on that tick.
func (e *engineImpl) episodeStart(ctx context.Context, b *booking.Booking, now time.Time) (start time.Time, fallback, recorded bool, err error) {
	if at := b.AssignedAt(); at != nil {
		return *at, false, false, nil
	}
	stored, created, err := e.cache.PutIfAbsent(ctx, b.ID(), now)
	if err != nil {
		return time.Time{}, true, false, errs.Wrap(err, "persist fallback assignment time")
	}
	if created {
		slog.InfoContext(ctx, "recorded fallback assignment time",
			"booking_id", b.ID().String(), "assigned_at", stored)
		return stored, true, true, nil
	}
	return stored, true, false, nil
}

func (e *engineImpl) releaseOnce(ctx context.Context, bookingID uuid.UUID, episode *time.Time, fallback bool) (outcome, error) {
	if !e.claim(bookingID) {
		slog.DebugContext(ctx, "release already in flight", "booking_id", bookingID.String())
		return outcomeSkipped, nil
	}

	var released *booking.Booking
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if !sameEpisode(b, episode) {
			return nil
		}
		if derr = b.Release(e.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		released = b
		return nil
	})
	// The claim covers the transaction only; notify runs unclaimed.
	e.unclaim(bookingID)
	if errs.Is(err, errs.ErrStaleAssignment) {
		// Someone accepted, rejected or reassigned between the scan and the write.
		slog.DebugContext(ctx, "booking changed before release", "booking_id", bookingID.String())
		return outcomeSkipped, nil
	}
	if err != nil {
		return outcomeSkipped, err
	}
	if released == nil {
		return outcomeSkipped, nil
	}

	e.metrics.AutoReleased()
	e.metrics.BookingTransition("release")
	if fallback {
		if derr := e.cache.Delete(ctx, bookingID); derr != nil {
			slog.WarnContext(ctx, "failed to clear fallback assignment time",
				"booking_id", bookingID.String(), "error", derr.Error())
		}
	}
	slog.InfoContext(ctx, "booking released after response window",
		"booking_id", bookingID.String(), "released_by", ReleasedBy)

	shared.Dispatch(ctx, e.notifier, shared.Event{
		Kind:      shared.EventRejected,
		BookingID: &bookingID,
		Message:   "Booking for " + released.Details().ClientName + " was not answered in time and needs reassignment",
		Payload: map[string]any{
			"reason":      "timeout",
			"rejected_by": ReleasedBy,
		},
	})
	return outcomeReleased, nil
}

// sameEpisode guards against a reassignment that happened after the scan read.
func sameEpisode(b *booking.Booking, episode *time.Time) bool {
	if b.Status() != booking.StatusAssigned {
		return false
	}
	at := b.AssignedAt()
	if episode == nil || at == nil {
		return episode == nil && at == nil
	}
	return at.Equal(*episode)
}

func (e *engineImpl) claim(id uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.inFlight[id]; busy {
		return false
	}
	e.inFlight[id] = struct{}{}
	return true
}

func (e *engineImpl) unclaim(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, id)
}

func (e *engineImpl) fail(ctx context.Context, id uuid.UUID, err error) error {
	e.metrics.ScanFailed()
	slog.WarnContext(ctx, "expiry scan failed for booking; will retry next tick",
		"booking_id", id.String(), "error", err.Error())
	return errs.Wrapf(err, "booking %s", id)
}
