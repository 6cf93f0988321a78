//go:build unit

package assignment

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/infra/memory"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/usecase/shared"
	"fieldservice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// claimObservingNotifier records how many bookings the engine held claimed while
// each notification was sent.
type claimObservingNotifier struct {
	engine *engineImpl
	held   []int
}

func (n *claimObservingNotifier) Notify(_ context.Context, _ shared.Event) error {
	n.engine.mu.Lock()
	defer n.engine.mu.Unlock()
	n.held = append(n.held, len(n.engine.inFlight))
	return nil
}

func TestReleaseOnce_ClaimReleasedBeforeNotify(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUoW()
	assignedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(assignedAt)

	b := builder.NewBookingBuilder().AssignedTo(uuid.New(), assignedAt).BuildReconstructed()
	uow.SeedBooking(b)

	n := &claimObservingNotifier{}
	e := NewEngine(uow, clk, n, nil, shared.NopMetrics{}, shared.Policy{ResponseWindow: 2 * time.Hour}).(*engineImpl)
	n.engine = e

	clk.Add(2*time.Hour + time.Second)
	res, err := e.TickExpiryScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Released)

	require.Len(t, n.held, 1)
	assert.Zero(t, n.held[0])
	assert.Empty(t, e.inFlight)
}
