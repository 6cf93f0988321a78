package shared

import (
	"context"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/specialist"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to the current transaction.
type Tx interface {
	Bookings() BookingRepository
	Specialists() SpecialistRepository
	ProductRequests() ProductRequestRepository
	Referrals() ReferralRepository
	Catalog() CatalogRepository
	Notifications() NotificationRepository
}

// BookingRepository updates are compare-and-swap on the version and the status
// the booking had when it was loaded. A lost race surfaces as ErrStaleAssignment.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	ListByStatus(ctx context.Context, status booking.Status) ([]*booking.Booking, error)
	ListBySpecialist(ctx context.Context, specialistID uuid.UUID, statuses ...booking.Status) ([]*booking.Booking, error)
	ListRejectedBy(ctx context.Context, specialistName string) ([]*booking.Booking, error)
	CountCompletedBySpecialist(ctx context.Context, specialistID uuid.UUID) (int, error)
}

type SpecialistRepository interface {
	Create(ctx context.Context, s *specialist.Specialist) error
	FindByID(ctx context.Context, id uuid.UUID) (*specialist.Specialist, error)
	// LockForUpdate serializes writers that depend on the specialist's history.
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}

type ProductRequestRepository interface {
	Create(ctx context.Context, r *productrequest.ProductRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*productrequest.ProductRequest, error)
	Update(ctx context.Context, r *productrequest.ProductRequest) error
	HasFullKit(ctx context.Context, specialistID uuid.UUID) (bool, error)
	ListBySpecialist(ctx context.Context, specialistID uuid.UUID) ([]*productrequest.ProductRequest, error)
	ListByStatus(ctx context.Context, status productrequest.Status) ([]*productrequest.ProductRequest, error)
}

type ReferralRepository interface {
	// Create returns false when the referred specialist already has a commission.
	Create(ctx context.Context, c *referral.Commission) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*referral.Commission, error)
	// MarkPaid only transitions pending rows. Zero rows is a conflict.
	MarkPaid(ctx context.Context, c *referral.Commission) error
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*referral.Commission, error)
}

type CatalogRepository interface {
	ServicePrices(ctx context.Context) (earnings.Catalog, error)
	ProductPrices(ctx context.Context, ids []string) (map[string]money.Money, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
