package repository

import (
	"context"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/infra"
	"fieldservice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, backend_id, client_name, service_type, services_per_person, booking_date,
	time_of_day, address, neighborhood, contact_phone, attendee_count, has_allergies, allergy_notes,
	referred_by, suggested_specialist_id, status, specialist_id, assigned_at, rejection_history,
	payment_status, price, estimated_price, deductions, additional_costs, confirmed_services,
	completion_notes, completed_at, paid_at, version, created_at, updated_at`

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	s := b.Snapshot()
	d := s.Details
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
		        $20, $21, $22, $23, $24, $25, $26, $27, $28, 1, $29, $30)`,
		s.ID, pgtype.Text{String: deref(s.BackendID), Valid: s.BackendID != nil}, d.ClientName, d.ServiceType,
		nonNil(d.ServicesPerPerson), pgconv.DateToPgtype(d.Date), d.TimeOfDay, d.Address, d.Neighborhood,
		d.ContactPhone, d.AttendeeCount, d.HasAllergies, d.AllergyNotes, d.ReferredBy,
		pgconv.UUIDPtrToPgtype(s.SuggestedSpecialistID), string(s.Status), pgconv.UUIDPtrToPgtype(s.SpecialistID),
		pgconv.TimePtrToPgtype(s.AssignedAt), nonNil(s.RejectionHistory), string(s.PaymentStatus),
		amountPtr(s.Price), amountPtr(s.EstimatedPrice), s.Deductions.Amount(), s.AdditionalCosts.Amount(),
		nonNil(s.ConfirmedServices), s.CompletionNotes, pgconv.TimePtrToPgtype(s.CompletedAt),
		pgconv.TimePtrToPgtype(s.PaidAt), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// Update is a compare-and-swap on version and the status observed at load time.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	s := b.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET
			status = $4, specialist_id = $5, assigned_at = $6, rejection_history = $7,
			payment_status = $8, price = $9, estimated_price = $10, deductions = $11,
			additional_costs = $12, confirmed_services = $13, completion_notes = $14,
			completed_at = $15, paid_at = $16, updated_at = $17, version = version + 1
		WHERE id = $1 AND version = $2 AND status = $3`,
		s.ID, s.Version, string(b.ObservedStatus()),
		string(s.Status), pgconv.UUIDPtrToPgtype(s.SpecialistID), pgconv.TimePtrToPgtype(s.AssignedAt),
		nonNil(s.RejectionHistory), string(s.PaymentStatus), amountPtr(s.Price), amountPtr(s.EstimatedPrice),
		s.Deductions.Amount(), s.AdditionalCosts.Amount(), nonNil(s.ConfirmedServices), s.CompletionNotes,
		pgconv.TimePtrToPgtype(s.CompletedAt), pgconv.TimePtrToPgtype(s.PaidAt), s.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, s.ID).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check booking", err)
		}
		if !exists {
			return infra.NotFound("booking not found")
		}
		return infra.Conflict("booking changed concurrently")
	}
	return nil
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status booking.Status) ([]*booking.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE status = $1
		ORDER BY assigned_at NULLS FIRST, id`, string(status))
}

func (r *BookingRepository) ListBySpecialist(ctx context.Context, specialistID uuid.UUID, statuses ...booking.Status) ([]*booking.Booking, error) {
	if len(statuses) == 0 {
		return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE specialist_id = $1
			ORDER BY booking_date, created_at, id`, specialistID)
	}
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE specialist_id = $1 AND status = ANY($2)
		ORDER BY booking_date, created_at, id`, specialistID, raw)
}

func (r *BookingRepository) ListRejectedBy(ctx context.Context, name string) ([]*booking.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE rejection_history @> ARRAY[$1]::text[]
		ORDER BY booking_date, created_at, id`, name)
}

func (r *BookingRepository) CountCompletedBySpecialist(ctx context.Context, specialistID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM bookings WHERE specialist_id = $1 AND status = 'completed'`, specialistID,
	).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count completed bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	out := []*booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		s                       booking.Snapshot
		backendID               pgtype.Text
		date                    pgtype.Date
		suggested, specialistID pgtype.UUID
		assignedAt              pgtype.Timestamptz
		completedAt, paidAt     pgtype.Timestamptz
		status, payment         string
		price, estimated        *int64
		deductions, additional  int64
	)
	err := row.Scan(
		&s.ID, &backendID, &s.Details.ClientName, &s.Details.ServiceType, &s.Details.ServicesPerPerson, &date,
		&s.Details.TimeOfDay, &s.Details.Address, &s.Details.Neighborhood, &s.Details.ContactPhone,
		&s.Details.AttendeeCount, &s.Details.HasAllergies, &s.Details.AllergyNotes, &s.Details.ReferredBy,
		&suggested, &status, &specialistID, &assignedAt, &s.RejectionHistory, &payment,
		&price, &estimated, &deductions, &additional, &s.ConfirmedServices, &s.CompletionNotes,
		&completedAt, &paidAt, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// The schema only admits canonical tokens; anything else is a corrupt row.
	if s.Status, err = booking.ParseStatus(status); err != nil {
		return nil, err
	}
	if s.PaymentStatus, err = booking.ParsePaymentStatus(payment); err != nil {
		return nil, err
	}
	s.BackendID = pgconv.StringPtrFromPgtype(backendID)
	s.Details.Date = pgconv.DateFromPgtype(date)
	s.SuggestedSpecialistID = pgconv.UUIDPtrFromPgtype(suggested)
	s.SpecialistID = pgconv.UUIDPtrFromPgtype(specialistID)
	s.AssignedAt = pgconv.TimePtrFromPgtype(assignedAt)
	s.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	s.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	s.Price = moneyPtr(price)
	s.EstimatedPrice = moneyPtr(estimated)
	s.Deductions = money.New(deductions)
	s.AdditionalCosts = money.New(additional)
	return booking.Reconstruct(s), nil
}

func amountPtr(m *money.Money) *int64 {
	if m == nil {
		return nil
	}
	v := m.Amount()
	return &v
}

func moneyPtr(v *int64) *money.Money {
	if v == nil {
		return nil
	}
	m := money.New(*v)
	return &m
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
