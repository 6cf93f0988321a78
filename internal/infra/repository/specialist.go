package repository

import (
	"context"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/specialist"
	"fieldservice/internal/infra"
	"fieldservice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpecialistRepository struct {
	db DBTX
}

func NewSpecialistRepository(db DBTX) *SpecialistRepository {
	return &SpecialistRepository{db: db}
}

func (r *SpecialistRepository) Create(ctx context.Context, s *specialist.Specialist) error {
	var rate pgtype.Text
	if p := s.CommissionRate(); p != nil {
		rate = pgtype.Text{String: p.String(), Valid: true}
	}
	var code pgtype.Text
	if c := s.ReferralCode(); c != nil {
		code = pgtype.Text{String: *c, Valid: true}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO specialists (id, name, commission_rate, referral_code, referred_by_id, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		s.ID(), s.Name(), rate, code, pgconv.UUIDPtrToPgtype(s.ReferredByID()), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create specialist", err)
	}
	return nil
}

func (r *SpecialistRepository) FindByID(ctx context.Context, id uuid.UUID) (*specialist.Specialist, error) {
	var (
		sid        uuid.UUID
		name       string
		rate, code pgtype.Text
		referredBy pgtype.UUID
		createdAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, commission_rate::text, referral_code, referred_by_id, created_at
		FROM specialists WHERE id = $1`, id,
	).Scan(&sid, &name, &rate, &code, &referredBy, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("specialist not found", err)
	}

	var pct *money.Percentage
	if rate.Valid {
		p, err := money.ParsePercentage(rate.String)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored commission rate", err)
		}
		pct = &p
	}
	return specialist.ReconstructSpecialist(
		sid, name, pct, pgconv.StringPtrFromPgtype(code), pgconv.UUIDPtrFromPgtype(referredBy), createdAt.Time,
	), nil
}

// LockForUpdate holds a row lock on the specialist until the transaction ends.
func (r *SpecialistRepository) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM specialists WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		return infra.WrapRepoErr("specialist not found", err)
	}
	return nil
}
