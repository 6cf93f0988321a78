package repository

import (
	"context"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/referral"
	"fieldservice/internal/infra"
	"fieldservice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const commissionColumns = `id, referrer_id, referred_id, booking_id, service_amount,
	commission_amount, status, created_at, paid_at`

type ReferralRepository struct {
	db DBTX
}

func NewReferralRepository(db DBTX) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) Create(ctx context.Context, c *referral.Commission) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO referral_commissions (`+commissionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (referred_id) DO NOTHING`,
		c.ID(), c.ReferrerID(), c.ReferredID(), c.BookingID(), c.ServiceAmount().Amount(),
		c.CommissionAmount().Amount(), c.Status().String(), c.CreatedAt(), pgconv.TimePtrToPgtype(c.PaidAt()),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create referral commission", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ReferralRepository) FindByID(ctx context.Context, id uuid.UUID) (*referral.Commission, error) {
	row := r.db.QueryRow(ctx, `SELECT `+commissionColumns+` FROM referral_commissions WHERE id = $1`, id)
	c, err := scanCommission(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral commission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find referral commission", err)
	}
	return c, nil
}

func (r *ReferralRepository) MarkPaid(ctx context.Context, c *referral.Commission) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE referral_commissions SET status = 'paid', paid_at = $2
		WHERE id = $1 AND status = 'pending'`,
		c.ID(), pgconv.TimePtrToPgtype(c.PaidAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark referral commission paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.Conflict("referral commission is no longer pending")
	}
	return nil
}

func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*referral.Commission, error) {
	rows, err := r.db.Query(ctx, `SELECT `+commissionColumns+` FROM referral_commissions
		WHERE referrer_id = $1 ORDER BY created_at, id`, referrerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list referral commissions", err)
	}
	defer rows.Close()

	out := []*referral.Commission{}
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan referral commission", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate referral commissions", err)
	}
	return out, nil
}

func scanCommission(row pgx.Row) (*referral.Commission, error) {
	var (
		id, referrer, referred, bookingID uuid.UUID
		service, commission               int64
		status                            string
		createdAt                         pgtype.Timestamptz
		paidAt                            pgtype.Timestamptz
	)
	if err := row.Scan(&id, &referrer, &referred, &bookingID, &service, &commission, &status, &createdAt, &paidAt); err != nil {
		return nil, err
	}
	return referral.ReconstructCommission(
		id, referrer, referred, bookingID,
		money.New(service), money.New(commission),
		referral.Status(status), createdAt.Time, pgconv.TimePtrFromPgtype(paidAt),
	), nil
}
