package repository

import (
	"context"
	"encoding/json"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/infra"
	"fieldservice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const productRequestColumns = `id, specialist_id, kind, items, total, studio_contribution,
	specialist_contribution, is_first_kit_benefit, status, request_date, notes,
	resolved_by, resolved_at, resolution_notes, version`

type itemRow struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type ProductRequestRepository struct {
	db DBTX
}

func NewProductRequestRepository(db DBTX) *ProductRequestRepository {
	return &ProductRequestRepository{db: db}
}

func (r *ProductRequestRepository) Create(ctx context.Context, pr *productrequest.ProductRequest) error {
	s := pr.Snapshot()
	items, err := encodeItems(pr.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode product request items", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO product_requests (`+productRequestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1)`,
		s.ID, s.SpecialistID, string(pr.Kind()), items, s.Total.Amount(), s.StudioContribution.Amount(),
		s.SpecialistContribution.Amount(), s.FirstKitBenefit, string(s.Status), s.RequestDate, s.Notes,
		pgconv.UUIDPtrToPgtype(s.ResolvedBy), pgconv.TimePtrToPgtype(s.ResolvedAt), s.ResolutionNotes,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product request", err)
	}
	return nil
}

func (r *ProductRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*productrequest.ProductRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productRequestColumns+` FROM product_requests WHERE id = $1`, id)
	pr, err := scanProductRequest(row)
	if err != nil {
		return nil, infra.WrapRepoErr("product request not found", err)
	}
	return pr, nil
}

// Update only applies to a request that is still pending at the loaded version.
func (r *ProductRequestRepository) Update(ctx context.Context, pr *productrequest.ProductRequest) error {
	s := pr.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE product_requests SET
			status = $3, resolved_by = $4, resolved_at = $5, resolution_notes = $6, version = version + 1
		WHERE id = $1 AND version = $2 AND status = 'pending'`,
		s.ID, s.Version, string(s.Status), pgconv.UUIDPtrToPgtype(s.ResolvedBy),
		pgconv.TimePtrToPgtype(s.ResolvedAt), s.ResolutionNotes,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.Conflict("product request changed concurrently")
	}
	return nil
}

// HasFullKit counts every earlier kit request, rejected ones included.
func (r *ProductRequestRepository) HasFullKit(ctx context.Context, specialistID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM product_requests WHERE specialist_id = $1 AND kind = 'full_kit')`,
		specialistID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check full kit history", err)
	}
	return exists, nil
}

func (r *ProductRequestRepository) ListBySpecialist(ctx context.Context, specialistID uuid.UUID) ([]*productrequest.ProductRequest, error) {
	return r.list(ctx, `SELECT `+productRequestColumns+` FROM product_requests
		WHERE specialist_id = $1 ORDER BY request_date, id`, specialistID)
}

func (r *ProductRequestRepository) ListByStatus(ctx context.Context, status productrequest.Status) ([]*productrequest.ProductRequest, error) {
	return r.list(ctx, `SELECT `+productRequestColumns+` FROM product_requests
		WHERE status = $1 ORDER BY request_date, id`, string(status))
}

func (r *ProductRequestRepository) list(ctx context.Context, query string, args ...any) ([]*productrequest.ProductRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product requests", err)
	}
	defer rows.Close()

	out := []*productrequest.ProductRequest{}
	for rows.Next() {
		pr, err := scanProductRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product request", err)
		}
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product requests", err)
	}
	return out, nil
}

func scanProductRequest(row pgx.Row) (*productrequest.ProductRequest, error) {
	var (
		s                           productrequest.Snapshot
		kind, status                string
		items                       []byte
		total, studio, specialistPt int64
		resolvedBy                  pgtype.UUID
		resolvedAt                  pgtype.Timestamptz
	)
	err := row.Scan(
		&s.ID, &s.SpecialistID, &kind, &items, &total, &studio, &specialistPt, &s.FirstKitBenefit,
		&status, &s.RequestDate, &s.Notes, &resolvedBy, &resolvedAt, &s.ResolutionNotes, &s.Version,
	)
	if err != nil {
		return nil, err
	}

	if s.Status, err = productrequest.ParseStatus(status); err != nil {
		return nil, err
	}
	switch productrequest.Kind(kind) {
	case productrequest.KindFullKit:
		s.Contents = productrequest.FullKit{}
	default:
		decoded, err := decodeItems(items)
		if err != nil {
			return nil, err
		}
		s.Contents = productrequest.Itemized{Items: decoded}
	}
	s.Total = money.New(total)
	s.StudioContribution = money.New(studio)
	s.SpecialistContribution = money.New(specialistPt)
	s.ResolvedBy = pgconv.UUIDPtrFromPgtype(resolvedBy)
	s.ResolvedAt = pgconv.TimePtrFromPgtype(resolvedAt)
	return productrequest.Reconstruct(s), nil
}

func encodeItems(items []productrequest.Item) ([]byte, error) {
	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = itemRow{ProductID: it.ProductID, Name: it.Name, UnitPrice: it.UnitPrice.Amount(), Quantity: it.Quantity}
	}
	return json.Marshal(rows)
}

func decodeItems(raw []byte) ([]productrequest.Item, error) {
	var rows []itemRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	items := make([]productrequest.Item, len(rows))
	for i, r := range rows {
		items[i] = productrequest.Item{ProductID: r.ProductID, Name: r.Name, UnitPrice: money.New(r.UnitPrice), Quantity: r.Quantity}
	}
	return items, nil
}
