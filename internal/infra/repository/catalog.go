package repository

import (
	"context"

	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/infra"
)

type CatalogRepository struct {
	db DBTX
}

func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ServicePrices(ctx context.Context) (earnings.Catalog, error) {
	rows, err := r.db.Query(ctx, `SELECT service_type, price FROM service_catalog`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service catalog", err)
	}
	defer rows.Close()

	out := earnings.Catalog{}
	for rows.Next() {
		var (
			service string
			price   int64
		)
		if err := rows.Scan(&service, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service price", err)
		}
		out[service] = money.New(price)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service catalog", err)
	}
	return out, nil
}

// ProductPrices omits ids that are not in the catalog.
func (r *CatalogRepository) ProductPrices(ctx context.Context, ids []string) (map[string]money.Money, error) {
	out := map[string]money.Money{}
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id, unit_price FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load product prices", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    string
			price int64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product price", err)
		}
		out[id] = money.New(price)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product prices", err)
	}
	return out, nil
}

func (r *CatalogRepository) UpsertServicePrice(ctx context.Context, service string, price money.Money) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO service_catalog (service_type, price) VALUES ($1, $2)
		ON CONFLICT (service_type) DO UPDATE SET price = EXCLUDED.price`,
		service, price.Amount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert service price", err)
	}
	return nil
}

func (r *CatalogRepository) UpsertProduct(ctx context.Context, id, name string, price money.Money) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, unit_price) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, unit_price = EXCLUDED.unit_price`,
		id, name, price.Amount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert product", err)
	}
	return nil
}
