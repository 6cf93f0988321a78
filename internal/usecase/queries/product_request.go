package queries

//go:generate mockgen -source=product_request.go -destination=../../../tests/mock/queries/product_request.go -package=queriesmock

import (
	"context"

	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductRequestQueries interface {
	ProductRequestsFor(ctx context.Context, actor user.Actor, specialistID uuid.UUID) ([]*productrequest.ProductRequest, error)
	ProductRequestsByStatus(ctx context.Context, actor user.Actor, status productrequest.Status) ([]*productrequest.ProductRequest, error)
}

type productRequestQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewProductRequestQueries(uow shared.UnitOfWork) ProductRequestQueries {
	return &productRequestQueriesImpl{uow: uow}
}

func (q *productRequestQueriesImpl) ProductRequestsFor(ctx context.Context, actor user.Actor, specialistID uuid.UUID) ([]*productrequest.ProductRequest, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return nil, err
	}
	var out []*productrequest.ProductRequest
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		out, derr = tx.ProductRequests().ListBySpecialist(ctx, specialistID)
		return derr
	})
	return out, err
}

// ProductRequestsByStatus backs the admin queue; pending is the usual filter.
func (q *productRequestQueriesImpl) ProductRequestsByStatus(ctx context.Context, actor user.Actor, status productrequest.Status) ([]*productrequest.ProductRequest, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return nil, err
	}
	var out []*productrequest.ProductRequest
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		out, derr = tx.ProductRequests().ListByStatus(ctx, status)
		return derr
	})
	return out, err
}
