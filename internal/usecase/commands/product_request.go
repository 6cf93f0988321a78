package commands

//go:generate mockgen -source=product_request.go -destination=../../../tests/mock/commands/product_request.go -package=commandsmock

import (
	"context"
	"fmt"

	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductItemInput struct {
	ProductID string
	Name      string
	Quantity  int
}

type CreateProductRequestInput struct {
	SpecialistID uuid.UUID
	FullKit      bool
	Items        []ProductItemInput
	Notes        string
}

type ProductRequestCommands interface {
	CreateProductRequest(ctx context.Context, actor user.Actor, in CreateProductRequestInput) (*productrequest.ProductRequest, error)
	ResolveProductRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID, decision productrequest.Decision, notes string) (*productrequest.ProductRequest, error)
}

type productRequestUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.Notifier
	policy   shared.Policy
}

func NewProductRequestUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier shared.Notifier, policy shared.Policy) ProductRequestCommands {
	return &productRequestUseCaseImpl{uow: uow, clock: clk, notifier: notifier, policy: policy}
}

func (uc *productRequestUseCaseImpl) CreateProductRequest(ctx context.Context, actor user.Actor, in CreateProductRequestInput) (*productrequest.ProductRequest, error) {
	if err := shared.RequireActFor(actor, in.SpecialistID); err != nil {
		return nil, err
	}
	if in.FullKit && len(in.Items) > 0 {
		return nil, ErrAmbiguousKit
	}

	var created *productrequest.ProductRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serializes concurrent full-kit requests of the same specialist so
		// only one of them can see "no prior kit".
		if derr := tx.Specialists().LockForUpdate(ctx, in.SpecialistID); derr != nil {
			return derr
		}

		var (
			contents productrequest.Contents
			prior    bool
		)
		if in.FullKit {
			contents = productrequest.FullKit{}
			var derr error
			if prior, derr = tx.ProductRequests().HasFullKit(ctx, in.SpecialistID); derr != nil {
				return derr
			}
		} else {
			items, derr := uc.priceItems(ctx, tx, in.Items)
			if derr != nil {
				return derr
			}
			contents = productrequest.Itemized{Items: items}
		}

		r, derr := productrequest.NewProductRequest(in.SpecialistID, contents, uc.policy.FullKitPrice, prior, in.Notes, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.ProductRequests().Create(ctx, r); derr != nil {
			return derr
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	id := created.ID()
	message := fmt.Sprintf("New product request (%s) for %d", created.Kind(), created.Total().Amount())
	shared.Dispatch(ctx, uc.notifier, shared.Event{
		Kind:         shared.EventProductRequest,
		SpecialistID: &in.SpecialistID,
		Message:      message,
		Payload: map[string]any{
			"request_id":          id.String(),
			"first_kit_benefit":   created.IsFirstKitBenefit(),
			"studio_contribution": created.StudioContribution().Amount(),
		},
	})
	return created, nil
}

// priceItems takes unit prices from the catalog, never from the caller.
func (uc *productRequestUseCaseImpl) priceItems(ctx context.Context, tx shared.Tx, in []ProductItemInput) ([]productrequest.Item, error) {
	if len(in) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(in))
	for _, it := range in {
		ids = append(ids, it.ProductID)
	}
	prices, err := tx.Catalog().ProductPrices(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]productrequest.Item, 0, len(in))
	for _, it := range in {
		p, ok := prices[it.ProductID]
		if !ok {
			return nil, errs.Wrapf(ErrUnknownProduct, "product %q", it.ProductID)
		}
		items = append(items, productrequest.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: p,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}

func (uc *productRequestUseCaseImpl) ResolveProductRequest(
	ctx context.Context,
	actor user.Actor,
	requestID uuid.UUID,
	decision productrequest.Decision,
	notes string,
) (*productrequest.ProductRequest, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var resolved *productrequest.ProductRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.ProductRequests().FindByID(ctx, requestID)
		if derr != nil {
			return derr
		}
		if derr = r.Resolve(decision, actor.ID, notes, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.ProductRequests().Update(ctx, r); derr != nil {
			return derr
		}
		resolved = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind, verb := shared.EventRequestApproved, "approved"
	if resolved.Status() == productrequest.StatusRejected {
		kind, verb = shared.EventRequestRejected, "rejected"
	}
	specialistID := resolved.SpecialistID()
	shared.Dispatch(ctx, uc.notifier, shared.Event{
		Kind:         kind,
		SpecialistID: &specialistID,
		Message:      fmt.Sprintf("Your product request was %s", verb),
		Payload: map[string]any{
			"request_id": requestID.String(),
			"notes":      notes,
		},
	})
	return resolved, nil
}
