package request

import (
	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProductItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateProductRequestRequest struct {
	SpecialistRef
	FullKit bool                 `json:"full_kit"`
	Items   []ProductItemRequest `json:"items" binding:"dive"`
	Notes   string               `json:"notes" binding:"max=1000"`
}

func (r *CreateProductRequestRequest) ToInput(actorID uuid.UUID) commands.CreateProductRequestInput {
	items := make([]commands.ProductItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.ProductItemInput{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity}
	}
	return commands.CreateProductRequestInput{
		SpecialistID: r.Resolve(actorID),
		FullKit:      r.FullKit,
		Items:        items,
		Notes:        r.Notes,
	}
}

type ResolveProductRequestRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes" binding:"max=1000"`
}

func (r *ResolveProductRequestRequest) ToDecision() (productrequest.Decision, error) {
	return productrequest.ParseDecision(r.Decision)
}
