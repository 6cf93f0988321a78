//go:build unit || e2e

package builder

import (
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/productrequest"

	"github.com/google/uuid"
)

type ProductRequestBuilder struct {
	SpecialistID    uuid.UUID
	FullKit         bool
	Items           []productrequest.Item
	KitPrice        int64
	HasPriorFullKit bool
	Notes           string
	Now             time.Time
}

func NewProductRequestBuilder() *ProductRequestBuilder {
	return &ProductRequestBuilder{
		SpecialistID: uuid.New(),
		Items: []productrequest.Item{
			{ProductID: "lotion-250", Name: "Loción 250ml", UnitPrice: money.New(8500), Quantity: 2},
			{ProductID: "comb-metal", Name: "Peine metálico", UnitPrice: money.New(4000), Quantity: 1},
		},
		KitPrice: 300000,
		Notes:    "restock",
		Now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (p *ProductRequestBuilder) With(mutate func(*ProductRequestBuilder)) *ProductRequestBuilder {
	mutate(p)
	return p
}

func (p *ProductRequestBuilder) Contents() productrequest.Contents {
	if p.FullKit {
		return productrequest.FullKit{}
	}
	return productrequest.Itemized{Items: p.Items}
}

// Build methods
func (p *ProductRequestBuilder) BuildDomain() (*productrequest.ProductRequest, error) {
	return productrequest.NewProductRequest(p.SpecialistID, p.Contents(), money.New(p.KitPrice), p.HasPriorFullKit, p.Notes, p.Now)
}
