package response

import (
	"time"

	"fieldservice/internal/domain/productrequest"
)

type ProductItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type ProductRequestResponse struct {
	ID                     string                `json:"id"`
	SpecialistID           string                `json:"specialist_id"`
	Kind                   string                `json:"kind"`
	Items                  []ProductItemResponse `json:"items"`
	Status                 string                `json:"status"`
	RequestDate            time.Time             `json:"request_date"`
	Notes                  string                `json:"notes,omitempty"`
	Total                  int64                 `json:"total"`
	StudioContribution     int64                 `json:"studio_contribution"`
	SpecialistContribution int64                 `json:"specialist_contribution"`
	IsFirstKitBenefit      bool                  `json:"is_first_kit_benefit"`
	ResolvedBy             *string               `json:"resolved_by,omitempty"`
	ResolvedAt             *time.Time            `json:"resolved_at,omitempty"`
	ResolutionNotes        string                `json:"resolution_notes,omitempty"`
}

func FromProductRequest(r *productrequest.ProductRequest) *ProductRequestResponse {
	items := []ProductItemResponse{}
	if err := project(&items, r.Items()); err != nil || items == nil {
		items = []ProductItemResponse{}
	}
	return &ProductRequestResponse{
		ID:                     r.ID().String(),
		SpecialistID:           r.SpecialistID().String(),
		Kind:                   string(r.Kind()),
		Items:                  items,
		Status:                 r.Status().String(),
		RequestDate:            r.RequestDate(),
		Notes:                  r.Notes(),
		Total:                  r.Total().Amount(),
		StudioContribution:     r.StudioContribution().Amount(),
		SpecialistContribution: r.SpecialistContribution().Amount(),
		IsFirstKitBenefit:      r.IsFirstKitBenefit(),
		ResolvedBy:             idPtr(r.ResolvedBy()),
		ResolvedAt:             r.ResolvedAt(),
		ResolutionNotes:        r.ResolutionNotes(),
	}
}

func FromProductRequests(rs []*productrequest.ProductRequest) []*ProductRequestResponse {
	out := make([]*ProductRequestResponse, len(rs))
	for i, r := range rs {
		out[i] = FromProductRequest(r)
	}
	return out
}
