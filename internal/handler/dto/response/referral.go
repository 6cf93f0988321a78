package response

import (
	"time"

	"fieldservice/internal/domain/referral"
)

type CommissionResponse struct {
	ID               string     `json:"id"`
	ReferrerID       string     `json:"referrer_id"`
	ReferredID       string     `json:"referred_id"`
	BookingID        string     `json:"booking_id"`
	ServiceAmount    int64      `json:"service_amount"`
	CommissionAmount int64      `json:"commission_amount"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

func FromCommission(c *referral.Commission) *CommissionResponse {
	return &CommissionResponse{
		ID:               c.ID().String(),
		ReferrerID:       c.ReferrerID().String(),
		ReferredID:       c.ReferredID().String(),
		BookingID:        c.BookingID().String(),
		ServiceAmount:    c.ServiceAmount().Amount(),
		CommissionAmount: c.CommissionAmount().Amount(),
		Status:           c.Status().String(),
		CreatedAt:        c.CreatedAt(),
		PaidAt:           c.PaidAt(),
	}
}

type ReferralSummaryResponse struct {
	ReferrerID   string                `json:"referrer_id"`
	PendingTotal int64                 `json:"pending_total"`
	PaidTotal    int64                 `json:"paid_total"`
	Commissions  []*CommissionResponse `json:"commissions"`
}

func FromReferralSummary(s referral.Summary) *ReferralSummaryResponse {
	out := &ReferralSummaryResponse{
		ReferrerID:   s.ReferrerID.String(),
		PendingTotal: s.PendingTotal.Amount(),
		PaidTotal:    s.PaidTotal.Amount(),
		Commissions:  make([]*CommissionResponse, len(s.Commissions)),
	}
	for i, c := range s.Commissions {
		out.Commissions[i] = FromCommission(c)
	}
	return out
}
