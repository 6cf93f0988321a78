package response

import (
	"time"

	"fieldservice/internal/domain/earnings"
)

type EarningsEntryResponse struct {
	BookingID       string     `json:"booking_id"`
	ClientName      string     `json:"client_name"`
	Date            time.Time  `json:"date"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Gross           int64      `json:"gross"`
	Rate            string     `json:"rate"`
	SpecialistShare int64      `json:"specialist_share"`
	StudioShare     int64      `json:"studio_share"`
	Deductions      int64      `json:"deductions"`
	NetPayable      int64      `json:"net_payable"`
	PaymentStatus   string     `json:"payment_status"`
	NeedsReview     bool       `json:"needs_review"`
}

type EarningsSummaryResponse struct {
	SpecialistID     string                  `json:"specialist_id"`
	Rate             string                  `json:"rate"`
	PendingTotal     int64                   `json:"pending_total"`
	PaidTotal        int64                   `json:"paid_total"`
	GrossTotal       int64                   `json:"gross_total"`
	StudioShareTotal int64                   `json:"studio_share_total"`
	DeductionsTotal  int64                   `json:"deductions_total"`
	CompletedCount   int                     `json:"completed_count"`
	NeedsReviewCount int                     `json:"needs_review_count"`
	Entries          []EarningsEntryResponse `json:"entries"`
}

func FromEarningsSummary(s earnings.Summary) (*EarningsSummaryResponse, error) {
	out := &EarningsSummaryResponse{}
	if err := project(out, &s); err != nil {
		return nil, err
	}
	if out.Entries == nil {
		out.Entries = []EarningsEntryResponse{}
	}
	return out, nil
}
