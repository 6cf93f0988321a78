package response

import (
	"log/slog"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/usecase/queries"
)

type BookingDetailsResponse struct {
	ClientName        string   `json:"client_name"`
	ServiceType       string   `json:"service_type"`
	ServicesPerPerson []string `json:"services_per_person"`
	Date              string   `json:"date" copier:"-"`
	TimeOfDay         string   `json:"time"`
	Address           string   `json:"address"`
	Neighborhood      string   `json:"neighborhood"`
	ContactPhone      string   `json:"contact_phone"`
	AttendeeCount     int      `json:"attendee_count"`
	HasAllergies      bool     `json:"has_allergies"`
	AllergyNotes      string   `json:"allergy_notes"`
	ReferredBy        string   `json:"referred_by"`
}

type BookingResponse struct {
	ID                    string                 `json:"id"`
	BackendID             *string                `json:"backend_id,omitempty"`
	Details               BookingDetailsResponse `json:"details"`
	SuggestedSpecialistID *string                `json:"suggested_specialist_id,omitempty"`
	Status                string                 `json:"status"`
	SpecialistID          *string                `json:"specialist_id,omitempty"`
	AssignedAt            *time.Time             `json:"assigned_at,omitempty"`
	RejectionHistory      []string               `json:"rejection_history"`
	PaymentStatus         string                 `json:"payment_status"`
	Price                 *int64                 `json:"price,omitempty"`
	EstimatedPrice        *int64                 `json:"estimated_price,omitempty"`
	Deductions            int64                  `json:"deductions"`
	AdditionalCosts       int64                  `json:"additional_costs"`
	ConfirmedServices     []string               `json:"confirmed_services"`
	CompletionNotes       string                 `json:"completion_notes,omitempty"`
	CompletedAt           *time.Time             `json:"completed_at,omitempty"`
	PaidAt                *time.Time             `json:"paid_at,omitempty"`
	Version               int64                  `json:"version"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	d := b.Details()
	details := BookingDetailsResponse{}
	// Date is rendered separately; everything else has matching names.
	if err := project(&details, &d); err != nil {
		slog.Warn("failed to project booking details", "booking_id", b.ID(), "error", err)
	}
	if !d.Date.IsZero() {
		details.Date = d.Date.Format("2006-01-02")
	}

	return &BookingResponse{
		ID:                    b.ID().String(),
		BackendID:             b.BackendID(),
		Details:               details,
		SuggestedSpecialistID: idPtr(b.SuggestedSpecialistID()),
		Status:                b.Status().String(),
		SpecialistID:          idPtr(b.SpecialistID()),
		AssignedAt:            b.AssignedAt(),
		RejectionHistory:      nonNil(b.RejectionHistory()),
		PaymentStatus:         string(b.PaymentStatus()),
		Price:                 amountPtr(b.Price()),
		EstimatedPrice:        amountPtr(b.EstimatedPrice()),
		Deductions:            b.Deductions().Amount(),
		AdditionalCosts:       b.AdditionalCosts().Amount(),
		ConfirmedServices:     nonNil(b.ConfirmedServices()),
		CompletionNotes:       b.CompletionNotes(),
		CompletedAt:           b.CompletedAt(),
		PaidAt:                b.PaidAt(),
		Version:               b.Version(),
		CreatedAt:             b.CreatedAt(),
		UpdatedAt:             b.UpdatedAt(),
	}
}

type PendingBookingResponse struct {
	Booking          *BookingResponse `json:"booking"`
	Deadline         *time.Time       `json:"deadline,omitempty"`
	RemainingSeconds int64            `json:"remaining_seconds"`
	Expired          bool             `json:"expired"`
}

func FromPendingViews(views []queries.PendingView) []PendingBookingResponse {
	out := make([]PendingBookingResponse, len(views))
	for i, v := range views {
		out[i] = PendingBookingResponse{
			Booking:          FromBooking(v.Booking),
			Deadline:         v.Deadline,
			RemainingSeconds: int64(v.Remaining / time.Second),
			Expired:          v.Expired,
		}
	}
	return out
}

type RejectionHistoryResponse struct {
	BookingID        string   `json:"booking_id"`
	RejectionHistory []string `json:"rejection_history"`
}

type SpecialistRejectionResponse struct {
	BookingID  string `json:"booking_id"`
	ClientName string `json:"client_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Count      int    `json:"count"`
}

func FromRejectionViews(views []queries.RejectionView) []SpecialistRejectionResponse {
	out := make([]SpecialistRejectionResponse, len(views))
	for i, v := range views {
		d := v.Booking.Details()
		out[i] = SpecialistRejectionResponse{
			BookingID:  v.Booking.ID().String(),
			ClientName: d.ClientName,
			Date:       d.Date.Format("2006-01-02"),
			Status:     v.Booking.Status().String(),
			Count:      v.Count,
		}
	}
	return out
}

type BulkPaidResponse struct {
	Updated int `json:"updated"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
