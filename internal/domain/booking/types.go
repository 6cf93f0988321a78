package booking

import (
	"strings"

	"fieldservice/internal/pkg/errs"
)

var (
	ErrUnknownStatus        = errs.Mark(errs.New("unknown booking status"), errs.ErrValidation)
	ErrUnknownPaymentStatus = errs.Mark(errs.New("unknown payment status"), errs.ErrValidation)
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAssigned  Status = "assigned"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusAccepted, StatusCompleted:
		return true
	default:
		return false
	}
}

// RequiresSpecialist reports whether a booking in this status must carry a specialist.
func (s Status) RequiresSpecialist() bool {
	return s == StatusAssigned || s == StatusAccepted || s == StatusCompleted
}

var statusAliases = map[string]Status{
	"pending":    StatusPending,
	"pendiente":  StatusPending,
	"assigned":   StatusAssigned,
	"asignada":   StatusAssigned,
	"asignado":   StatusAssigned,
	"accepted":   StatusAccepted,
	"aceptada":   StatusAccepted,
	"aceptado":   StatusAccepted,
	"confirmada": StatusAccepted,
	"completed":  StatusCompleted,
	"completada": StatusCompleted,
	"completado": StatusCompleted,
	"finalizada": StatusCompleted,
	"finalizado": StatusCompleted,
}

// ParseStatus normalizes a status token coming from outside the core.
// Legacy Spanish tokens map onto the canonical set.
func ParseStatus(raw string) (Status, error) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", errs.Wrapf(ErrUnknownStatus, "status %q", raw)
	}
	return s, nil
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	return p == PaymentPending || p == PaymentPaid
}

var paymentAliases = map[string]PaymentStatus{
	"pending":   PaymentPending,
	"pendiente": PaymentPending,
	"paid":      PaymentPaid,
	"pagado":    PaymentPaid,
	"pagada":    PaymentPaid,
}

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	p, ok := paymentAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", errs.Wrapf(ErrUnknownPaymentStatus, "payment status %q", raw)
	}
	return p, nil
}
