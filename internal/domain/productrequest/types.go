package productrequest

import (
	"strings"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"
)

var (
	ErrItemsRequired   = errs.Mark(errs.New("itemized request needs at least one item"), errs.ErrValidation)
	ErrInvalidQuantity = errs.Mark(errs.New("item quantity must be positive"), errs.ErrValidation)
	ErrInvalidPrice    = errs.Mark(errs.New("item unit price cannot be negative"), errs.ErrValidation)
	ErrProductRequired = errs.Mark(errs.New("item product id is required"), errs.ErrValidation)
	ErrContentsMissing = errs.Mark(errs.New("request must be itemized or a full kit"), errs.ErrValidation)
	ErrUnknownStatus   = errs.Mark(errs.New("unknown product request status"), errs.ErrValidation)
	ErrUnknownDecision = errs.Mark(errs.New("decision must be approve or reject"), errs.ErrValidation)
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "pendiente":
		return StatusPending, nil
	case "approved", "aprobada", "aprobado":
		return StatusApproved, nil
	case "rejected", "rechazada", "rechazado":
		return StatusRejected, nil
	}
	return "", errs.Wrapf(ErrUnknownStatus, "status %q", raw)
}

type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

func ParseDecision(raw string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(raw))); d {
	case Approve, Reject:
		return d, nil
	}
	return "", ErrUnknownDecision
}

type Kind string

const (
	KindItemized Kind = "itemized"
	KindFullKit  Kind = "full_kit"
)

type Item struct {
	ProductID string
	Name      string
	UnitPrice money.Money
	Quantity  int
}

func (i Item) Total() money.Money {
	return i.UnitPrice.Times(int64(i.Quantity))
}

// Contents is either Itemized or FullKit. The set of implementations is closed.
type Contents interface {
	Kind() Kind
	isContents()
}

type Itemized struct {
	Items []Item
}

func (Itemized) Kind() Kind  { return KindItemized }
func (Itemized) isContents() {}

func (c Itemized) Total() money.Money {
	total := money.Zero()
	for _, it := range c.Items {
		total = total.Add(it.Total())
	}
	return total
}

func (c Itemized) validate() error {
	if len(c.Items) == 0 {
		return ErrItemsRequired
	}
	for _, it := range c.Items {
		switch {
		case strings.TrimSpace(it.ProductID) == "":
			return ErrProductRequired
		case it.Quantity <= 0:
			return ErrInvalidQuantity
		case it.UnitPrice.IsNegative():
			return ErrInvalidPrice
		}
	}
	return nil
}

type FullKit struct{}

func (FullKit) Kind() Kind  { return KindFullKit }
func (FullKit) isContents() {}
