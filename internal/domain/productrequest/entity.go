package productrequest

import (
	"slices"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyResolved = errs.Mark(errs.New("product request is already resolved"), errs.ErrInvalidTransition)

type ProductRequest struct {
	id                     uuid.UUID
	specialistID           uuid.UUID
	contents               Contents
	status                 Status
	requestDate            time.Time
	notes                  string
	total                  money.Money
	studioContribution     money.Money
	specialistContribution money.Money
	firstKitBenefit        bool
	resolvedBy             *uuid.UUID
	resolvedAt             *time.Time
	resolutionNotes        string
	version                int64
}

// NewProductRequest prices the request. hasPriorFullKit must reflect every
// earlier full-kit request of the specialist whatever its outcome: the
// one-time subsidy is spent by asking for it, not by getting it approved.
func NewProductRequest(
	specialistID uuid.UUID,
	contents Contents,
	kitPrice money.Money,
	hasPriorFullKit bool,
	notes string,
	now time.Time,
) (*ProductRequest, error) {
	r := &ProductRequest{
		id:           uuid.New(),
		specialistID: specialistID,
		contents:     contents,
		status:       StatusPending,
		requestDate:  now,
		notes:        notes,
	}

	switch c := contents.(type) {
	case Itemized:
		if err := c.validate(); err != nil {
			return nil, err
		}
		c.Items = slices.Clone(c.Items)
		r.contents = c
		r.total = c.Total()
		r.specialistContribution = r.total
	case FullKit:
		r.total = kitPrice
		if !hasPriorFullKit {
			r.firstKitBenefit = true
			r.studioContribution = kitPrice.Half()
		}
		r.specialistContribution = kitPrice.Sub(r.studioContribution)
	default:
		return nil, ErrContentsMissing
	}
	return r, nil
}

type Snapshot struct {
	ID                     uuid.UUID
	SpecialistID           uuid.UUID
	Contents               Contents
	Status                 Status
	RequestDate            time.Time
	Notes                  string
	Total                  money.Money
	StudioContribution     money.Money
	SpecialistContribution money.Money
	FirstKitBenefit        bool
	ResolvedBy             *uuid.UUID
	ResolvedAt             *time.Time
	ResolutionNotes        string
	Version                int64
}

func Reconstruct(s Snapshot) *ProductRequest {
	return &ProductRequest{
		id:                     s.ID,
		specialistID:           s.SpecialistID,
		contents:               s.Contents,
		status:                 s.Status,
		requestDate:            s.RequestDate,
		notes:                  s.Notes,
		total:                  s.Total,
		studioContribution:     s.StudioContribution,
		specialistContribution: s.SpecialistContribution,
		firstKitBenefit:        s.FirstKitBenefit,
		resolvedBy:             s.ResolvedBy,
		resolvedAt:             s.ResolvedAt,
		resolutionNotes:        s.ResolutionNotes,
		version:                s.Version,
	}
}

func (r *ProductRequest) Snapshot() Snapshot {
	return Snapshot{
		ID:                     r.id,
		SpecialistID:           r.specialistID,
		Contents:               r.contents,
		Status:                 r.status,
		RequestDate:            r.requestDate,
		Notes:                  r.notes,
		Total:                  r.total,
		StudioContribution:     r.studioContribution,
		SpecialistContribution: r.specialistContribution,
		FirstKitBenefit:        r.firstKitBenefit,
		ResolvedBy:             r.resolvedBy,
		ResolvedAt:             r.resolvedAt,
		ResolutionNotes:        r.resolutionNotes,
		Version:                r.version,
	}
}

func (r *ProductRequest) Resolve(decision Decision, resolverID uuid.UUID, notes string, now time.Time) error {
	if r.status != StatusPending {
		return errs.Wrapf(ErrAlreadyResolved, "request is %s", r.status)
	}
	switch decision {
	case Approve:
		r.status = StatusApproved
	case Reject:
		r.status = StatusRejected
	default:
		return ErrUnknownDecision
	}
	by := resolverID
	at := now
	r.resolvedBy = &by
	r.resolvedAt = &at
	r.resolutionNotes = notes
	return nil
}

func (r *ProductRequest) IsFullKit() bool {
	_, ok := r.contents.(FullKit)
	return ok
}

// Items is empty for full-kit requests.
func (r *ProductRequest) Items() []Item {
	if c, ok := r.contents.(Itemized); ok {
		return slices.Clone(c.Items)
	}
	return nil
}

func (r *ProductRequest) ID() uuid.UUID                       { return r.id }
func (r *ProductRequest) SpecialistID() uuid.UUID             { return r.specialistID }
func (r *ProductRequest) Contents() Contents                  { return r.contents }
func (r *ProductRequest) Kind() Kind                          { return r.contents.Kind() }
func (r *ProductRequest) Status() Status                      { return r.status }
func (r *ProductRequest) RequestDate() time.Time              { return r.requestDate }
func (r *ProductRequest) Notes() string                       { return r.notes }
func (r *ProductRequest) Total() money.Money                  { return r.total }
func (r *ProductRequest) StudioContribution() money.Money     { return r.studioContribution }
func (r *ProductRequest) SpecialistContribution() money.Money { return r.specialistContribution }
func (r *ProductRequest) IsFirstKitBenefit() bool             { return r.firstKitBenefit }
func (r *ProductRequest) ResolvedBy() *uuid.UUID              { return r.resolvedBy }
func (r *ProductRequest) ResolvedAt() *time.Time              { return r.resolvedAt }
func (r *ProductRequest) ResolutionNotes() string             { return r.resolutionNotes }
func (r *ProductRequest) Version() int64                      { return r.version }
