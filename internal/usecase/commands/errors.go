package commands

import "fieldservice/internal/pkg/errs"

var (
	ErrUnknownProduct = errs.Mark(errs.New("unknown product id"), errs.ErrValidation)
	ErrAmbiguousKit   = errs.Mark(errs.New("full kit requests carry no items"), errs.ErrValidation)
)
