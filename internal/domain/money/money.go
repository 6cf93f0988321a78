// Package money holds whole-unit currency amounts and percentage math.
// Amounts are integral (the studio bills in whole pesos); percentage
// results are rounded half away from zero.
package money

import (
	"encoding/json"

	"fieldservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidPercentage = errs.Mark(errs.New("percentage must be between 0 and 100"), errs.ErrValidation)

type Money struct {
	amount int64
}

func New(amount int64) Money {
	return Money{amount: amount}
}

func Zero() Money { return Money{} }

func (m Money) Amount() int64    { return m.amount }
func (m Money) IsZero() bool     { return m.amount == 0 }
func (m Money) IsPositive() bool { return m.amount > 0 }
func (m Money) IsNegative() bool { return m.amount < 0 }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

func (m Money) Times(n int64) Money {
	return Money{amount: m.amount * n}
}

// Half truncates toward zero; callers that need the complement compute m.Sub(m.Half()).
func (m Money) Half() Money {
	return Money{amount: m.amount / 2}
}

func (m Money) Of(p Percentage) Money {
	v := decimal.NewFromInt(m.amount).Mul(p.value).Div(decimal.NewFromInt(100)).Round(0)
	return Money{amount: v.IntPart()}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount)
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	m.amount = v
	return nil
}

type Percentage struct {
	value decimal.Decimal
}

func NewPercentage(v decimal.Decimal) (Percentage, error) {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return Percentage{}, ErrInvalidPercentage
	}
	return Percentage{value: v}, nil
}

// ParsePercentage accepts decimal text such as "35" or "12.50".
func ParsePercentage(raw string) (Percentage, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return Percentage{}, errs.Mark(errs.Wrap(err, "parse percentage"), errs.ErrValidation)
	}
	return NewPercentage(v)
}

func MustPercentage(v int64) Percentage {
	p, err := NewPercentage(decimal.NewFromInt(v))
	if err != nil {
		panic(err)
	}
	return p
}

func (p Percentage) Decimal() decimal.Decimal { return p.value }
func (p Percentage) IsZero() bool             { return p.value.IsZero() }
func (p Percentage) String() string           { return p.value.String() }

// Complement returns 100 - p.
func (p Percentage) Complement() Percentage {
	return Percentage{value: decimal.NewFromInt(100).Sub(p.value)}
}
