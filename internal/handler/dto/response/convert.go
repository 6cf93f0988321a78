package response

import (
	"fieldservice/internal/domain/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// projection flattens domain value types into JSON friendly scalars.
var projection = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(money.Money).Amount(), nil
			},
		},
		{
			SrcType: money.Percentage{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(money.Percentage).String(), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func project(to, from any) error {
	return copier.CopyWithOption(to, from, projection)
}

func amountPtr(m *money.Money) *int64 {
	if m == nil {
		return nil
	}
	v := m.Amount()
	return &v
}

func idPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
