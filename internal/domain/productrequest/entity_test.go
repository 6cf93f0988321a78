//go:build unit

package productrequest_test

import (
	"testing"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/pkg/errs"
	"fieldservice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRequest_Itemized(t *testing.T) {
	t.Run("totals items without subsidy", func(t *testing.T) {
		r, err := builder.NewProductRequestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, productrequest.KindItemized, r.Kind())
		assert.Equal(t, productrequest.StatusPending, r.Status())
		assert.Equal(t, int64(21000), r.Total().Amount())
		assert.Equal(t, int64(0), r.StudioContribution().Amount())
		assert.Equal(t, int64(21000), r.SpecialistContribution().Amount())
		assert.False(t, r.IsFirstKitBenefit())
		assert.Len(t, r.Items(), 2)
	})

	cases := []struct {
		name   string
		mutate func(*builder.ProductRequestBuilder)
		errIs  error
	}{
		{
			name:   "empty items",
			mutate: func(b *builder.ProductRequestBuilder) { b.Items = nil },
			errIs:  productrequest.ErrItemsRequired,
		},
		{
			name:   "zero quantity",
			mutate: func(b *builder.ProductRequestBuilder) { b.Items[0].Quantity = 0 },
			errIs:  productrequest.ErrInvalidQuantity,
		},
		{
			name:   "negative price",
			mutate: func(b *builder.ProductRequestBuilder) { b.Items[1].UnitPrice = money.New(-1) },
			errIs:  productrequest.ErrInvalidPrice,
		},
		{
			name:   "missing product id",
			mutate: func(b *builder.ProductRequestBuilder) { b.Items[0].ProductID = "" },
			errIs:  productrequest.ErrProductRequired,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := builder.NewProductRequestBuilder().With(tc.mutate).BuildDomain()
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}

	t.Run("nil contents", func(t *testing.T) {
		_, err := productrequest.NewProductRequest(uuid.New(), nil, money.New(300000), false, "", time.Now())
		assert.ErrorIs(t, err, productrequest.ErrContentsMissing)
	})
}

func TestNewProductRequest_FullKit(t *testing.T) {
	first, err := builder.NewProductRequestBuilder().With(func(b *builder.ProductRequestBuilder) {
		b.FullKit = true
	}).BuildDomain()
	require.NoError(t, err)

	assert.True(t, first.IsFullKit())
	assert.True(t, first.IsFirstKitBenefit())
	assert.Empty(t, first.Items())
	assert.Equal(t, int64(300000), first.Total().Amount())
	assert.Equal(t, int64(150000), first.StudioContribution().Amount())
	assert.Equal(t, int64(150000), first.SpecialistContribution().Amount())

	second, err := builder.NewProductRequestBuilder().With(func(b *builder.ProductRequestBuilder) {
		b.FullKit = true
		b.HasPriorFullKit = true
	}).BuildDomain()
	require.NoError(t, err)

	assert.False(t, second.IsFirstKitBenefit())
	assert.Equal(t, int64(0), second.StudioContribution().Amount())
	assert.Equal(t, int64(300000), second.SpecialistContribution().Amount())

	odd, err := builder.NewProductRequestBuilder().With(func(b *builder.ProductRequestBuilder) {
		b.FullKit = true
		b.KitPrice = 300001
	}).BuildDomain()
	require.NoError(t, err)
	assert.Equal(t, odd.Total(), odd.StudioContribution().Add(odd.SpecialistContribution()))
}

func TestProductRequest_Resolve(t *testing.T) {
	resolver := uuid.New()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for _, d := range []productrequest.Decision{productrequest.Approve, productrequest.Reject} {
		t.Run(string(d), func(t *testing.T) {
			r, err := builder.NewProductRequestBuilder().BuildDomain()
			require.NoError(t, err)

			require.NoError(t, r.Resolve(d, resolver, "ok", now))
			want := productrequest.StatusApproved
			if d == productrequest.Reject {
				want = productrequest.StatusRejected
			}
			assert.Equal(t, want, r.Status())
			assert.Equal(t, resolver, *r.ResolvedBy())
			assert.Equal(t, now, *r.ResolvedAt())
			assert.Equal(t, "ok", r.ResolutionNotes())

			err = r.Resolve(productrequest.Approve, resolver, "", now)
			assert.ErrorIs(t, err, productrequest.ErrAlreadyResolved)
			assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
			assert.Equal(t, want, r.Status())
		})
	}
}

func TestParseDecisionAndStatus(t *testing.T) {
	d, err := productrequest.ParseDecision(" APPROVE ")
	require.NoError(t, err)
	assert.Equal(t, productrequest.Approve, d)

	_, err = productrequest.ParseDecision("maybe")
	assert.ErrorIs(t, err, productrequest.ErrUnknownDecision)

	s, err := productrequest.ParseStatus("rechazada")
	require.NoError(t, err)
	assert.Equal(t, productrequest.StatusRejected, s)
}
