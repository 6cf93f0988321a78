//go:build unit

package specialist_test

import (
	"strings"
	"testing"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/specialist"
	"fieldservice/internal/pkg/errs"
	"fieldservice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecialist(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	code := func(s string) *string { return &s }

	tests := []struct {
		name     string
		input    string
		code     *string
		wantCode *string
		wantErr  error
	}{
		{name: "trims the name", input: "  Carla Ruiz "},
		{name: "normalizes the referral code", input: "Carla", code: code(" carla26 "), wantCode: code("CARLA26")},
		{name: "blank code is no code", input: "Carla", code: code("   ")},
		{name: "empty name", input: "  ", wantErr: specialist.ErrNameRequired},
		{name: "code too short", input: "Carla", code: code("ab"), wantErr: specialist.ErrInvalidReferralCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := specialist.NewSpecialist(tt.input, nil, tt.code, nil, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, sp.ID())
			assert.Equal(t, strings.TrimSpace(tt.input), sp.Name())
			assert.Equal(t, tt.wantCode, sp.ReferralCode())
			assert.False(t, sp.WasReferred())
		})
	}
}

func TestSpecialist_EffectiveRate(t *testing.T) {
	def := money.MustPercentage(50)

	plain := builder.NewSpecialistBuilder().BuildDomain()
	assert.Equal(t, def.String(), plain.EffectiveRate(def).String())

	custom := builder.NewSpecialistBuilder().WithRate(60).BuildDomain()
	assert.Equal(t, "60", custom.EffectiveRate(def).String())
	require.NotNil(t, custom.CommissionRate())

	referred := builder.NewSpecialistBuilder().ReferredBy(uuid.New()).BuildDomain()
	assert.True(t, referred.WasReferred())
}
