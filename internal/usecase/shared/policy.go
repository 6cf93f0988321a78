package shared

import (
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// Policy holds the business constants the usecases share.
type Policy struct {
	ResponseWindow        time.Duration
	FullKitPrice          money.Money
	ReferralPercent       money.Percentage
	DefaultCommissionRate money.Percentage
}

func NewPolicy(cfg config.Config) (Policy, error) {
	referral, err := money.NewPercentage(decimal.NewFromInt(cfg.Referral.CommissionPercent))
	if err != nil {
		return Policy{}, err
	}
	rate, err := money.NewPercentage(decimal.NewFromInt(cfg.Commission.DefaultRate))
	if err != nil {
		return Policy{}, err
	}
	return Policy{
		ResponseWindow:        cfg.Assignment.ResponseWindow,
		FullKitPrice:          money.New(cfg.Products.FullKitPrice),
		ReferralPercent:       referral,
		DefaultCommissionRate: rate,
	}, nil
}

// Metrics receives counters from the usecases. The prometheus adapter lives in infra.
type Metrics interface {
	BookingTransition(transition string)
	AutoReleased()
	ScanFailed()
	ScanDuration(d time.Duration)
}

type NopMetrics struct{}

func (NopMetrics) BookingTransition(string)   {}
func (NopMetrics) AutoReleased()              {}
func (NopMetrics) ScanFailed()                {}
func (NopMetrics) ScanDuration(time.Duration) {}
