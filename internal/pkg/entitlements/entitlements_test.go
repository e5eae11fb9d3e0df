package entitlements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		tier             Tier
		price            int64
		serviceListings  int
		featuredPerMonth int
		contactInfo      bool
		paymentInfo      bool
	}{
		{TierFree, 0, 1, 0, false, false},
		{TierBase, 2500, 5, 1, true, false},
		{TierMid, 5000, 15, 3, true, true},
		{TierTop, 10000, Unlimited, 10, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			plan, ok := PlanFor(tt.tier)
			require.True(t, ok)
			assert.Equal(t, tt.tier, plan.Tier)
			assert.Equal(t, tt.price, plan.Price)
			assert.Equal(t, "NGN", plan.Currency)
			assert.Equal(t, tt.serviceListings, plan.Quotas.ServiceListings)
			assert.Equal(t, tt.featuredPerMonth, plan.Quotas.FeaturedPerMonth)
			assert.Equal(t, tt.contactInfo, plan.Visibility.ContactInfo)
			assert.Equal(t, tt.paymentInfo, plan.Visibility.PaymentInfo)
		})
	}
}

func TestTopTierIsFullyUnlimited(t *testing.T) {
	plan, ok := PlanFor(TierTop)
	require.True(t, ok)
	assert.Equal(t, Unlimited, plan.Quotas.ServiceListings)
	assert.Equal(t, Unlimited, plan.Quotas.VehicleSlots)
	assert.Equal(t, Unlimited, plan.Quotas.PropertySlots)
	assert.Equal(t, Unlimited, plan.Quotas.ProductSlots)
}

func TestOnlyFreeTierLacksBillingCycle(t *testing.T) {
	for _, tier := range Tiers() {
		plan, _ := PlanFor(tier)
		if tier == TierFree {
			assert.Empty(t, plan.BillingCycle)
		} else {
			assert.Equal(t, "monthly", plan.BillingCycle)
		}
	}
}

func TestParseTier(t *testing.T) {
	tier, ok := ParseTier("MID")
	assert.True(t, ok)
	assert.Equal(t, TierMid, tier)

	_, ok = ParseTier("PLATINUM")
	assert.False(t, ok)

	_, ok = ParseTier("free")
	assert.False(t, ok)
}

func TestTiersAreOrderedByPrice(t *testing.T) {
	tiers := Tiers()
	require.Len(t, tiers, 4)

	var last int64 = -1
	for _, tier := range tiers {
		plan, ok := PlanFor(tier)
		require.True(t, ok)
		assert.Greater(t, plan.Price, last)
		last = plan.Price
	}
}
