// Package entitlements holds the canonical subscription tier table. It is
// the single source for quota and visibility bundles; subscription rows are
// always recomputed from here, never hand-authored.
package entitlements

type Tier string

const (
	TierFree Tier = "FREE"
	TierBase Tier = "BASE"
	TierMid  Tier = "MID"
	TierTop  Tier = "TOP"
)

// Unlimited is the sentinel for quota fields without a cap.
const Unlimited = -1

// Quotas bundles the per-tier usage limits.
type Quotas struct {
	ServiceListings  int `json:"serviceListings"`
	VehicleSlots     int `json:"vehicleSlots"`
	PropertySlots    int `json:"propertySlots"`
	ProductSlots     int `json:"productSlots"`
	FeaturedPerMonth int `json:"featuredPerMonth"`
}

// Visibility bundles what a subscriber may show on their public profile.
type Visibility struct {
	ContactInfo   bool `json:"contactInfo"`
	PaymentInfo   bool `json:"paymentInfo"`
	ExternalLinks bool `json:"externalLinks"`
}

// Plan is the full entitlement bundle of one named tier.
type Plan struct {
	Tier         Tier       `json:"tier"`
	Price        int64      `json:"price"`
	Currency     string     `json:"currency"`
	BillingCycle string     `json:"billingCycle,omitempty"`
	Quotas       Quotas     `json:"quotas"`
	Visibility   Visibility `json:"visibility"`
}

var plans = map[Tier]Plan{
	TierFree: {
		Tier:       TierFree,
		Price:      0,
		Currency:   "NGN",
		Quotas:     Quotas{ServiceListings: 1, VehicleSlots: 1, PropertySlots: 1, ProductSlots: 1, FeaturedPerMonth: 0},
		Visibility: Visibility{},
	},
	TierBase: {
		Tier:         TierBase,
		Price:        2500,
		Currency:     "NGN",
		BillingCycle: "monthly",
		Quotas:       Quotas{ServiceListings: 5, VehicleSlots: 5, PropertySlots: 5, ProductSlots: 10, FeaturedPerMonth: 1},
		Visibility:   Visibility{ContactInfo: true},
	},
	TierMid: {
		Tier:         TierMid,
		Price:        5000,
		Currency:     "NGN",
		BillingCycle: "monthly",
		Quotas:       Quotas{ServiceListings: 15, VehicleSlots: 15, PropertySlots: 15, ProductSlots: 30, FeaturedPerMonth: 3},
		Visibility:   Visibility{ContactInfo: true, PaymentInfo: true, ExternalLinks: true},
	},
	TierTop: {
		Tier:         TierTop,
		Price:        10000,
		Currency:     "NGN",
		BillingCycle: "monthly",
		Quotas:       Quotas{ServiceListings: Unlimited, VehicleSlots: Unlimited, PropertySlots: Unlimited, ProductSlots: Unlimited, FeaturedPerMonth: 10},
		Visibility:   Visibility{ContactInfo: true, PaymentInfo: true, ExternalLinks: true},
	},
}

// PlanFor returns the entitlement bundle for a named tier.
func PlanFor(t Tier) (Plan, bool) {
	p, ok := plans[t]
	return p, ok
}

// ParseTier maps a raw string onto a known tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	_, ok := plans[t]
	return t, ok
}

// Tiers returns all tiers in ascending price order.
func Tiers() []Tier {
	return []Tier{TierFree, TierBase, TierMid, TierTop}
}
