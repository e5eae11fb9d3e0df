package catalogsync

import (
	"encoding/json"
	"fmt"

	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/entitlements"
)

// settingRecord is a declared platform setting before it is marshaled into
// its storage row.
type settingRecord struct {
	Key         string
	Value       interface{}
	Description string
}

func (r settingRecord) marshalValue() (string, error) {
	b, err := json.Marshal(r.Value)
	if err != nil {
		return "", fmt.Errorf("marshaling value: %w", err)
	}
	return string(b), nil
}

// tierSettings renders the canonical tier table into the settings document
// read by the billing layer. The entitlements package is the only source.
func tierSettings() map[string]entitlements.Plan {
	out := make(map[string]entitlements.Plan, len(entitlements.Tiers()))
	for _, tier := range entitlements.Tiers() {
		plan, _ := entitlements.PlanFor(tier)
		out[string(tier)] = plan
	}
	return out
}

// declaredSettings is the full set of platform settings kept in sync.
func declaredSettings() []settingRecord {
	return []settingRecord{
		{
			Key:         "subscription_tiers",
			Value:       tierSettings(),
			Description: "Subscription tier configurations with pricing and limits",
		},
		{
			Key: "platform_fees",
			Value: map[string]int{
				"featuredListingFee":   500,
				"squadVerificationFee": 2000,
				"jobPostingFee":        1000,
				"premiumProfileFee":    3000,
			},
			Description: "Platform fees for various premium features",
		},
		{
			Key: "rating_settings",
			Value: map[string]float64{
				"ratingWindowHours":      48,
				"minimumRatingForBadge":  4.5,
				"minimumRatingsForBadge": 10,
				"reminderIntervalHours":  24,
			},
			Description: "Rating and review system settings",
		},
		{
			Key: "listing_limits",
			Value: map[string]int{
				"maxImagesPerListing":  20,
				"maxVideosPerListing":  3,
				"maxDescriptionLength": 5000,
				"featuredDurationDays": 7,
			},
			Description: "Limits for marketplace listings",
		},
		{
			Key: "verification_settings",
			Value: map[string]bool{
				"photoVerificationEnabled":     true,
				"documentVerificationEnabled":  true,
				"physicalVerificationEnabled":  true,
				"autoApproveBasicVerification": false,
			},
			Description: "User verification system settings",
		},
		{
			Key: "payment_gateways",
			Value: map[string]map[string]bool{
				"zainpay":     {"enabled": true, "isPrimary": true},
				"paystack":    {"enabled": true, "isPrimary": false},
				"flutterwave": {"enabled": true, "isPrimary": false},
			},
			Description: "Payment gateway configurations",
		},
		{
			Key: "notification_settings",
			Value: map[string]bool{
				"emailNotifications": true,
				"smsNotifications":   true,
				"pushNotifications":  true,
				"inAppNotifications": true,
			},
			Description: "Notification channel settings",
		},
	}
}
