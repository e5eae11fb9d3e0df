package models

import "time"

const (
	SubscriptionStatusActive   = "ACTIVE"
	SubscriptionStatusExpired  = "EXPIRED"
	SubscriptionStatusCanceled = "CANCELED"
)

// QuotaUnlimited is the sentinel value for quota fields without a limit.
const QuotaUnlimited = -1

// Subscription binds a user to a named tier. Quota and visibility fields are
// always derived from the tier's plan; they must never be hand-authored per
// account or left stale after a tier change.
type Subscription struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	UserID               uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Tier                 string     `gorm:"type:varchar(10);not null" json:"tier"`
	Status               string     `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	FreeServiceListings  int        `gorm:"default:0" json:"free_service_listings"`
	FreeVehicleSlots     int        `gorm:"default:0" json:"free_vehicle_slots"`
	FreePropertySlots    int        `gorm:"default:0" json:"free_property_slots"`
	FreeProductSlots     int        `gorm:"default:0" json:"free_product_slots"`
	FreeFeaturedPerMonth int        `gorm:"default:0" json:"free_featured_per_month"`
	Price                int64      `gorm:"default:0" json:"price"`
	Currency             string     `gorm:"type:varchar(3);default:'NGN'" json:"currency"`
	BillingCycle         string     `gorm:"type:varchar(16)" json:"billing_cycle"`
	ShowContactInfo      bool       `gorm:"default:false" json:"show_contact_info"`
	ShowPaymentInfo      bool       `gorm:"default:false" json:"show_payment_info"`
	ShowExternalLinks    bool       `gorm:"default:false" json:"show_external_links"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `gorm:"type:timestamp;default:null" json:"end_date,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
