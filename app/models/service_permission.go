package models

import "time"

const (
	RoleLabelVehicleProvider    = "VEHICLE_PROVIDER"
	RoleLabelRealEstateProvider = "REAL_ESTATE_PROVIDER"
	RoleLabelFinancialProvider  = "FINANCIAL_PROVIDER"
)

// ServicePermission is a denormalized projection of a ServiceType's market
// flags, kept one-to-one by the stable service id for market-access and
// financial service types. Query layers read this instead of re-deriving
// flags from the service type row.
type ServicePermission struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	ServiceID            int       `gorm:"not null;uniqueIndex" json:"service_id"`
	ServiceTypeID        uint      `gorm:"not null;index" json:"service_type_id"`
	CanListVehicles      bool      `gorm:"default:false" json:"can_list_vehicles"`
	CanListProperties    bool      `gorm:"default:false" json:"can_list_properties"`
	IsFinancialProvider  bool      `gorm:"default:false" json:"is_financial_provider"`
	IsRealEstateProvider bool      `gorm:"default:false" json:"is_real_estate_provider"`
	IsVehicleProvider    bool      `gorm:"default:false" json:"is_vehicle_provider"`
	RoleLabel            string    `gorm:"type:varchar(50);not null" json:"role_label"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
