package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Permission tags form a closed vocabulary. Anything outside it is mapped to
// PermServiceProvider during sync.
const (
	PermVehicleMarketAccess    = "VEHICLE_MARKET_ACCESS"
	PermRealEstateMarketAccess = "REAL_ESTATE_MARKET_ACCESS"
	PermFinancialServices      = "FINANCIAL_SERVICES"
	PermServiceProvider        = "SERVICE_PROVIDER"
)

// Market modules a service type can participate in. A service always belongs
// to at least one module; "general" is the fallback when no market flag is set.
const (
	MarketModuleVehicle   = "vehicle"
	MarketModuleProperty  = "property"
	MarketModuleFinancial = "financial"
	MarketModuleGeneral   = "general"
)

// ServiceType describes one bookable service kind. ServiceID is the stable
// external identifier and the upsert key; the slug may be renamed between
// catalog versions.
type ServiceType struct {
	ID                      uint       `gorm:"primaryKey" json:"id"`
	ServiceID               int        `gorm:"not null;uniqueIndex" json:"service_id" validate:"required,gt=0"`
	Name                    string     `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Slug                    string     `gorm:"type:varchar(150);not null;index" json:"slug" validate:"required,min=2,max=150"`
	Description             string     `gorm:"type:text" json:"description"`
	CategoryID              uint       `gorm:"not null;index" json:"category_id" validate:"required"`
	WorkflowCategory        string     `gorm:"type:varchar(100)" json:"workflow_category"`
	Permissions             StringList `gorm:"type:text" json:"permissions"`
	AllowedMarketModules    StringList `gorm:"type:text" json:"allowed_market_modules"`
	HasVehicleMarketAccess  bool       `gorm:"default:false" json:"has_vehicle_market_access"`
	HasPropertyMarketAccess bool       `gorm:"default:false" json:"has_property_market_access"`
	IsFinancialService      bool       `gorm:"default:false" json:"is_financial_service"`
	IsActive                bool       `gorm:"default:true" json:"is_active"`
	Order                   int        `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt               time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *ServiceType) Validate() error {
	v := validator.New()

	return v.Struct(s)
}
