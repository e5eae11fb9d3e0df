package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ServiceCategory is a node in the hierarchical service catalog. The slug is
// the natural key: it identifies the category across repeated syncs and is
// never rewritten once the row exists.
type ServiceCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Slug        string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"slug" validate:"required,min=2,max=150"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(100)" json:"icon"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *ServiceCategory) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
