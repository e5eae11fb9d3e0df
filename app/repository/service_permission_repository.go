package repository

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"gorm.io/gorm"
)

// servicePermissionRepository implements the ServicePermissionRepository interface
type servicePermissionRepository struct {
	db *gorm.DB
}

// NewServicePermissionRepository creates a new service permission repository instance
func NewServicePermissionRepository(db *gorm.DB) ServicePermissionRepository {
	return &servicePermissionRepository{db: db}
}

// GetByServiceID retrieves a permission projection by the stable service id
func (r *servicePermissionRepository) GetByServiceID(serviceID int) (*models.ServicePermission, error) {
	var permission models.ServicePermission
	err := r.db.Where("service_id = ?", serviceID).First(&permission).Error
	if err != nil {
		return nil, translate(err)
	}
	return &permission, nil
}

// Create creates a new permission projection in the database
func (r *servicePermissionRepository) Create(permission *models.ServicePermission) error {
	return translate(r.db.Create(permission).Error)
}

// Update persists changes to an existing permission projection
func (r *servicePermissionRepository) Update(permission *models.ServicePermission) error {
	return translate(r.db.Save(permission).Error)
}
