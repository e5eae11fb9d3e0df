package repository

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"gorm.io/gorm"
)

// serviceTypeRepository implements the ServiceTypeRepository interface
type serviceTypeRepository struct {
	db *gorm.DB
}

// NewServiceTypeRepository creates a new service type repository instance
func NewServiceTypeRepository(db *gorm.DB) ServiceTypeRepository {
	return &serviceTypeRepository{db: db}
}

// GetByServiceID retrieves a service type by its stable external id
func (r *serviceTypeRepository) GetByServiceID(serviceID int) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.Where("service_id = ?", serviceID).First(&serviceType).Error
	if err != nil {
		return nil, translate(err)
	}
	return &serviceType, nil
}

// GetAll retrieves all service types
func (r *serviceTypeRepository) GetAll() ([]models.ServiceType, error) {
	var serviceTypes []models.ServiceType
	if err := r.db.Find(&serviceTypes).Error; err != nil {
		return nil, translate(err)
	}
	return serviceTypes, nil
}

// Create creates a new service type in the database
func (r *serviceTypeRepository) Create(serviceType *models.ServiceType) error {
	return translate(r.db.Create(serviceType).Error)
}

// Update persists changes to an existing service type
func (r *serviceTypeRepository) Update(serviceType *models.ServiceType) error {
	return translate(r.db.Save(serviceType).Error)
}
