package repository

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// GetBySlug retrieves a category by its slug
func (r *categoryRepository) GetBySlug(slug string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// GetAll retrieves all categories
func (r *categoryRepository) GetAll() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

// Create creates a new category in the database
func (r *categoryRepository) Create(category *models.ServiceCategory) error {
	return translate(r.db.Create(category).Error)
}

// Update persists changes to an existing category
func (r *categoryRepository) Update(category *models.ServiceCategory) error {
	return translate(r.db.Save(category).Error)
}
