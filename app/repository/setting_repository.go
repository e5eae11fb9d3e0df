package repository

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"gorm.io/gorm"
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetByKey retrieves a setting by its key
func (r *settingRepository) GetByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	// Column is `setting_key` (see gorm tag in models.Setting)
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

// Create creates a new setting in the database
func (r *settingRepository) Create(setting *models.Setting) error {
	return translate(r.db.Create(setting).Error)
}

// Update persists changes to an existing setting
func (r *settingRepository) Update(setting *models.Setting) error {
	return translate(r.db.Save(setting).Error)
}
