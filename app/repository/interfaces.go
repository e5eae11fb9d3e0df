package repository

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the store contract for service categories.
// Lookups by natural key return ErrNotFound when no row matches.
type CategoryRepository interface {
	GetBySlug(slug string) (*models.ServiceCategory, error)
	GetAll() ([]models.ServiceCategory, error)
	Create(category *models.ServiceCategory) error
	Update(category *models.ServiceCategory) error
}

// ServiceTypeRepository defines the store contract for service types, keyed
// by the stable external service id.
type ServiceTypeRepository interface {
	GetByServiceID(serviceID int) (*models.ServiceType, error)
	GetAll() ([]models.ServiceType, error)
	Create(serviceType *models.ServiceType) error
	Update(serviceType *models.ServiceType) error
}

// ServicePermissionRepository defines the store contract for the denormalized
// permission projections.
type ServicePermissionRepository interface {
	GetByServiceID(serviceID int) (*models.ServicePermission, error)
	Create(permission *models.ServicePermission) error
	Update(permission *models.ServicePermission) error
}

// SettingRepository defines the store contract for platform settings.
type SettingRepository interface {
	GetByKey(key string) (*models.Setting, error)
	Create(setting *models.Setting) error
	Update(setting *models.Setting) error
}

// AccountRepository groups the stores touched when an account is
// bootstrapped: user, profile, subscription and wallet.
type AccountRepository interface {
	GetUserByPhone(phone string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error

	GetProfileByUserID(userID uint) (*models.Profile, error)
	CreateProfile(profile *models.Profile) error
	UpdateProfile(profile *models.Profile) error

	GetSubscriptionByUserID(userID uint) (*models.Subscription, error)
	CreateSubscription(subscription *models.Subscription) error
	UpdateSubscription(subscription *models.Subscription) error

	GetWalletByUserID(userID uint) (*models.Wallet, error)
	CreateWallet(wallet *models.Wallet) error
	UpdateWallet(wallet *models.Wallet) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Category          CategoryRepository
	ServiceType       ServiceTypeRepository
	ServicePermission ServicePermissionRepository
	Setting           SettingRepository
	Account           AccountRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Category:          NewCategoryRepository(db),
		ServiceType:       NewServiceTypeRepository(db),
		ServicePermission: NewServicePermissionRepository(db),
		Setting:           NewSettingRepository(db),
		Account:           NewAccountRepository(db),
	}
}
