package repository

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"gorm.io/gorm"
)

// accountRepository implements the AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// GetUserByPhone retrieves a user by their phone number
func (r *accountRepository) GetUserByPhone(phone string) (*models.User, error) {
	var user models.User
	err := r.db.Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email address
func (r *accountRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateUser creates a new user in the database
func (r *accountRepository) CreateUser(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

// UpdateUser persists changes to an existing user
func (r *accountRepository) UpdateUser(user *models.User) error {
	return translate(r.db.Save(user).Error)
}

// GetProfileByUserID retrieves the profile owned by the given user
func (r *accountRepository) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// CreateProfile creates a new profile in the database
func (r *accountRepository) CreateProfile(profile *models.Profile) error {
	return translate(r.db.Create(profile).Error)
}

// UpdateProfile persists changes to an existing profile
func (r *accountRepository) UpdateProfile(profile *models.Profile) error {
	return translate(r.db.Save(profile).Error)
}

// GetSubscriptionByUserID retrieves the subscription owned by the given user
func (r *accountRepository) GetSubscriptionByUserID(userID uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("user_id = ?", userID).First(&subscription).Error
	if err != nil {
		return nil, translate(err)
	}
	return &subscription, nil
}

// CreateSubscription creates a new subscription in the database
func (r *accountRepository) CreateSubscription(subscription *models.Subscription) error {
	return translate(r.db.Create(subscription).Error)
}

// UpdateSubscription persists changes to an existing subscription
func (r *accountRepository) UpdateSubscription(subscription *models.Subscription) error {
	return translate(r.db.Save(subscription).Error)
}

// GetWalletByUserID retrieves the wallet owned by the given user
func (r *accountRepository) GetWalletByUserID(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		return nil, translate(err)
	}
	return &wallet, nil
}

// CreateWallet creates a new wallet in the database
func (r *accountRepository) CreateWallet(wallet *models.Wallet) error {
	return translate(r.db.Create(wallet).Error)
}

// UpdateWallet persists changes to an existing wallet
func (r *accountRepository) UpdateWallet(wallet *models.Wallet) error {
	return translate(r.db.Save(wallet).Error)
}
