package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleUser       = "USER"
	RoleProvider   = "PROVIDER"
	RoleSuperAdmin = "SUPER_ADMIN"

	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusSuspended = "SUSPENDED"

	VerificationBasic    = "BASIC_VERIFIED"
	VerificationDocument = "DOCUMENT_VERIFIED"
	VerificationFull     = "FULLY_VERIFIED"
)

// User is a platform account. Phone is the primary natural key (asserted
// unique and mandatory); email is the secondary lookup. Both are identity
// fields and are never rewritten on an existing row.
type User struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Phone             string         `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone" validate:"required,min=7,max=20"`
	Email             string         `gorm:"type:varchar(200);not null;uniqueIndex" json:"email" validate:"required,email,min=5,max=200"`
	Password          string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	FirstName         string         `gorm:"type:varchar(100)" json:"first_name" validate:"required,max=100"`
	LastName          string         `gorm:"type:varchar(100)" json:"last_name" validate:"required,max=100"`
	DisplayName       string         `gorm:"type:varchar(150)" json:"display_name" validate:"max=150"`
	Role              string         `gorm:"type:varchar(50);default:'USER'" json:"role" validate:"oneof=USER PROVIDER SUPER_ADMIN"`
	Status            string         `gorm:"type:varchar(50);default:'ACTIVE'" json:"status" validate:"oneof=ACTIVE INACTIVE SUSPENDED"`
	IsProvider        bool           `gorm:"default:false" json:"is_provider"`
	IsClient          bool           `gorm:"default:false" json:"is_client"`
	EmailVerified     bool           `gorm:"default:false" json:"email_verified"`
	EmailVerifiedAt   *time.Time     `gorm:"type:timestamp;default:null" json:"-"`
	PhoneVerified     bool           `gorm:"default:false" json:"phone_verified"`
	PhoneVerifiedAt   *time.Time     `gorm:"type:timestamp;default:null" json:"-"`
	VerificationLevel string         `gorm:"type:varchar(50)" json:"verification_level"`
	Country           string         `gorm:"type:varchar(100)" json:"country"`
	CountryCode       string         `gorm:"type:varchar(5)" json:"country_code"`
	State             string         `gorm:"type:varchar(100)" json:"state"`
	City              string         `gorm:"type:varchar(100)" json:"city"`
	ContactPreference string         `gorm:"type:varchar(20)" json:"contact_preference"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

// IsActive reports whether the user status is active
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
