// Package bootstrap provisions seed accounts: a user found or created by its
// stable external identity, plus profile, subscription and wallet as one
// unit. Subscription quota fields always come from the named tier's plan.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/entitlements"
	"golang.org/x/crypto/bcrypt"
)

// CredentialHasher is the credential-provisioning collaborator. The engine
// never stores or compares plaintext itself beyond handing it to Verify.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// BcryptHasher hashes with bcrypt at the default cost.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

func (BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Result classifies what one bootstrap call did to the account aggregate.
type Result string

const (
	ResultCreated   Result = "created"
	ResultUpdated   Result = "updated"
	ResultUnchanged Result = "unchanged"
)

// ProfileSeed carries the business/person metadata of a seed account.
type ProfileSeed struct {
	BusinessName        string
	BusinessDescription string
	YearsOfExperience   int
	Qualifications      []string
	Certifications      []string
	ServiceAreas        []string
	ServiceRadius       int
	Website             string
	Instagram           string
}

// AccountSeed declares one account to bootstrap. Phone is the primary
// natural key, email the secondary lookup.
type AccountSeed struct {
	Phone             string
	Email             string
	Password          string
	FirstName         string
	LastName          string
	DisplayName       string
	Role              string
	IsProvider        bool
	IsClient          bool
	VerificationLevel string
	Country           string
	CountryCode       string
	State             string
	City              string
	ContactPreference string
	Tier              entitlements.Tier
	WalletBalance     int64
	Profile           ProfileSeed
}

// Bootstrapper upserts account aggregates through the account store.
type Bootstrapper struct {
	accounts repository.AccountRepository
	hasher   CredentialHasher
}

func New(accounts repository.AccountRepository, hasher CredentialHasher) *Bootstrapper {
	return &Bootstrapper{accounts: accounts, hasher: hasher}
}

// Bootstrap finds or creates the user and brings profile, subscription and
// wallet in line with the seed. Identity fields (phone, email) are never
// rewritten on an existing user.
func (b *Bootstrapper) Bootstrap(seed AccountSeed) (Result, error) {
	plan, ok := entitlements.PlanFor(seed.Tier)
	if !ok {
		return "", fmt.Errorf("account %s: unknown tier %q", seed.Phone, seed.Tier)
	}

	user, createdUser, err := b.upsertUser(seed)
	if err != nil {
		return "", err
	}

	changedProfile, err := b.upsertProfile(user.ID, seed.Profile)
	if err != nil {
		return "", err
	}
	changedSubscription, err := b.upsertSubscription(user.ID, plan)
	if err != nil {
		return "", err
	}
	changedWallet, err := b.upsertWallet(user.ID, seed.WalletBalance)
	if err != nil {
		return "", err
	}

	switch {
	case createdUser:
		return ResultCreated, nil
	case changedProfile || changedSubscription || changedWallet:
		return ResultUpdated, nil
	default:
		return ResultUnchanged, nil
	}
}

func (b *Bootstrapper) upsertUser(seed AccountSeed) (*models.User, bool, error) {
	user, err := b.accounts.GetUserByPhone(seed.Phone)
	if err != nil && !repository.IsNotFound(err) {
		return nil, false, err
	}
	if user == nil {
		user, err = b.accounts.GetUserByEmail(seed.Email)
		if err != nil && !repository.IsNotFound(err) {
			return nil, false, err
		}
	}

	if user == nil {
		hash, err := b.hasher.Hash(seed.Password)
		if err != nil {
			return nil, false, fmt.Errorf("hashing credential for %s: %w", seed.Phone, err)
		}
		now := time.Now()
		user = &models.User{
			Phone:             seed.Phone,
			Email:             seed.Email,
			Password:          hash,
			FirstName:         seed.FirstName,
			LastName:          seed.LastName,
			DisplayName:       seed.DisplayName,
			Role:              seed.Role,
			Status:            models.StatusActive,
			IsProvider:        seed.IsProvider,
			IsClient:          seed.IsClient,
			EmailVerified:     true,
			EmailVerifiedAt:   &now,
			PhoneVerified:     true,
			PhoneVerifiedAt:   &now,
			VerificationLevel: seed.VerificationLevel,
			Country:           seed.Country,
			CountryCode:       seed.CountryCode,
			State:             seed.State,
			City:              seed.City,
			ContactPreference: seed.ContactPreference,
		}
		if err := b.accounts.CreateUser(user); err != nil {
			return nil, false, err
		}
		return user, true, nil
	}

	changed := false
	if user.FirstName != seed.FirstName {
		user.FirstName = seed.FirstName
		changed = true
	}
	if user.LastName != seed.LastName {
		user.LastName = seed.LastName
		changed = true
	}
	if user.DisplayName != seed.DisplayName {
		user.DisplayName = seed.DisplayName
		changed = true
	}
	if user.Role != seed.Role {
		user.Role = seed.Role
		changed = true
	}
	if user.Status != models.StatusActive {
		user.Status = models.StatusActive
		changed = true
	}
	if user.IsProvider != seed.IsProvider {
		user.IsProvider = seed.IsProvider
		changed = true
	}
	if user.IsClient != seed.IsClient {
		user.IsClient = seed.IsClient
		changed = true
	}
	if user.VerificationLevel != seed.VerificationLevel {
		user.VerificationLevel = seed.VerificationLevel
		changed = true
	}
	if !b.hasher.Verify(seed.Password, user.Password) {
		hash, err := b.hasher.Hash(seed.Password)
		if err != nil {
			return nil, false, fmt.Errorf("hashing credential for %s: %w", seed.Phone, err)
		}
		user.Password = hash
		changed = true
	}
	if changed {
		if err := b.accounts.UpdateUser(user); err != nil {
			return nil, false, err
		}
	}
	return user, false, nil
}

func (b *Bootstrapper) upsertProfile(userID uint, seed ProfileSeed) (bool, error) {
	profile, err := b.accounts.GetProfileByUserID(userID)
	if err != nil && !repository.IsNotFound(err) {
		return false, err
	}

	if profile == nil {
		profile = &models.Profile{
			UserID:              userID,
			BusinessName:        seed.BusinessName,
			BusinessDescription: seed.BusinessDescription,
			YearsOfExperience:   seed.YearsOfExperience,
			Qualifications:      seed.Qualifications,
			Certifications:      seed.Certifications,
			ServiceAreas:        seed.ServiceAreas,
			ServiceRadius:       seed.ServiceRadius,
			Website:             seed.Website,
			Instagram:           seed.Instagram,
		}
		return true, b.accounts.CreateProfile(profile)
	}

	if profile.BusinessName == seed.BusinessName &&
		profile.BusinessDescription == seed.BusinessDescription &&
		profile.YearsOfExperience == seed.YearsOfExperience {
		return false, nil
	}
	profile.BusinessName = seed.BusinessName
	profile.BusinessDescription = seed.BusinessDescription
	profile.YearsOfExperience = seed.YearsOfExperience
	return true, b.accounts.UpdateProfile(profile)
}

func (b *Bootstrapper) upsertSubscription(userID uint, plan entitlements.Plan) (bool, error) {
	subscription, err := b.accounts.GetSubscriptionByUserID(userID)
	if err != nil && !repository.IsNotFound(err) {
		return false, err
	}

	if subscription == nil {
		now := time.Now()
		subscription = &models.Subscription{
			UserID:    userID,
			Status:    models.SubscriptionStatusActive,
			StartDate: now,
		}
		applyPlan(subscription, plan)
		if plan.BillingCycle == "monthly" {
			end := now.AddDate(0, 1, 0)
			subscription.EndDate = &end
		}
		return true, b.accounts.CreateSubscription(subscription)
	}

	if subscriptionMatchesPlan(subscription, plan) && subscription.Status == models.SubscriptionStatusActive {
		return false, nil
	}
	// Tier changed or quotas drifted: recompute everything from the plan so
	// quota fields can never go stale.
	applyPlan(subscription, plan)
	subscription.Status = models.SubscriptionStatusActive
	return true, b.accounts.UpdateSubscription(subscription)
}

func (b *Bootstrapper) upsertWallet(userID uint, balance int64) (bool, error) {
	wallet, err := b.accounts.GetWalletByUserID(userID)
	if err != nil && !repository.IsNotFound(err) {
		return false, err
	}

	if wallet == nil {
		wallet = &models.Wallet{
			UserID:  userID,
			Balance: balance,
		}
		return true, b.accounts.CreateWallet(wallet)
	}
	// Existing balances belong to the user; a re-run never resets funds.
	return false, nil
}

func applyPlan(s *models.Subscription, plan entitlements.Plan) {
	s.Tier = string(plan.Tier)
	s.FreeServiceListings = plan.Quotas.ServiceListings
	s.FreeVehicleSlots = plan.Quotas.VehicleSlots
	s.FreePropertySlots = plan.Quotas.PropertySlots
	s.FreeProductSlots = plan.Quotas.ProductSlots
	s.FreeFeaturedPerMonth = plan.Quotas.FeaturedPerMonth
	s.Price = plan.Price
	s.Currency = plan.Currency
	s.BillingCycle = plan.BillingCycle
	s.ShowContactInfo = plan.Visibility.ContactInfo
	s.ShowPaymentInfo = plan.Visibility.PaymentInfo
	s.ShowExternalLinks = plan.Visibility.ExternalLinks
}

func subscriptionMatchesPlan(s *models.Subscription, plan entitlements.Plan) bool {
	return s.Tier == string(plan.Tier) &&
		s.FreeServiceListings == plan.Quotas.ServiceListings &&
		s.FreeVehicleSlots == plan.Quotas.VehicleSlots &&
		s.FreePropertySlots == plan.Quotas.PropertySlots &&
		s.FreeProductSlots == plan.Quotas.ProductSlots &&
		s.FreeFeaturedPerMonth == plan.Quotas.FeaturedPerMonth &&
		s.Price == plan.Price &&
		s.Currency == plan.Currency &&
		s.BillingCycle == plan.BillingCycle &&
		s.ShowContactInfo == plan.Visibility.ContactInfo &&
		s.ShowPaymentInfo == plan.Visibility.PaymentInfo &&
		s.ShowExternalLinks == plan.Visibility.ExternalLinks
}
