package bootstrap

import (
	"strings"
	"testing"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/entitlements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHasher makes credential material deterministic so idempotence can be
// asserted without bcrypt's per-call salting.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (fakeHasher) Verify(plain, hash string) bool    { return hash == "h:"+plain }

type fakeAccountRepo struct {
	seq           uint
	users         []*models.User
	profiles      []*models.Profile
	subscriptions []*models.Subscription
	wallets       []*models.Wallet
}

func (r *fakeAccountRepo) GetUserByPhone(phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAccountRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAccountRepo) CreateUser(user *models.User) error {
	r.seq++
	user.ID = r.seq
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeAccountRepo) UpdateUser(user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			clone := *user
			r.users[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAccountRepo) GetProfileByUserID(userID uint) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAccountRepo) CreateProfile(profile *models.Profile) error {
	r.seq++
	profile.ID = r.seq
	clone := *profile
	r.profiles = append(r.profiles, &clone)
	return nil
}

func (r *fakeAccountRepo) UpdateProfile(profile *models.Profile) error {
	for i, p := range r.profiles {
		if p.ID == profile.ID {
			clone := *profile
			r.profiles[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAccountRepo) GetSubscriptionByUserID(userID uint) (*models.Subscription, error) {
	for _, s := range r.subscriptions {
		if s.UserID == userID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAccountRepo) CreateSubscription(subscription *models.Subscription) error {
	r.seq++
	subscription.ID = r.seq
	clone := *subscription
	r.subscriptions = append(r.subscriptions, &clone)
	return nil
}

func (r *fakeAccountRepo) UpdateSubscription(subscription *models.Subscription) error {
	for i, s := range r.subscriptions {
		if s.ID == subscription.ID {
			clone := *subscription
			r.subscriptions[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAccountRepo) GetWalletByUserID(userID uint) (*models.Wallet, error) {
	for _, w := range r.wallets {
		if w.UserID == userID {
			clone := *w
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAccountRepo) CreateWallet(wallet *models.Wallet) error {
	r.seq++
	wallet.ID = r.seq
	clone := *wallet
	r.wallets = append(r.wallets, &clone)
	return nil
}

func (r *fakeAccountRepo) UpdateWallet(wallet *models.Wallet) error {
	for i, w := range r.wallets {
		if w.ID == wallet.ID {
			clone := *wallet
			r.wallets[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func providerSeed() AccountSeed {
	return AccountSeed{
		Phone:             "+2348100000001",
		Email:             "provider@test.servicehub.ng",
		Password:          "Provider123!",
		FirstName:         "Chidi",
		LastName:          "Okonkwo",
		DisplayName:       "Chidi Auto Services",
		Role:              models.RoleProvider,
		IsProvider:        true,
		IsClient:          true,
		VerificationLevel: models.VerificationBasic,
		Tier:              entitlements.TierBase,
		WalletBalance:     15000,
		Profile: ProfileSeed{
			BusinessName:      "Chidi Auto Services",
			YearsOfExperience: 10,
		},
	}
}

func TestBootstrapCreatesFullAggregate(t *testing.T) {
	repo := &fakeAccountRepo{}
	b := New(repo, fakeHasher{})

	result, err := b.Bootstrap(providerSeed())
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, result)

	user, err := repo.GetUserByPhone("+2348100000001")
	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, user.Role)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.True(t, user.EmailVerified)
	assert.True(t, user.PhoneVerified)
	assert.Equal(t, "h:Provider123!", user.Password)

	profile, err := repo.GetProfileByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chidi Auto Services", profile.BusinessName)

	subscription, err := repo.GetSubscriptionByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "BASE", subscription.Tier)
	assert.Equal(t, 5, subscription.FreeServiceListings)
	assert.Equal(t, 1, subscription.FreeFeaturedPerMonth)
	assert.Equal(t, int64(2500), subscription.Price)
	assert.True(t, subscription.ShowContactInfo)
	assert.False(t, subscription.ShowPaymentInfo)
	require.NotNil(t, subscription.EndDate)

	wallet, err := repo.GetWalletByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), wallet.Balance)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	repo := &fakeAccountRepo{}
	b := New(repo, fakeHasher{})

	_, err := b.Bootstrap(providerSeed())
	require.NoError(t, err)

	result, err := b.Bootstrap(providerSeed())
	require.NoError(t, err)
	assert.Equal(t, ResultUnchanged, result)

	require.Len(t, repo.users, 1)
	require.Len(t, repo.profiles, 1)
	require.Len(t, repo.subscriptions, 1)
	require.Len(t, repo.wallets, 1)
}

func TestBootstrapTierChangeRecomputesSubscription(t *testing.T) {
	repo := &fakeAccountRepo{}
	b := New(repo, fakeHasher{})

	_, err := b.Bootstrap(providerSeed())
	require.NoError(t, err)

	upgraded := providerSeed()
	upgraded.Tier = entitlements.TierTop
	result, err := b.Bootstrap(upgraded)
	require.NoError(t, err)
	assert.Equal(t, ResultUpdated, result)

	user, err := repo.GetUserByPhone("+2348100000001")
	require.NoError(t, err)
	subscription, err := repo.GetSubscriptionByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "TOP", subscription.Tier)
	assert.Equal(t, entitlements.Unlimited, subscription.FreeServiceListings)
	assert.Equal(t, entitlements.Unlimited, subscription.FreeProductSlots)
	assert.Equal(t, 10, subscription.FreeFeaturedPerMonth)
	assert.Equal(t, int64(10000), subscription.Price)
	assert.True(t, subscription.ShowPaymentInfo)

	require.Len(t, repo.subscriptions, 1)
}

func TestBootstrapUnknownTierFails(t *testing.T) {
	repo := &fakeAccountRepo{}
	b := New(repo, fakeHasher{})

	seed := providerSeed()
	seed.Tier = "PLATINUM"
	_, err := b.Bootstrap(seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tier")
	assert.Empty(t, repo.users)
}

func TestBootstrapFindsUserByEmailAndKeepsIdentity(t *testing.T) {
	repo := &fakeAccountRepo{}
	require.NoError(t, repo.CreateUser(&models.User{
		Phone:    "+2348199999999",
		Email:    "provider@test.servicehub.ng",
		Password: "h:Provider123!",
		Role:     models.RoleUser,
		Status:   models.StatusActive,
	}))

	b := New(repo, fakeHasher{})
	result, err := b.Bootstrap(providerSeed())
	require.NoError(t, err)
	assert.Equal(t, ResultUpdated, result)

	// The stored phone is authoritative; the seed never rewrites identity.
	user, err := repo.GetUserByEmail("provider@test.servicehub.ng")
	require.NoError(t, err)
	assert.Equal(t, "+2348199999999", user.Phone)
	assert.Equal(t, models.RoleProvider, user.Role)
	require.Len(t, repo.users, 1)
}

func TestBootstrapDoesNotResetWalletBalance(t *testing.T) {
	repo := &fakeAccountRepo{}
	b := New(repo, fakeHasher{})

	_, err := b.Bootstrap(providerSeed())
	require.NoError(t, err)

	user, err := repo.GetUserByPhone("+2348100000001")
	require.NoError(t, err)
	wallet, err := repo.GetWalletByUserID(user.ID)
	require.NoError(t, err)
	wallet.Balance = 99000
	require.NoError(t, repo.UpdateWallet(wallet))

	_, err = b.Bootstrap(providerSeed())
	require.NoError(t, err)

	wallet, err = repo.GetWalletByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(99000), wallet.Balance)
}

func TestBootstrapNeverStoresPlaintext(t *testing.T) {
	repo := &fakeAccountRepo{}
	b := New(repo, BcryptHasher{})

	seed := providerSeed()
	_, err := b.Bootstrap(seed)
	require.NoError(t, err)

	user, err := repo.GetUserByPhone(seed.Phone)
	require.NoError(t, err)
	assert.NotEqual(t, seed.Password, user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))
	assert.True(t, BcryptHasher{}.Verify(seed.Password, user.Password))
}

func TestDefaultAccountsAreWellFormed(t *testing.T) {
	accounts := DefaultAccounts()
	require.Len(t, accounts, 6)

	phones := make(map[string]bool)
	for _, seed := range accounts {
		assert.NotEmpty(t, seed.Phone)
		assert.NotEmpty(t, seed.Email)
		assert.NotEmpty(t, seed.Password)
		assert.False(t, phones[seed.Phone], "duplicate phone %s", seed.Phone)
		phones[seed.Phone] = true

		_, ok := entitlements.PlanFor(seed.Tier)
		assert.True(t, ok, "account %s has unknown tier %s", seed.Phone, seed.Tier)
	}

	assert.Equal(t, models.RoleSuperAdmin, accounts[0].Role)
}
