package bootstrap

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/entitlements"
)

// DefaultAccounts returns the seed accounts provisioned on every sync run:
// the platform admin plus one test account per provider archetype, covering
// all four tiers.
func DefaultAccounts() []AccountSeed {
	return []AccountSeed{
		{
			Phone:             "+2348000000001",
			Email:             "admin@servicehub.ng",
			Password:          "Admin123!",
			FirstName:         "ServiceHub",
			LastName:          "Admin",
			DisplayName:       "ServiceHub Admin",
			Role:              models.RoleSuperAdmin,
			VerificationLevel: models.VerificationFull,
			Country:           "Nigeria",
			CountryCode:       "NG",
			State:             "Federal Capital Territory",
			City:              "Abuja",
			Tier:              entitlements.TierFree,
			Profile: ProfileSeed{
				BusinessName:        "ServiceHub Platform",
				BusinessDescription: "Platform administration",
			},
		},
		{
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
			Country:           "Nigeria",
			CountryCode:       "NG",
			State:             "Lagos",
			City:              "Ikeja",
			ContactPreference: "ALL",
			Tier:              entitlements.TierBase,
			WalletBalance:     15000,
			Profile: ProfileSeed{
				BusinessName:        "Chidi Auto Services",
				BusinessDescription: "Professional auto mechanic with 10 years of experience.",
				YearsOfExperience:   10,
				Qualifications:      []string{"ASE Certified", "Toyota Certified Technician"},
				Certifications:      []string{"Engine Diagnostics", "Electrical Systems"},
				ServiceAreas:        []string{"Ikeja", "Victoria Island", "Lekki", "Surulere"},
				ServiceRadius:       25,
			},
		},
		{
			Phone:             "+2348100000002",
			Email:             "client@test.servicehub.ng",
			Password:          "Client123!",
			FirstName:         "Amina",
			LastName:          "Bello",
			DisplayName:       "Amina Bello",
			Role:              models.RoleUser,
			IsClient:          true,
			VerificationLevel: models.VerificationBasic,
			Country:           "Nigeria",
			CountryCode:       "NG",
			State:             "Lagos",
			City:              "Lekki",
			ContactPreference: "WHATSAPP",
			Tier:              entitlements.TierFree,
		},
		{
			Phone:             "+2348100000003",
			Email:             "dealer@test.servicehub.ng",
			Password:          "Dealer123!",
			FirstName:         "Emeka",
			LastName:          "Nwachukwu",
			DisplayName:       "Emeka Motors",
			Role:              models.RoleProvider,
			IsProvider:        true,
			IsClient:          true,
			VerificationLevel: models.VerificationDocument,
			Country:           "Nigeria",
			CountryCode:       "NG",
			State:             "Lagos",
			City:              "Lekki",
			ContactPreference: "ALL",
			Tier:              entitlements.TierMid,
			WalletBalance:     50000,
			Profile: ProfileSeed{
				BusinessName:        "Emeka Motors",
				BusinessDescription: "Premium vehicle dealership specializing in foreign used and brand new vehicles.",
				YearsOfExperience:   15,
				Qualifications:      []string{"Licensed Vehicle Dealer"},
				Certifications:      []string{"CAC Registered", "SON Certified"},
				ServiceAreas:        []string{"Lagos", "Abuja", "Port Harcourt"},
				Website:             "https://emekamotors.ng",
				Instagram:           "@emekamotors",
			},
		},
		{
			Phone:             "+2348100000004",
			Email:             "agent@test.servicehub.ng",
			Password:          "Agent123!",
			FirstName:         "Funke",
			LastName:          "Adeyemi",
			DisplayName:       "Funke Properties",
			Role:              models.RoleProvider,
			IsProvider:        true,
			IsClient:          true,
			VerificationLevel: models.VerificationFull,
			Country:           "Nigeria",
			CountryCode:       "NG",
			State:             "Lagos",
			City:              "Victoria Island",
			ContactPreference: "ALL",
			Tier:              entitlements.TierTop,
			WalletBalance:     100000,
			Profile: ProfileSeed{
				BusinessName:        "Funke Properties",
				BusinessDescription: "Premier real estate agency in Lagos specializing in luxury apartments, commercial properties and land.",
				YearsOfExperience:   12,
				Qualifications:      []string{"Licensed Real Estate Agent", "NIESV Member"},
				Certifications:      []string{"CAC Registered", "Lagos State Licensed"},
				ServiceAreas:        []string{"Victoria Island", "Lekki", "Ikoyi", "Abuja"},
				Website:             "https://funkeproperties.com",
				Instagram:           "@funkeproperties",
			},
		},
		{
			Phone:             "+2348100000005",
			Email:             "finance@test.servicehub.ng",
			Password:          "Finance123!",
			FirstName:         "Oluwaseun",
			LastName:          "Akinwale",
			DisplayName:       "SafeGuard Insurance",
			Role:              models.RoleProvider,
			IsProvider:        true,
			VerificationLevel: models.VerificationFull,
			Country:           "Nigeria",
			CountryCode:       "NG",
			State:             "Lagos",
			City:              "Lagos Island",
			ContactPreference: "CALL",
			Tier:              entitlements.TierMid,
			Profile: ProfileSeed{
				BusinessName:        "SafeGuard Insurance Services",
				BusinessDescription: "Licensed insurance brokerage providing comprehensive coverage for vehicles, properties and health.",
				YearsOfExperience:   20,
				Qualifications:      []string{"NAICOM Licensed", "Chartered Insurance Institute"},
				Certifications:      []string{"NAICOM Registered", "CAC Registered"},
				ServiceAreas:        []string{"Lagos", "Abuja", "Port Harcourt", "Kano", "Ibadan"},
				Website:             "https://safeguardinsurance.ng",
			},
		},
	}
}
