package catalogsync

import (
	"testing"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/stretchr/testify/assert"
)

func TestMapPermissions(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			"Known tags pass through",
			[]string{"REAL_ESTATE_MARKET_ACCESS", "SERVICE_PROVIDER"},
			[]string{"REAL_ESTATE_MARKET_ACCESS", "SERVICE_PROVIDER"},
		},
		{
			"Unknown tag maps to base provider",
			[]string{"SUPER_SELLER"},
			[]string{"SERVICE_PROVIDER"},
		},
		{
			"Duplicates collapse",
			[]string{"SERVICE_PROVIDER", "WHATEVER", "SERVICE_PROVIDER"},
			[]string{"SERVICE_PROVIDER"},
		},
		{
			"All known tags",
			[]string{"VEHICLE_MARKET_ACCESS", "REAL_ESTATE_MARKET_ACCESS", "FINANCIAL_SERVICES", "SERVICE_PROVIDER"},
			[]string{"VEHICLE_MARKET_ACCESS", "REAL_ESTATE_MARKET_ACCESS", "FINANCIAL_SERVICES", "SERVICE_PROVIDER"},
		},
		{
			"Empty input",
			nil,
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapPermissions(tt.input))
		})
	}
}

func TestDeriveMarketModulesIsTotal(t *testing.T) {
	// Every flag combination must yield a non-empty set, and "general"
	// appears exactly when no flag is set.
	for _, vehicle := range []bool{false, true} {
		for _, property := range []bool{false, true} {
			for _, financial := range []bool{false, true} {
				modules := DeriveMarketModules(vehicle, property, financial)

				assert.NotEmpty(t, modules)
				if !vehicle && !property && !financial {
					assert.Equal(t, []string{models.MarketModuleGeneral}, modules)
				} else {
					assert.NotContains(t, modules, models.MarketModuleGeneral)
				}
				assert.Equal(t, vehicle, contains(modules, models.MarketModuleVehicle))
				assert.Equal(t, property, contains(modules, models.MarketModuleProperty))
				assert.Equal(t, financial, contains(modules, models.MarketModuleFinancial))
			}
		}
	}
}

func TestRoleLabelPrecedence(t *testing.T) {
	assert.Equal(t, models.RoleLabelFinancialProvider, roleLabelFor(true, true, true))
	assert.Equal(t, models.RoleLabelRealEstateProvider, roleLabelFor(true, true, false))
	assert.Equal(t, models.RoleLabelVehicleProvider, roleLabelFor(true, false, false))
	assert.Equal(t, "", roleLabelFor(false, false, false))
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
