package catalogsync

import (
	"log"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
)

// MapPermissions translates an open set of permission strings into the
// closed tag vocabulary. Unrecognized tags map to the base provider tag;
// the original catalog sources were permissive here and records must not be
// rejected for it. Duplicates are collapsed, input order is preserved.
func MapPermissions(tags []string) []string {
	mapped := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, tag := range tags {
		normalized := tag
		switch tag {
		case models.PermVehicleMarketAccess,
			models.PermRealEstateMarketAccess,
			models.PermFinancialServices,
			models.PermServiceProvider:
		default:
			log.Printf("catalogsync: unknown permission tag %q mapped to %s", tag, models.PermServiceProvider)
			normalized = models.PermServiceProvider
		}
		if !seen[normalized] {
			seen[normalized] = true
			mapped = append(mapped, normalized)
		}
	}
	return mapped
}

// DeriveMarketModules computes the market modules a service participates in
// from its three boolean flags. The result is never empty: a service with no
// market access belongs to the general module.
func DeriveMarketModules(vehicle, property, financial bool) []string {
	var modules []string
	if vehicle {
		modules = append(modules, models.MarketModuleVehicle)
	}
	if property {
		modules = append(modules, models.MarketModuleProperty)
	}
	if financial {
		modules = append(modules, models.MarketModuleFinancial)
	}
	if len(modules) == 0 {
		modules = append(modules, models.MarketModuleGeneral)
	}
	return modules
}

// roleLabelFor picks the most specific provider role for the permission
// projection: financial before real estate before vehicle.
func roleLabelFor(vehicle, property, financial bool) string {
	switch {
	case financial:
		return models.RoleLabelFinancialProvider
	case property:
		return models.RoleLabelRealEstateProvider
	case vehicle:
		return models.RoleLabelVehicleProvider
	default:
		return ""
	}
}
