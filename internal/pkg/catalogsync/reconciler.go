package catalogsync

import (
	"fmt"
	"log"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/catalog"
)

// storeOutcome converts a storage error into either a per-record skip (batch
// continues) or a fatal error (connection-level failure, run aborts).
func storeOutcome(key string, err error) (Outcome, error) {
	if repository.IsUnavailable(err) {
		return Outcome{}, err
	}
	log.Printf("catalogsync: %s: storage error: %v", key, err)
	return skipped(key, ReasonStorageError), nil
}

// reconcileCategory upserts one category by slug. Only display fields are
// written on update; the slug is the identity anchor and stays untouched.
// Parent links are resolved in a separate pass after the whole stage commits.
func (e *Engine) reconcileCategory(rec catalog.CategoryRecord) (Outcome, error) {
	existing, err := e.repos.Category.GetBySlug(rec.Slug)
	if err != nil && !repository.IsNotFound(err) {
		return storeOutcome(rec.Slug, err)
	}

	if existing == nil {
		category := &models.ServiceCategory{
			Name:        rec.Name,
			Slug:        rec.Slug,
			Description: rec.Description,
			Icon:        rec.Icon,
			Image:       rec.Image,
			Order:       rec.Order,
			IsActive:    rec.IsActive,
		}
		if err := e.repos.Category.Create(category); err != nil {
			return storeOutcome(rec.Slug, err)
		}
		return created(rec.Slug), nil
	}

	if existing.Name == rec.Name &&
		existing.Description == rec.Description &&
		existing.Icon == rec.Icon &&
		existing.Image == rec.Image &&
		existing.Order == rec.Order &&
		existing.IsActive == rec.IsActive {
		return unchanged(rec.Slug), nil
	}

	existing.Name = rec.Name
	existing.Description = rec.Description
	existing.Icon = rec.Icon
	existing.Image = rec.Image
	existing.Order = rec.Order
	existing.IsActive = rec.IsActive
	if err := e.repos.Category.Update(existing); err != nil {
		return storeOutcome(rec.Slug, err)
	}
	return updated(rec.Slug), nil
}

// linkCategoryParents resolves parent slugs against the freshly committed
// category set. Only real link changes write; an unresolvable parent leaves
// the category standing and is reported as a skip.
func (e *Engine) linkCategoryParents(records []catalog.CategoryRecord, report *Report) error {
	index, err := buildCategoryIndex(e.repos.Category)
	if err != nil {
		return fmt.Errorf("rebuilding category index: %w", err)
	}

	for _, rec := range records {
		if rec.ParentSlug == "" {
			continue
		}
		parentID, ok := index[rec.ParentSlug]
		if !ok {
			report.Add(KindCategories, skipped(rec.Slug, ReasonUnresolvedParent))
			continue
		}
		child, err := e.repos.Category.GetBySlug(rec.Slug)
		if err != nil {
			if repository.IsUnavailable(err) {
				return err
			}
			// Row may have been skipped earlier in this run.
			continue
		}
		if child.ParentID != nil && *child.ParentID == parentID {
			continue
		}
		child.ParentID = &parentID
		if err := e.repos.Category.Update(child); err != nil {
			if repository.IsUnavailable(err) {
				return err
			}
			report.Add(KindCategories, skipped(rec.Slug, ReasonStorageError))
			continue
		}
		report.Add(KindCategories, updated(rec.Slug))
	}
	return nil
}

// reconcileService upserts one service type by its stable external id. The
// category reference must resolve through the index snapshot taken at stage
// entry; otherwise the record is skipped and siblings continue.
func (e *Engine) reconcileService(rec catalog.ServiceRecord, categoryIndex map[string]uint) (Outcome, error) {
	key := fmt.Sprintf("service-%d", rec.ServiceID)

	categoryID, ok := categoryIndex[rec.CategorySlug]
	if !ok {
		return skipped(key, ReasonUnresolvedReference), nil
	}

	permissions := MapPermissions(rec.Permissions)
	modules := DeriveMarketModules(rec.HasVehicleMarketAccess, rec.HasPropertyMarketAccess, rec.IsFinancialService)

	existing, err := e.repos.ServiceType.GetByServiceID(rec.ServiceID)
	if err != nil && !repository.IsNotFound(err) {
		return storeOutcome(key, err)
	}

	if existing == nil {
		serviceType := &models.ServiceType{
			ServiceID:               rec.ServiceID,
			Name:                    rec.Name,
			Slug:                    rec.Slug,
			Description:             rec.Description,
			CategoryID:              categoryID,
			WorkflowCategory:        rec.WorkflowCategory,
			Permissions:             permissions,
			AllowedMarketModules:    modules,
			HasVehicleMarketAccess:  rec.HasVehicleMarketAccess,
			HasPropertyMarketAccess: rec.HasPropertyMarketAccess,
			IsFinancialService:      rec.IsFinancialService,
			IsActive:                true,
			Order:                   rec.ServiceID,
		}
		if err := e.repos.ServiceType.Create(serviceType); err != nil {
			return storeOutcome(key, err)
		}
		return created(key), nil
	}

	if existing.Name == rec.Name &&
		existing.Slug == rec.Slug &&
		existing.Description == rec.Description &&
		existing.CategoryID == categoryID &&
		existing.WorkflowCategory == rec.WorkflowCategory &&
		stringsEqual(existing.Permissions, permissions) &&
		stringsEqual(existing.AllowedMarketModules, modules) &&
		existing.HasVehicleMarketAccess == rec.HasVehicleMarketAccess &&
		existing.HasPropertyMarketAccess == rec.HasPropertyMarketAccess &&
		existing.IsFinancialService == rec.IsFinancialService &&
		existing.IsActive &&
		existing.Order == rec.ServiceID {
		return unchanged(key), nil
	}

	existing.Name = rec.Name
	existing.Slug = rec.Slug
	existing.Description = rec.Description
	existing.CategoryID = categoryID
	existing.WorkflowCategory = rec.WorkflowCategory
	existing.Permissions = permissions
	existing.AllowedMarketModules = modules
	existing.HasVehicleMarketAccess = rec.HasVehicleMarketAccess
	existing.HasPropertyMarketAccess = rec.HasPropertyMarketAccess
	existing.IsFinancialService = rec.IsFinancialService
	existing.IsActive = true
	existing.Order = rec.ServiceID
	if err := e.repos.ServiceType.Update(existing); err != nil {
		return storeOutcome(key, err)
	}
	return updated(key), nil
}

// reconcilePermission upserts the denormalized projection for one
// market-access or financial service type.
func (e *Engine) reconcilePermission(rec catalog.ServiceRecord, serviceIndex map[int]uint) (Outcome, error) {
	key := fmt.Sprintf("service-%d", rec.ServiceID)

	serviceTypeID, ok := serviceIndex[rec.ServiceID]
	if !ok {
		// The service type itself was skipped earlier in this run.
		return skipped(key, ReasonUnresolvedReference), nil
	}

	desired := &models.ServicePermission{
		ServiceID:            rec.ServiceID,
		ServiceTypeID:        serviceTypeID,
		CanListVehicles:      rec.HasVehicleMarketAccess,
		CanListProperties:    rec.HasPropertyMarketAccess,
		IsFinancialProvider:  rec.IsFinancialService,
		IsRealEstateProvider: rec.HasPropertyMarketAccess,
		IsVehicleProvider:    rec.HasVehicleMarketAccess,
		RoleLabel:            roleLabelFor(rec.HasVehicleMarketAccess, rec.HasPropertyMarketAccess, rec.IsFinancialService),
	}

	existing, err := e.repos.ServicePermission.GetByServiceID(rec.ServiceID)
	if err != nil && !repository.IsNotFound(err) {
		return storeOutcome(key, err)
	}

	if existing == nil {
		if err := e.repos.ServicePermission.Create(desired); err != nil {
			return storeOutcome(key, err)
		}
		return created(key), nil
	}

	if existing.ServiceTypeID == desired.ServiceTypeID &&
		existing.CanListVehicles == desired.CanListVehicles &&
		existing.CanListProperties == desired.CanListProperties &&
		existing.IsFinancialProvider == desired.IsFinancialProvider &&
		existing.IsRealEstateProvider == desired.IsRealEstateProvider &&
		existing.IsVehicleProvider == desired.IsVehicleProvider &&
		existing.RoleLabel == desired.RoleLabel {
		return unchanged(key), nil
	}

	existing.ServiceTypeID = desired.ServiceTypeID
	existing.CanListVehicles = desired.CanListVehicles
	existing.CanListProperties = desired.CanListProperties
	existing.IsFinancialProvider = desired.IsFinancialProvider
	existing.IsRealEstateProvider = desired.IsRealEstateProvider
	existing.IsVehicleProvider = desired.IsVehicleProvider
	existing.RoleLabel = desired.RoleLabel
	if err := e.repos.ServicePermission.Update(existing); err != nil {
		return storeOutcome(key, err)
	}
	return updated(key), nil
}

// reconcileSetting upserts one settings document by key. Values are compared
// as their marshaled JSON; encoding/json emits map keys sorted, so the
// comparison is deterministic.
func (e *Engine) reconcileSetting(rec settingRecord) (Outcome, error) {
	value, err := rec.marshalValue()
	if err != nil {
		log.Printf("catalogsync: setting %s: %v", rec.Key, err)
		return skipped(rec.Key, ReasonInvalidRecord), nil
	}

	existing, err := e.repos.Setting.GetByKey(rec.Key)
	if err != nil && !repository.IsNotFound(err) {
		return storeOutcome(rec.Key, err)
	}

	if existing == nil {
		setting := &models.Setting{
			Key:         rec.Key,
			Value:       value,
			Description: rec.Description,
		}
		if err := e.repos.Setting.Create(setting); err != nil {
			return storeOutcome(rec.Key, err)
		}
		return created(rec.Key), nil
	}

	if existing.Value == value && existing.Description == rec.Description {
		return unchanged(rec.Key), nil
	}

	existing.Value = value
	existing.Description = rec.Description
	if err := e.repos.Setting.Update(existing); err != nil {
		return storeOutcome(rec.Key, err)
	}
	return updated(rec.Key), nil
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
