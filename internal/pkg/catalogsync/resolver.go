package catalogsync

import (
	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
)

// buildCategoryIndex scans all persisted categories and maps slug to row id.
// The index is rebuilt at every dependent stage entry because earlier stages
// of the same run may have created rows; it is never cached across stages.
func buildCategoryIndex(repo repository.CategoryRepository) (map[string]uint, error) {
	categories, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	index := make(map[string]uint, len(categories))
	for _, c := range categories {
		index[c.Slug] = c.ID
	}
	return index, nil
}

// buildServiceIndex scans all persisted service types and maps the stable
// external service id to the row id.
func buildServiceIndex(repo repository.ServiceTypeRepository) (map[int]uint, error) {
	serviceTypes, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	index := make(map[int]uint, len(serviceTypes))
	for _, s := range serviceTypes {
		index[s.ServiceID] = s.ID
	}
	return index, nil
}
