package catalogsync

import (
	"errors"
	"sync"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
)

// In-memory stores implementing the repository interfaces. They clone rows on
// the way in and out so engine-side mutation without Update never leaks into
// the store, mirroring a real database round trip.

var errWriteFailed = errors.New("write failed")

type fakeCategoryRepo struct {
	mu    sync.Mutex
	seq   uint
	rows  []*models.ServiceCategory
	errOn map[string]error // slug -> error returned by Create/Update
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{errOn: map[string]error{}}
}

func (r *fakeCategoryRepo) GetBySlug(slug string) (*models.ServiceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Slug == slug {
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCategoryRepo) GetAll() ([]models.ServiceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ServiceCategory, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(category *models.ServiceCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errOn[category.Slug]; err != nil {
		return err
	}
	r.seq++
	category.ID = r.seq
	clone := *category
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *fakeCategoryRepo) Update(category *models.ServiceCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errOn[category.Slug]; err != nil {
		return err
	}
	for i, row := range r.rows {
		if row.ID == category.ID {
			clone := *category
			r.rows[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeServiceTypeRepo struct {
	mu    sync.Mutex
	seq   uint
	rows  []*models.ServiceType
	errOn map[int]error
}

func newFakeServiceTypeRepo() *fakeServiceTypeRepo {
	return &fakeServiceTypeRepo{errOn: map[int]error{}}
}

func (r *fakeServiceTypeRepo) GetByServiceID(serviceID int) (*models.ServiceType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ServiceID == serviceID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeServiceTypeRepo) GetAll() ([]models.ServiceType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ServiceType, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeServiceTypeRepo) Create(serviceType *models.ServiceType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errOn[serviceType.ServiceID]; err != nil {
		return err
	}
	r.seq++
	serviceType.ID = r.seq
	clone := *serviceType
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *fakeServiceTypeRepo) Update(serviceType *models.ServiceType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errOn[serviceType.ServiceID]; err != nil {
		return err
	}
	for i, row := range r.rows {
		if row.ID == serviceType.ID {
			clone := *serviceType
			r.rows[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeServicePermissionRepo struct {
	mu   sync.Mutex
	seq  uint
	rows []*models.ServicePermission
}

func (r *fakeServicePermissionRepo) GetByServiceID(serviceID int) (*models.ServicePermission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ServiceID == serviceID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeServicePermissionRepo) Create(permission *models.ServicePermission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	permission.ID = r.seq
	clone := *permission
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *fakeServicePermissionRepo) Update(permission *models.ServicePermission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == permission.ID {
			clone := *permission
			r.rows[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSettingRepo struct {
	mu   sync.Mutex
	seq  uint
	rows []*models.Setting
}

func (r *fakeSettingRepo) GetByKey(key string) (*models.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Key == key {
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSettingRepo) Create(setting *models.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	setting.ID = r.seq
	clone := *setting
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *fakeSettingRepo) Update(setting *models.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == setting.ID {
			clone := *setting
			r.rows[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}
