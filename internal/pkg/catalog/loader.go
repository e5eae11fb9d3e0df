package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

//go:embed data/service_categories.json data/service_types.json
var defaults embed.FS

const (
	categoriesFile = "service_categories.json"
	servicesFile   = "service_types.json"
)

// Loader resolves logical source names to record batches. An empty override
// directory means embedded defaults only.
type Loader struct {
	dir      string
	validate *validator.Validate
}

// NewLoader creates a loader. dir is the external override directory
// (CATALOG_DIR); pass "" to use only the embedded defaults.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:      dir,
		validate: validator.New(),
	}
}

// Categories loads and validates the declared category set.
func (l *Loader) Categories() ([]CategoryRecord, []Invalid, Provenance, error) {
	var records []CategoryRecord
	prov, err := l.load(categoriesFile, &records)
	if err != nil {
		return nil, nil, prov, err
	}

	valid := records[:0]
	var invalid []Invalid
	for _, rec := range records {
		if err := l.validate.Struct(rec); err != nil {
			invalid = append(invalid, Invalid{Key: categoryKey(rec), Reason: err.Error()})
			continue
		}
		valid = append(valid, rec)
	}
	return valid, invalid, prov, nil
}

// Services loads and validates the declared service type set.
func (l *Loader) Services() ([]ServiceRecord, []Invalid, Provenance, error) {
	var records []ServiceRecord
	prov, err := l.load(servicesFile, &records)
	if err != nil {
		return nil, nil, prov, err
	}

	valid := records[:0]
	var invalid []Invalid
	for _, rec := range records {
		if err := l.validate.Struct(rec); err != nil {
			invalid = append(invalid, Invalid{Key: serviceKey(rec), Reason: err.Error()})
			continue
		}
		valid = append(valid, rec)
	}
	return valid, invalid, prov, nil
}

// load tries the external source first and falls back to the embedded
// default on any read or parse failure. Only a broken embedded default is an
// error; that means the binary itself is bad.
func (l *Loader) load(name string, out interface{}) (Provenance, error) {
	if l.dir != "" {
		path := filepath.Join(l.dir, name)
		raw, err := os.ReadFile(path)
		if err == nil {
			if jsonErr := json.Unmarshal(raw, out); jsonErr == nil {
				return ProvenanceExternal, nil
			} else {
				log.Printf("catalog: %s is malformed, falling back to embedded defaults: %v", path, jsonErr)
			}
		} else {
			log.Printf("catalog: %s not readable, falling back to embedded defaults: %v", path, err)
		}
	}

	raw, err := defaults.ReadFile("data/" + name)
	if err != nil {
		return ProvenanceDefault, fmt.Errorf("embedded catalog %s missing: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ProvenanceDefault, fmt.Errorf("embedded catalog %s malformed: %w", name, err)
	}
	return ProvenanceDefault, nil
}

func categoryKey(rec CategoryRecord) string {
	if rec.Slug != "" {
		return rec.Slug
	}
	return rec.Name
}

func serviceKey(rec ServiceRecord) string {
	if rec.ServiceID > 0 {
		return fmt.Sprintf("service-%d", rec.ServiceID)
	}
	return rec.Slug
}
