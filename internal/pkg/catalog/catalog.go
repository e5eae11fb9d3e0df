// Package catalog loads the declarative reference data the sync engine
// reconciles against storage. Records come from an external override
// directory when one is configured and readable, otherwise from the embedded
// default catalog shipped with the binary.
package catalog

import "fmt"

// Provenance records where a batch of declared data came from.
type Provenance string

const (
	ProvenanceExternal Provenance = "external"
	ProvenanceDefault  Provenance = "default"
)

// CategoryRecord is the normalized declarative shape of one catalog category.
type CategoryRecord struct {
	Name        string `json:"name" validate:"required,min=2"`
	Slug        string `json:"slug" validate:"required,min=2"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
	ParentSlug  string `json:"parentSlug,omitempty"`
}

// ServiceRecord is the normalized declarative shape of one service type.
// Market modules are intentionally absent: they are derived from the three
// boolean flags during sync, never supplied by a source.
type ServiceRecord struct {
	ServiceID               int      `json:"serviceId" validate:"required,gt=0"`
	Name                    string   `json:"name" validate:"required,min=2"`
	Slug                    string   `json:"slug" validate:"required,min=2"`
	Description             string   `json:"description"`
	CategorySlug            string   `json:"categorySlug" validate:"required"`
	WorkflowCategory        string   `json:"workflowCategory"`
	Permissions             []string `json:"permissions"`
	HasVehicleMarketAccess  bool     `json:"hasVehicleMarketAccess"`
	HasPropertyMarketAccess bool     `json:"hasPropertyMarketAccess"`
	IsFinancialService      bool     `json:"isFinancialService"`
}

// Invalid describes a single record rejected during structural validation.
// The rest of the batch stays usable.
type Invalid struct {
	Key    string
	Reason string
}

func (i Invalid) String() string {
	return fmt.Sprintf("%s: %s", i.Key, i.Reason)
}
