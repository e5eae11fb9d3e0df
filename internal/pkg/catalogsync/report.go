package catalogsync

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind names an entity family in the run report.
type Kind string

const (
	KindCategories  Kind = "categories"
	KindServices    Kind = "service_types"
	KindPermissions Kind = "service_permissions"
	KindSettings    Kind = "settings"
	KindAccounts    Kind = "accounts"
)

// Counts aggregates outcomes for one entity kind.
type Counts struct {
	Created   int
	Updated   int
	Unchanged int
	Skipped   int
	Reasons   []string
}

// Report is the externally observable result of a full run. Add is safe for
// concurrent use by stage workers.
type Report struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	Elapsed    time.Duration
	Provenance map[Kind]string

	mu       sync.Mutex
	entities map[Kind]*Counts
}

func NewReport() *Report {
	return &Report{
		RunID:      uuid.New(),
		StartedAt:  time.Now(),
		Provenance: make(map[Kind]string),
		entities:   make(map[Kind]*Counts),
	}
}

// Add records one outcome under the given kind.
func (r *Report) Add(kind Kind, o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.entities[kind]
	if !ok {
		c = &Counts{}
		r.entities[kind] = c
	}

	switch o.Result {
	case ResultCreated:
		c.Created++
	case ResultUpdated:
		c.Updated++
	case ResultUnchanged:
		c.Unchanged++
	case ResultSkipped:
		c.Skipped++
		c.Reasons = append(c.Reasons, fmt.Sprintf("%s: %s", o.Key, o.Reason))
	}
}

// Counts returns a copy of the aggregated counts for one kind.
func (r *Report) Counts(kind Kind) Counts {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.entities[kind]
	if !ok {
		return Counts{}
	}
	out := *c
	out.Reasons = append([]string(nil), c.Reasons...)
	return out
}

// Kinds returns the entity kinds present in the report, sorted by name.
func (r *Report) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]Kind, 0, len(r.entities))
	for k := range r.entities {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Summary renders the report for the CLI.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sync run %s finished in %s\n", r.RunID, r.Elapsed.Round(time.Millisecond))
	for _, kind := range r.Kinds() {
		c := r.Counts(kind)
		fmt.Fprintf(&b, "  %-20s created=%d updated=%d unchanged=%d skipped=%d\n",
			kind, c.Created, c.Updated, c.Unchanged, c.Skipped)
		for _, reason := range c.Reasons {
			fmt.Fprintf(&b, "    skipped %s\n", reason)
		}
	}
	return b.String()
}
