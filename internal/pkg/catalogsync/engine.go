package catalogsync

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/bootstrap"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/catalog"
)

const defaultWorkers = 4

// Engine runs one full synchronization: categories, service types,
// permission projections, settings, then seed accounts. Stages run strictly
// in that order; records within a stage are reconciled by a worker pool.
type Engine struct {
	repos    *repository.Repositories
	loader   *catalog.Loader
	hasher   bootstrap.CredentialHasher
	accounts []bootstrap.AccountSeed
	workers  int
}

// New creates an engine over the given stores and catalog loader.
func New(repos *repository.Repositories, loader *catalog.Loader, workers int) *Engine {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Engine{
		repos:    repos,
		loader:   loader,
		hasher:   bootstrap.BcryptHasher{},
		accounts: bootstrap.DefaultAccounts(),
		workers:  workers,
	}
}

// Run executes all stages and always returns a report, even on abort.
// A non-nil error means the fatal storage class was hit or the context was
// canceled; everything reconciled before that stays committed.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	report := NewReport()
	start := time.Now()
	defer func() {
		report.Elapsed = time.Since(start)
	}()

	if err := e.runCategories(ctx, report); err != nil {
		return report, err
	}
	services, err := e.runServices(ctx, report)
	if err != nil {
		return report, err
	}
	if err := e.runPermissions(ctx, report, services); err != nil {
		return report, err
	}
	if err := e.runSettings(ctx, report); err != nil {
		return report, err
	}
	if err := e.runAccounts(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

func (e *Engine) runCategories(ctx context.Context, report *Report) error {
	records, invalid, prov, err := e.loader.Categories()
	if err != nil {
		return err
	}
	report.Provenance[KindCategories] = string(prov)
	log.Printf("catalogsync: loaded %d categories (%s source)", len(records), prov)
	for _, iv := range invalid {
		log.Printf("catalogsync: category rejected: %s", iv)
		report.Add(KindCategories, skipped(iv.Key, ReasonInvalidRecord))
	}

	err = e.runStage(ctx, KindCategories, len(records), report, func(i int) (Outcome, error) {
		return e.reconcileCategory(records[i])
	})
	if err != nil {
		return err
	}
	return e.linkCategoryParents(records, report)
}

func (e *Engine) runServices(ctx context.Context, report *Report) ([]catalog.ServiceRecord, error) {
	records, invalid, prov, err := e.loader.Services()
	if err != nil {
		return nil, err
	}
	report.Provenance[KindServices] = string(prov)
	log.Printf("catalogsync: loaded %d service types (%s source)", len(records), prov)
	for _, iv := range invalid {
		log.Printf("catalogsync: service type rejected: %s", iv)
		report.Add(KindServices, skipped(iv.Key, ReasonInvalidRecord))
	}

	// Snapshot taken after the category stage committed; consistent for the
	// whole stage even when workers run concurrently.
	categoryIndex, err := buildCategoryIndex(e.repos.Category)
	if err != nil {
		return nil, fmt.Errorf("building category index: %w", err)
	}

	err = e.runStage(ctx, KindServices, len(records), report, func(i int) (Outcome, error) {
		return e.reconcileService(records[i], categoryIndex)
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (e *Engine) runPermissions(ctx context.Context, report *Report, services []catalog.ServiceRecord) error {
	var flagged []catalog.ServiceRecord
	for _, rec := range services {
		if rec.HasVehicleMarketAccess || rec.HasPropertyMarketAccess || rec.IsFinancialService {
			flagged = append(flagged, rec)
		}
	}

	serviceIndex, err := buildServiceIndex(e.repos.ServiceType)
	if err != nil {
		return fmt.Errorf("building service index: %w", err)
	}

	return e.runStage(ctx, KindPermissions, len(flagged), report, func(i int) (Outcome, error) {
		return e.reconcilePermission(flagged[i], serviceIndex)
	})
}

func (e *Engine) runSettings(ctx context.Context, report *Report) error {
	records := declaredSettings()
	return e.runStage(ctx, KindSettings, len(records), report, func(i int) (Outcome, error) {
		return e.reconcileSetting(records[i])
	})
}

func (e *Engine) runAccounts(ctx context.Context, report *Report) error {
	bootstrapper := bootstrap.New(e.repos.Account, e.hasher)

	// Accounts run sequentially: the batch is small and each aggregate does
	// several dependent writes.
	for _, seed := range e.accounts {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := bootstrapper.Bootstrap(seed)
		if err != nil {
			if repository.IsUnavailable(err) {
				return err
			}
			log.Printf("catalogsync: account %s: %v", seed.Phone, err)
			report.Add(KindAccounts, skipped(seed.Phone, ReasonStorageError))
			continue
		}
		report.Add(KindAccounts, Outcome{Result: Result(result), Key: seed.Phone})
	}
	return nil
}

// runStage fans n records out over the worker pool. Outcomes flow through a
// collector so report aggregation never loses updates. The first fatal error
// or context cancellation stops dispatch; in-flight records finish.
func (e *Engine) runStage(ctx context.Context, kind Kind, n int, report *Report, fn func(int) (Outcome, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	workers := e.workers
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	results := make(chan Outcome, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcome, err := fn(i)
				if err != nil {
					errs <- err
					return
				}
				results <- outcome
			}
		}()
	}

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for outcome := range results {
			report.Add(kind, outcome)
		}
	}()

	var stageErr error
dispatch:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			stageErr = ctx.Err()
			break dispatch
		case err := <-errs:
			stageErr = err
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	<-collected

	if stageErr == nil {
		select {
		case err := <-errs:
			stageErr = err
		default:
		}
	}
	return stageErr
}
