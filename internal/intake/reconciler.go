// Package intake reconciles quantity observations against the product
// store. An observation comes from the add-product form or from a decoded
// QR payload; reconciliation decides create vs. increment-and-update and
// then triggers a full stock alert sweep.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rfalcao/stockwatch/internal/alert"
	"github.com/rfalcao/stockwatch/internal/models"
	"github.com/rfalcao/stockwatch/internal/repo"
)

// DefaultCategory is assigned on the scan path when the payload carries no
// category.
const DefaultCategory = "Unknown"

// Observation is a single quantity observation against a product name.
type Observation struct {
	Name          string
	QuantityDelta int
	PricePerUnit  float64
	Category      string
}

// Result reports what reconciliation did. Warnings carry notification
// delivery failures from the alert sweep; they never fail the mutation.
type Result struct {
	Product  models.Product
	Created  bool
	Alerts   []alert.Alert
	Warnings []string
}

// ValidationError rejects an observation before any mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a store failure. The operation is abandoned; there is
// no retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Reconciler applies observations to the product store. All reconciliations
// are serialized through a single mutex, so two concurrent intakes of the
// same new name cannot both observe "not found" and insert duplicates.
type Reconciler struct {
	mu       sync.Mutex
	products repo.ProductRepository
	sweeper  *alert.Sweeper
}

func NewReconciler(products repo.ProductRepository, sweeper *alert.Sweeper) *Reconciler {
	return &Reconciler{products: products, sweeper: sweeper}
}

// ReconcileManual handles form-based intake. Name and category are both
// required on this path.
func (r *Reconciler) ReconcileManual(ctx context.Context, obs Observation) (Result, error) {
	if err := validate(obs); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(obs.Category) == "" {
		return Result{}, &ValidationError{Field: "category", Reason: "category is required"}
	}
	return r.reconcile(ctx, obs)
}

// ReconcileScan handles QR-derived intake. The category defaults to
// DefaultCategory when the payload has none; quantity and price arrive
// already validated by the decoder.
func (r *Reconciler) ReconcileScan(ctx context.Context, obs Observation) (Result, error) {
	if err := validate(obs); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(obs.Category) == "" {
		obs.Category = DefaultCategory
	}
	return r.reconcile(ctx, obs)
}

func validate(obs Observation) error {
	if strings.TrimSpace(obs.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if obs.QuantityDelta < 1 {
		return &ValidationError{Field: "quantity", Reason: "quantity must be at least 1"}
	}
	if obs.PricePerUnit < 0 {
		return &ValidationError{Field: "price_per_unit", Reason: "price cannot be negative"}
	}
	return nil
}

func (r *Reconciler) reconcile(ctx context.Context, obs Observation) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Format(time.RFC3339)

	existing, err := r.products.GetByName(obs.Name)
	switch {
	case err == nil:
		// Increment quantity; price and category are overwritten with the
		// newly supplied values (last write wins, not a merge).
		existing.Quantity += obs.QuantityDelta
		existing.PricePerUnit = obs.PricePerUnit
		existing.Category = obs.Category
		existing.UpdatedAt = now

		updated, err := r.products.Update(existing)
		if err != nil {
			return Result{}, &StorageError{Op: "update", Err: err}
		}
		return r.finish(ctx, updated, false)

	case errors.Is(err, repo.ErrProductNotFound):
		created, err := r.products.Create(models.Product{
			Name:         obs.Name,
			Quantity:     obs.QuantityDelta,
			PricePerUnit: obs.PricePerUnit,
			Category:     obs.Category,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return Result{}, &StorageError{Op: "create", Err: err}
		}
		return r.finish(ctx, created, true)

	default:
		return Result{}, &StorageError{Op: "lookup", Err: err}
	}
}

// finish runs the alert sweep over the whole store after a successful
// mutation.
func (r *Reconciler) finish(ctx context.Context, p models.Product, created bool) (Result, error) {
	alerts, warnings, err := r.sweeper.Sweep(ctx)
	if err != nil {
		// The mutation already happened; a failed sweep is a warning,
		// not a reason to report the intake as failed.
		warnings = append(warnings, err.Error())
	}
	return Result{Product: p, Created: created, Alerts: alerts, Warnings: warnings}, nil
}
