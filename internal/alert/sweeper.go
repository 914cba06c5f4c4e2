package alert

import (
	"context"
	"fmt"
	"log"

	"github.com/rfalcao/stockwatch/internal/config"
	"github.com/rfalcao/stockwatch/internal/repo"
)

// AlertHistory records delivered alerts and answers whether a product was
// already alerted at its current quantity. The Redis-backed History is the
// production implementation.
type AlertHistory interface {
	Record(ctx context.Context, a Alert) error
	Unchanged(ctx context.Context, a Alert) bool
}

// Sweeper runs the stock alert policy over the entire product store and
// requests one notification per below-threshold product. It is invoked
// after every inventory mutation and every deletion; evaluation always
// covers the full set, not just the touched record.
type Sweeper struct {
	products repo.ProductRepository
	notifier Notifier
	history  AlertHistory // optional; required when SuppressRepeats is on

	threshold       int
	recipient       string
	suppressRepeats bool
}

func NewSweeper(products repo.ProductRepository, notifier Notifier, history AlertHistory, cfg config.AlertsConfig) *Sweeper {
	return &Sweeper{
		products:        products,
		notifier:        notifier,
		history:         history,
		threshold:       cfg.Threshold,
		recipient:       cfg.Recipient,
		suppressRepeats: cfg.SuppressRepeats,
	}
}

// Threshold returns the configured low-stock threshold.
func (s *Sweeper) Threshold() int {
	return s.threshold
}

// Sweep evaluates the policy and delivers the resulting alerts. Delivery
// failures do not interrupt the sweep; they are returned as warnings so the
// caller can surface them without failing the mutation that triggered the
// sweep. The returned error is only non-nil when the store itself cannot
// be read.
func (s *Sweeper) Sweep(ctx context.Context) ([]Alert, []string, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load products for alert sweep: %w", err)
	}

	alerts := Evaluate(products, s.threshold)

	var warnings []string
	for _, a := range alerts {
		if s.suppressRepeats && s.history != nil && s.history.Unchanged(ctx, a) {
			continue
		}

		if err := s.notifier.Send(s.recipient, a.Subject(), a.Body()); err != nil {
			warning := fmt.Sprintf("failed to send stock alert for %s: %v", a.ProductName, err)
			log.Print(warning)
			warnings = append(warnings, warning)
			continue
		}

		if s.history != nil {
			if err := s.history.Record(ctx, a); err != nil {
				log.Printf("failed to record alert for %s: %v", a.ProductName, err)
			}
		}
	}

	return alerts, warnings, nil
}
