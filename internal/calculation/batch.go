package calculation

import (
	"context"
	"fmt"

	"github.com/finwise/fincalc/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RunBatch evaluates requests concurrently with at most concurrency workers
// (unbounded when concurrency <= 0). Items keep request order; invalid inputs
// are recorded on their item without affecting siblings.
func (ce *CalculationEngine) RunBatch(ctx context.Context, requests []domain.CalculationRequest, concurrency int) (*domain.BatchReport, error) {
	items := make([]domain.BatchItem, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item := domain.BatchItem{Name: req.DisplayName(), Calculator: req.Calculator, Rates: req.Rates()}
			res, err := ce.Calculate(req)
			if err != nil {
				inv, ok := domain.AsInvalidInput(err)
				if !ok {
					return fmt.Errorf("request %d (%s): %w", i, item.Name, err)
				}
				item.Error = inv.Error()
				item.Field = inv.Field
			} else {
				item.Result = res
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.BatchReport{Items: items}
	ce.logger().Infof("batch complete: %d requests, %d rejected", len(items), report.FailedCount())
	return report, nil
}
