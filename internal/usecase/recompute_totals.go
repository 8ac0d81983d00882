package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timetrack/internal/usecase/shared"
)

// RecomputeTotalsInput contains the parameters for a full recompute.
type RecomputeTotalsInput struct{}

// RecomputeTotalsOutput contains the result of a full recompute.
type RecomputeTotalsOutput struct{}

// RecomputeTotals is the use case for rebuilding every task total from the
// time-log table, the recovery path after manual edits or repair drops.
type RecomputeTotals struct {
	totals *shared.Totals
}

// NewRecomputeTotals creates a new RecomputeTotals use case.
func NewRecomputeTotals(totals *shared.Totals) *RecomputeTotals {
	return &RecomputeTotals{totals: totals}
}

// Execute rebuilds all task totals.
func (uc *RecomputeTotals) Execute(_ context.Context, _ RecomputeTotalsInput) (*RecomputeTotalsOutput, error) {
	if err := uc.totals.RecomputeAllTotals(); err != nil {
		return nil, fmt.Errorf("recompute task totals: %w", err)
	}
	return &RecomputeTotalsOutput{}, nil
}
