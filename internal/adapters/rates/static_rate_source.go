package rates

import (
	"context"
	"errors"
)

// StaticRateSource serves a fixed rate table. Used in tests and as an
// offline fallback when no rate endpoint is configured.
type StaticRateSource struct {
	Table map[string]float64
	Err   error
}

func (s *StaticRateSource) Rates(ctx context.Context) (map[string]float64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Table) == 0 {
		return nil, errors.New("static rate source: empty table")
	}
	return s.Table, nil
}
