package planner

import (
	"context"
)

// LegacySplit is the split shape of the older batch framework convention:
// a flat array of value records with location strings. Only the marshalling
// differs from Split; planning semantics are identical.
type LegacySplit struct {
	StartToken string
	EndToken   string
	Length     uint64
	Locations  []string
}

// PlanLegacy exposes the same planning result through the older array based
// calling convention.
func (p *Planner) PlanLegacy(ctx context.Context) ([]LegacySplit, error) {
	splits, err := p.Plan(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LegacySplit, len(splits))
	for i, s := range splits {
		out[i] = LegacySplit{
			StartToken: s.StartToken,
			EndToken:   s.EndToken,
			Length:     s.RowCount,
			Locations:  s.Hostnames,
		}
	}
	return out, nil
}
