package partitioner

// Range is a half open ring interval [Start, End). End preceding Start means
// the interval wraps past MaxToken back to MinToken; Start == End denotes
// the full ring, matching how the store reports a single range topology.
type Range struct {
	Start Token
	End   Token
}

func (r Range) IsWrapAround() bool {
	return r.End.Compare(r.Start) <= 0
}

// Unwrap rewrites a wrapping range as up to two linear ranges, dropping
// empty pieces. Non wrapping ranges come back unchanged.
func (r Range) Unwrap(p Partitioner) []Range {
	if !r.IsWrapAround() {
		return []Range{r}
	}
	out := make([]Range, 0, 2)
	if r.Start.Compare(p.MaxToken()) < 0 {
		out = append(out, Range{Start: r.Start, End: p.MaxToken()})
	}
	if p.MinToken().Compare(r.End) < 0 {
		out = append(out, Range{Start: p.MinToken(), End: r.End})
	}
	return out
}

// Intersection computes the ring aware overlap of two ranges, either of
// which may wrap. The result is zero to four disjoint linear ranges.
func (r Range) Intersection(o Range, p Partitioner) []Range {
	var out []Range
	for _, a := range r.Unwrap(p) {
		for _, b := range o.Unwrap(p) {
			lo := a.Start
			if b.Start.Compare(lo) > 0 {
				lo = b.Start
			}
			hi := a.End
			if b.End.Compare(hi) < 0 {
				hi = b.End
			}
			if lo.Compare(hi) < 0 {
				out = append(out, Range{Start: lo, End: hi})
			}
		}
	}
	return out
}

func (r Range) Intersects(o Range, p Partitioner) bool {
	return len(r.Intersection(o, p)) > 0
}

// Contains reports whether the ring position t falls inside r.
func (r Range) Contains(t Token, p Partitioner) bool {
	for _, piece := range r.Unwrap(p) {
		if piece.Start.Compare(t) <= 0 && t.Compare(piece.End) < 0 {
			return true
		}
	}
	return false
}
