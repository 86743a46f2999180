package planner

import (
	"context"
	"fmt"

	"github.com/cubefs/cubefs/blobstore/common/trace"

	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/partitioner"
	"github.com/cubefs/ringsplit/proto"
)

// restrictTasks turns ring ranges into planning tasks, narrowed to the key
// restriction when one is configured. Ranges outside the restriction are
// dropped before any worker sees them.
func restrictTasks(ctx context.Context, pctx *planContext, ranges []*proto.TokenRange, rest *KeyRestriction) ([]*planTask, error) {
	span := trace.SpanFromContextSafe(ctx)

	restriction, err := restrictionRange(span, pctx, rest)
	if err != nil {
		return nil, err
	}

	tasks := make([]*planTask, 0, len(ranges))
	for _, rng := range ranges {
		if restriction == nil {
			tasks = append(tasks, &planTask{tokenRange: *rng, splitSize: pctx.splitSize})
			continue
		}

		ringRange, err := parseRange(pctx.part, rng.StartToken, rng.EndToken)
		if err != nil {
			return nil, err
		}
		for _, piece := range ringRange.Intersection(*restriction, pctx.part) {
			narrowed := *rng
			narrowed.StartToken = pctx.part.ToString(piece.Start)
			narrowed.EndToken = pctx.part.ToString(piece.End)
			tasks = append(tasks, &planTask{tokenRange: narrowed, splitSize: pctx.splitSize})
		}
	}
	return tasks, nil
}

// restrictionRange validates the restriction and maps its keys onto the
// ring. A nil result means the whole ring is in play.
func restrictionRange(span trace.Span, pctx *planContext, rest *KeyRestriction) (*partitioner.Range, error) {
	if rest == nil {
		return nil, nil
	}
	if len(rest.StartKey) == 0 {
		span.Warnf("ignoring key restriction specified without a start key")
		return nil, nil
	}
	if !pctx.part.PreservesOrder() {
		return nil, errors.ErrKeyRestrictionUnordered
	}
	if rest.StartToken != "" || rest.EndToken != "" {
		return nil, errors.ErrKeyRestrictionTokens
	}

	return &partitioner.Range{
		Start: pctx.part.FromKey(rest.StartKey),
		End:   pctx.part.FromKey(rest.EndKey),
	}, nil
}

func parseRange(part partitioner.Partitioner, start, end string) (partitioner.Range, error) {
	startToken, err := part.FromString(start)
	if err != nil {
		return partitioner.Range{}, fmt.Errorf("ring range start: %w", err)
	}
	endToken, err := part.FromString(end)
	if err != nil {
		return partitioner.Range{}, fmt.Errorf("ring range end: %w", err)
	}
	return partitioner.Range{Start: startToken, End: endToken}, nil
}
