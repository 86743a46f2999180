package planner

import (
	"fmt"

	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/proto"
)

// assembleSplits turns the sub splits a replica reported into final work
// units: candidate hostnames resolved once per range, wrapping sub ranges
// unwrapped into two linear ones. Output order follows the sub split order.
func assembleSplits(pctx *planContext, task *planTask, subs []*proto.SubSplit) ([]*proto.Split, error) {
	rng := &task.tokenRange
	if len(rng.Endpoints) != len(rng.RPCEndpoints) {
		return nil, fmt.Errorf("%w: %d endpoints, %d rpc endpoints",
			errors.ErrEndpointMismatch, len(rng.Endpoints), len(rng.RPCEndpoints))
	}

	hostnames := make([]string, len(rng.RPCEndpoints))
	for i := range rng.RPCEndpoints {
		hostnames[i] = pctx.resolveHostname(effectiveEndpoint(rng, i))
	}

	splits := make([]*proto.Split, 0, len(subs))
	for _, sub := range subs {
		subRange, err := parseRange(pctx.part, sub.StartToken, sub.EndToken)
		if err != nil {
			return nil, err
		}
		for _, piece := range subRange.Unwrap(pctx.part) {
			splits = append(splits, &proto.Split{
				StartToken: pctx.part.ToString(piece.Start),
				EndToken:   pctx.part.ToString(piece.End),
				RowCount:   sub.RowCount,
				Hostnames:  hostnames,
			})
		}
	}
	return splits, nil
}
