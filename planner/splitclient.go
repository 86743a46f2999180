package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cubefs/ringsplit/client"
	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/proto"
	"github.com/cubefs/ringsplit/util"
)

// fetchSubSplits asks one of the task's replicas to cut the range into sub
// ranges of roughly splitSize rows. Replicas are tried in list order; a
// replica we cannot reach is skipped, a replica that rejects the request
// fails the whole unit. The planner's global retry budget decides whether a
// failed unit runs again.
func fetchSubSplits(ctx context.Context, dialer client.Dialer, pctx *planContext, task *planTask) ([]*proto.SubSplit, error) {
	span := trace.SpanFromContextSafe(ctx)

	if pctx.splitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pctx.splitTimeout)
		defer cancel()
	}

	rng := &task.tokenRange
	attempted := make([]string, 0, len(rng.RPCEndpoints))
	for i := range rng.RPCEndpoints {
		addr := util.EnsurePort(effectiveEndpoint(rng, i), pctx.port)
		attempted = append(attempted, addr)

		conn, err := dialer.Dial(ctx, addr)
		if err != nil {
			span.Warnf("connect to endpoint %s failed: %s", addr, err)
			continue
		}

		subs, err := describeOnConn(ctx, conn, pctx, task)
		conn.Close()
		if err != nil {
			if status.Code(err) == codes.Unavailable {
				// the replica went away mid handshake, same as not
				// reaching it at all
				span.Warnf("endpoint %s became unavailable: %s", addr, err)
				continue
			}
			return nil, err
		}
		return subs, nil
	}

	return nil, fmt.Errorf("%w: %s", errors.ErrAllEndpointsFailed, strings.Join(attempted, ","))
}

// describeOnConn runs the handshake and the split computation on an
// established connection. Nodes predating the sized describe call answer
// with Unimplemented; those get the boundary token call and synthesized row
// estimates instead.
func describeOnConn(ctx context.Context, conn client.Conn, pctx *planContext, task *planTask) ([]*proto.SubSplit, error) {
	if err := client.Prepare(ctx, conn, pctx.keyspace, pctx.creds); err != nil {
		return nil, err
	}

	rng := &task.tokenRange
	resp, err := conn.DescribeSplits(ctx, &proto.DescribeSplitsRequest{
		Table:      pctx.table,
		StartToken: rng.StartToken,
		EndToken:   rng.EndToken,
		SplitSize:  task.splitSize,
	})
	if err == nil {
		return resp.Splits, nil
	}
	if status.Code(err) != codes.Unimplemented {
		return nil, err
	}

	points, err := conn.DescribeSplitPoints(ctx, &proto.DescribeSplitPointsRequest{
		Table:      pctx.table,
		StartToken: rng.StartToken,
		EndToken:   rng.EndToken,
		SplitSize:  task.splitSize,
	})
	if err != nil {
		return nil, err
	}
	return boundariesToSubSplits(points.Tokens, task.splitSize), nil
}

// boundariesToSubSplits pairs adjacent boundary tokens into sub splits,
// guessing the target split size as the row count for each.
func boundariesToSubSplits(tokens []string, splitSize uint64) []*proto.SubSplit {
	if len(tokens) < 2 {
		return nil
	}
	subs := make([]*proto.SubSplit, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		subs = append(subs, &proto.SubSplit{
			StartToken: tokens[i],
			EndToken:   tokens[i+1],
			RowCount:   splitSize,
		})
	}
	return subs
}
