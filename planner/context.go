package planner

import (
	"time"

	"github.com/cubefs/ringsplit/partitioner"
	"github.com/cubefs/ringsplit/proto"
	"github.com/cubefs/ringsplit/util"
)

// planContext carries everything a planning unit needs, fixed before
// dispatch. Keeping it a value threaded through the calls, instead of fields
// mutated on the planner, keeps concurrent planning passes independent.
type planContext struct {
	keyspace     string
	table        string
	part         partitioner.Partitioner
	splitSize    uint64
	port         uint32
	splitTimeout time.Duration
	creds        *proto.Credentials

	// resolveHostname is swappable so tests stay off the resolver.
	resolveHostname func(string) string
}

func newPlanContext(cfg *Config, part partitioner.Partitioner, resolve func(string) string) *planContext {
	if resolve == nil {
		resolve = util.ResolveHostname
	}
	return &planContext{
		keyspace:        cfg.Keyspace,
		table:           cfg.Table,
		part:            part,
		splitSize:       cfg.SplitSize,
		port:            cfg.Port,
		splitTimeout:    time.Millisecond * time.Duration(cfg.SplitTimeoutMs),
		creds:           cfg.Credentials,
		resolveHostname: resolve,
	}
}

// planTask is one unit of planning work: a (possibly narrowed) token range
// whose owning replicas will be asked for sub range boundaries.
type planTask struct {
	tokenRange proto.TokenRange
	splitSize  uint64
}

// effectiveEndpoint picks the replica address at index i, falling back to
// the internal endpoint when the rpc one was never bound.
func effectiveEndpoint(rng *proto.TokenRange, i int) string {
	addr := rng.RPCEndpoints[i]
	if addr == "" || addr == proto.WildcardEndpoint {
		addr = rng.Endpoints[i]
	}
	return addr
}
