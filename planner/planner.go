// Copyright 2023 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package planner computes parallel read splits over the store's token
// ring. One planning pass discovers the ring topology, narrows it to an
// optional key restriction, asks range owning replicas for sub range
// boundaries concurrently, and assembles the answers into locality aware
// work units for the batch framework.
package planner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/google/uuid"

	"github.com/cubefs/ringsplit/client"
	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/metrics"
	"github.com/cubefs/ringsplit/partitioner"
	"github.com/cubefs/ringsplit/proto"
)

type (
	// topologyClient is the slice of client.TopologyClient the planner
	// depends on.
	topologyClient interface {
		DescribeRing(ctx context.Context, keyspace string) ([]*proto.TokenRange, error)
	}

	Planner struct {
		cfg      *Config
		part     partitioner.Partitioner
		topology topologyClient
		dialer   client.Dialer
		// resolve overrides hostname resolution; nil means the default
		// reverse lookup.
		resolve func(string) string
	}

	unitResult struct {
		splits []*proto.Split
		err    error
	}

	// planFuture is the pending handle for one dispatched unit. The worker
	// writes exactly one result; the buffered channel keeps it from
	// blocking when the pass was already aborted.
	planFuture struct {
		done chan unitResult
	}
)

func NewPlanner(cfg *Config) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initConfig(cfg)

	part, err := partitioner.New(cfg.Partitioner)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, cfg.Partitioner)
	}

	transport := client.NewTransport(cfg.Transport)
	topology := client.NewTopologyClient(client.TopologyConfig{
		Seeds:       cfg.Seeds,
		Port:        cfg.Port,
		Credentials: cfg.Credentials,
	}, transport)

	return &Planner{
		cfg:      cfg,
		part:     part,
		topology: topology,
		dialer:   transport,
	}, nil
}

// Plan runs one planning pass and returns the splits in unspecified order.
// It is safe to call concurrently; every pass works on its own state.
func (p *Planner) Plan(ctx context.Context) ([]*proto.Split, error) {
	span, ctx := trace.StartSpanFromContextWithTraceID(ctx, "plan", uuid.NewString())
	begin := time.Now()

	if ms := p.cfg.Transport.MaxTimeoutMs; ms > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Millisecond*time.Duration(ms))
		defer cancel()
	}

	pctx := newPlanContext(p.cfg, p.part, p.resolve)

	ranges, err := p.topology.DescribeRing(ctx, pctx.keyspace)
	if err != nil {
		return nil, err
	}
	span.Infof("ring for keyspace %s has %d ranges", pctx.keyspace, len(ranges))
	metrics.TopologyRanges.Set(float64(len(ranges)))

	tasks, err := restrictTasks(ctx, pctx, ranges, p.cfg.KeyRestriction)
	if err != nil {
		return nil, err
	}

	splits, err := p.collectSplits(ctx, pctx, tasks)
	if err != nil {
		return nil, err
	}
	if len(splits) == 0 {
		return nil, errors.ErrNoSplits
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	rnd.Shuffle(len(splits), func(i, j int) {
		splits[i], splits[j] = splits[j], splits[i]
	})

	metrics.SplitsProduced.Add(float64(len(splits)))
	metrics.PlanDuration.Observe(time.Since(begin).Seconds())
	span.Infof("planned %d splits from %d tasks in %s", len(splits), len(tasks), time.Since(begin))
	return splits, nil
}

// collectSplits dispatches every task to the worker pool, then drains the
// pending set. A failed unit consumes one point of the shared retry budget
// and is resubmitted as-is; budget exhaustion aborts the pass and cancels
// whatever is still running. The pool is torn down on every exit path.
func (p *Planner) collectSplits(ctx context.Context, pctx *planContext, tasks []*planTask) ([]*proto.Split, error) {
	span := trace.SpanFromContextSafe(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := newWorkerPool(p.cfg.MaxWorkers)
	defer pool.Close()

	pending := make(map[*planFuture]*planTask, len(tasks))
	for _, task := range tasks {
		pending[p.submit(runCtx, pool, pctx, task)] = task
	}
	span.Infof("dispatched %d planning tasks", len(pending))

	var splits []*proto.Split
	retries := 0
	for len(pending) > 0 {
		snapshot := make([]*planFuture, 0, len(pending))
		for f := range pending {
			snapshot = append(snapshot, f)
		}

		// waiting on handles in snapshot order can park behind a slow unit
		// while faster ones sit finished; work still proceeds in the pool,
		// only recognition is delayed
		for _, f := range snapshot {
			res := <-f.done
			if res.err == nil {
				splits = append(splits, res.splits...)
				delete(pending, f)
				continue
			}

			if retries >= p.cfg.MaxRetries {
				cancel()
				return nil, fmt.Errorf("%w: %s", errors.ErrPlanningExhausted, res.err)
			}
			task := pending[f]
			span.Errorf("planning task for range [%s,%s) failed: %s - retrying",
				task.tokenRange.StartToken, task.tokenRange.EndToken, res.err)
			delete(pending, f)
			retries++
			metrics.PlanningRetries.Inc()
			pending[p.submit(runCtx, pool, pctx, task)] = task
		}
	}
	return splits, nil
}

func (p *Planner) submit(ctx context.Context, pool *workerPool, pctx *planContext, task *planTask) *planFuture {
	f := &planFuture{done: make(chan unitResult, 1)}
	pool.Run(func() {
		if err := ctx.Err(); err != nil {
			f.done <- unitResult{err: err}
			return
		}
		subs, err := fetchSubSplits(ctx, p.dialer, pctx, task)
		if err != nil {
			f.done <- unitResult{err: err}
			return
		}
		splits, err := assembleSplits(pctx, task, subs)
		f.done <- unitResult{splits: splits, err: err}
	})
	return f
}
