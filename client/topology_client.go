package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"golang.org/x/sync/singleflight"

	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/proto"
	"github.com/cubefs/ringsplit/util"
)

type (
	TopologyConfig struct {
		Seeds       []string           `json:"seeds"`
		Port        uint32             `json:"port"`
		Credentials *proto.Credentials `json:"credentials"`
	}

	// TopologyClient fetches the ring topology from the first reachable
	// seed. Concurrent describes for the same keyspace collapse into one
	// upstream call.
	TopologyClient struct {
		cfg       TopologyConfig
		dialer    Dialer
		singleRun *singleflight.Group
	}
)

func NewTopologyClient(cfg TopologyConfig, dialer Dialer) *TopologyClient {
	return &TopologyClient{
		cfg:       cfg,
		dialer:    dialer,
		singleRun: &singleflight.Group{},
	}
}

// DescribeRing returns the keyspace's token ranges with their owning
// replicas. Unreachable seeds are skipped; a rejected describe is fatal.
func (c *TopologyClient) DescribeRing(ctx context.Context, keyspace string) ([]*proto.TokenRange, error) {
	ranges, err, _ := c.singleRun.Do(keyspace, func() (interface{}, error) {
		return c.describeRing(ctx, keyspace)
	})
	if err != nil {
		return nil, err
	}
	return ranges.([]*proto.TokenRange), nil
}

func (c *TopologyClient) describeRing(ctx context.Context, keyspace string) ([]*proto.TokenRange, error) {
	span := trace.SpanFromContextSafe(ctx)

	attempted := make([]string, 0, len(c.cfg.Seeds))
	for _, seed := range c.cfg.Seeds {
		addr := util.EnsurePort(seed, c.cfg.Port)
		attempted = append(attempted, addr)

		conn, err := c.dialer.Dial(ctx, addr)
		if err != nil {
			span.Warnf("connect to seed %s failed: %s", addr, err)
			continue
		}
		defer conn.Close()

		if err := Prepare(ctx, conn, keyspace, c.cfg.Credentials); err != nil {
			return nil, fmt.Errorf("prepare seed connection %s: %w", addr, err)
		}

		resp, err := conn.DescribeRing(ctx, &proto.DescribeRingRequest{Keyspace: keyspace})
		if err != nil {
			return nil, fmt.Errorf("describe ring for keyspace %s on %s: %w", keyspace, addr, err)
		}

		span.Debugf("seed %s reported %d ranges for keyspace %s", addr, len(resp.Ranges), keyspace)
		return resp.Ranges, nil
	}

	return nil, fmt.Errorf("%w: %s", errors.ErrNoSeedReachable, strings.Join(attempted, ","))
}

// Prepare performs the per connection handshake: optional login, then
// keyspace selection.
func Prepare(ctx context.Context, conn Conn, keyspace string, creds *proto.Credentials) error {
	if creds != nil {
		if _, err := conn.Login(ctx, &proto.LoginRequest{
			Username: creds.Username,
			Password: creds.Password,
		}); err != nil {
			return err
		}
	}
	_, err := conn.UseKeyspace(ctx, &proto.UseKeyspaceRequest{Keyspace: keyspace})
	return err
}
