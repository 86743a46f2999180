package client

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/proto"
)

type fakeSeed struct {
	mu sync.Mutex

	addr     string
	ranges   []*proto.TokenRange
	ringErr  error
	logins   []string
	keyspace string
}

func (s *fakeSeed) Login(ctx context.Context, in *proto.LoginRequest, opts ...grpc.CallOption) (*proto.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logins = append(s.logins, in.Username)
	return &proto.LoginResponse{}, nil
}

func (s *fakeSeed) UseKeyspace(ctx context.Context, in *proto.UseKeyspaceRequest, opts ...grpc.CallOption) (*proto.UseKeyspaceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyspace = in.Keyspace
	return &proto.UseKeyspaceResponse{}, nil
}

func (s *fakeSeed) DescribeRing(ctx context.Context, in *proto.DescribeRingRequest, opts ...grpc.CallOption) (*proto.DescribeRingResponse, error) {
	if s.ringErr != nil {
		return nil, s.ringErr
	}
	return &proto.DescribeRingResponse{Ranges: s.ranges}, nil
}

func (s *fakeSeed) DescribeSplits(ctx context.Context, in *proto.DescribeSplitsRequest, opts ...grpc.CallOption) (*proto.DescribeSplitsResponse, error) {
	return nil, fmt.Errorf("seed %s does not compute splits", s.addr)
}

func (s *fakeSeed) DescribeSplitPoints(ctx context.Context, in *proto.DescribeSplitPointsRequest, opts ...grpc.CallOption) (*proto.DescribeSplitPointsResponse, error) {
	return nil, fmt.Errorf("seed %s does not compute splits", s.addr)
}

func (s *fakeSeed) Address() string { return s.addr }
func (s *fakeSeed) Close() error    { return nil }

type fakeSeedDialer struct {
	mu    sync.Mutex
	seeds map[string]*fakeSeed
	dials []string
}

func (d *fakeSeedDialer) Dial(ctx context.Context, addr string) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials = append(d.dials, addr)
	seed, ok := d.seeds[addr]
	if !ok {
		return nil, fmt.Errorf("connection refused: %s", addr)
	}
	return seed, nil
}

func TestDescribeRingFirstReachableSeed(t *testing.T) {
	ranges := []*proto.TokenRange{{
		StartToken: "10", EndToken: "90",
		Endpoints:    []string{"192.0.2.1"},
		RPCEndpoints: []string{"192.0.2.1"},
	}}
	seed := &fakeSeed{addr: "192.0.2.11:9035", ranges: ranges}
	dialer := &fakeSeedDialer{seeds: map[string]*fakeSeed{seed.addr: seed}}

	c := NewTopologyClient(TopologyConfig{
		Seeds: []string{"192.0.2.10", "192.0.2.11"},
		Port:  9035,
	}, dialer)

	got, err := c.DescribeRing(context.Background(), "ks1")
	require.NoError(t, err)
	require.Equal(t, ranges, got)
	// the dead seed was skipped, the live one selected the keyspace
	require.Equal(t, []string{"192.0.2.10:9035", "192.0.2.11:9035"}, dialer.dials)
	require.Equal(t, "ks1", seed.keyspace)
	require.Empty(t, seed.logins)
}

func TestDescribeRingLogsIn(t *testing.T) {
	seed := &fakeSeed{addr: "192.0.2.10:9035"}
	dialer := &fakeSeedDialer{seeds: map[string]*fakeSeed{seed.addr: seed}}

	c := NewTopologyClient(TopologyConfig{
		Seeds:       []string{"192.0.2.10"},
		Port:        9035,
		Credentials: &proto.Credentials{Username: "reader", Password: "sekrit"},
	}, dialer)

	_, err := c.DescribeRing(context.Background(), "ks1")
	require.NoError(t, err)
	require.Equal(t, []string{"reader"}, seed.logins)
}

func TestDescribeRingNoSeedReachable(t *testing.T) {
	dialer := &fakeSeedDialer{seeds: map[string]*fakeSeed{}}

	c := NewTopologyClient(TopologyConfig{
		Seeds: []string{"192.0.2.10", "192.0.2.11:9040"},
		Port:  9035,
	}, dialer)

	_, err := c.DescribeRing(context.Background(), "ks1")
	require.ErrorIs(t, err, errors.ErrNoSeedReachable)
	// every attempted seed is named, explicit ports preserved
	require.Contains(t, err.Error(), "192.0.2.10:9035")
	require.Contains(t, err.Error(), "192.0.2.11:9040")
}

func TestDescribeRingRejectionIsFatal(t *testing.T) {
	seed := &fakeSeed{addr: "192.0.2.10:9035", ringErr: fmt.Errorf("unconfigured keyspace ks1")}
	spare := &fakeSeed{addr: "192.0.2.11:9035"}
	dialer := &fakeSeedDialer{seeds: map[string]*fakeSeed{seed.addr: seed, spare.addr: spare}}

	c := NewTopologyClient(TopologyConfig{
		Seeds: []string{"192.0.2.10", "192.0.2.11"},
		Port:  9035,
	}, dialer)

	_, err := c.DescribeRing(context.Background(), "ks1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unconfigured keyspace")
	// a protocol rejection must not fail over to the next seed
	require.Equal(t, []string{"192.0.2.10:9035"}, dialer.dials)
}
