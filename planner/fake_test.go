package planner

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cubefs/ringsplit/client"
	"github.com/cubefs/ringsplit/partitioner"
	"github.com/cubefs/ringsplit/proto"
)

// fakeNode is an in-memory store node; it doubles as its own connection.
type fakeNode struct {
	mu sync.Mutex

	addr      string
	subSplits []*proto.SubSplit
	splitsErr error
	points    []string
	pointsErr error

	logins        []string
	keyspaces     []string
	describeCalls int
}

func (n *fakeNode) Login(ctx context.Context, in *proto.LoginRequest, opts ...grpc.CallOption) (*proto.LoginResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.logins = append(n.logins, in.Username)
	return &proto.LoginResponse{}, nil
}

func (n *fakeNode) UseKeyspace(ctx context.Context, in *proto.UseKeyspaceRequest, opts ...grpc.CallOption) (*proto.UseKeyspaceResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.keyspaces = append(n.keyspaces, in.Keyspace)
	return &proto.UseKeyspaceResponse{}, nil
}

func (n *fakeNode) DescribeRing(ctx context.Context, in *proto.DescribeRingRequest, opts ...grpc.CallOption) (*proto.DescribeRingResponse, error) {
	return nil, fmt.Errorf("fake node %s serves no topology", n.addr)
}

func (n *fakeNode) DescribeSplits(ctx context.Context, in *proto.DescribeSplitsRequest, opts ...grpc.CallOption) (*proto.DescribeSplitsResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.describeCalls++
	if n.splitsErr != nil {
		return nil, n.splitsErr
	}
	return &proto.DescribeSplitsResponse{Splits: n.subSplits}, nil
}

func (n *fakeNode) DescribeSplitPoints(ctx context.Context, in *proto.DescribeSplitPointsRequest, opts ...grpc.CallOption) (*proto.DescribeSplitPointsResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pointsErr != nil {
		return nil, n.pointsErr
	}
	return &proto.DescribeSplitPointsResponse{Tokens: n.points}, nil
}

func (n *fakeNode) Address() string { return n.addr }
func (n *fakeNode) Close() error    { return nil }

// fakeDialer hands out fakeNode connections by address.
type fakeDialer struct {
	mu sync.Mutex

	nodes map[string]*fakeNode
	// failDials holds the number of dial attempts per address that must
	// fail before the node answers; a missing node always fails.
	failDials map[string]int
	dials     []string
}

func newFakeDialer(nodes ...*fakeNode) *fakeDialer {
	d := &fakeDialer{
		nodes:     make(map[string]*fakeNode, len(nodes)),
		failDials: make(map[string]int),
	}
	for _, n := range nodes {
		d.nodes[n.addr] = n
	}
	return d
}

func (d *fakeDialer) Dial(ctx context.Context, addr string) (client.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials = append(d.dials, addr)
	if remaining := d.failDials[addr]; remaining > 0 {
		d.failDials[addr] = remaining - 1
		return nil, fmt.Errorf("connection refused: %s", addr)
	}
	node, ok := d.nodes[addr]
	if !ok {
		return nil, fmt.Errorf("no route to host: %s", addr)
	}
	return node, nil
}

func (d *fakeDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.dials)
}

type fakeTopology struct {
	ranges []*proto.TokenRange
	err    error
}

func (f *fakeTopology) DescribeRing(ctx context.Context, keyspace string) ([]*proto.TokenRange, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges, nil
}

func identityResolver(addr string) string { return addr }

func statusUnimplemented() error {
	return status.Error(codes.Unimplemented, "unknown method DescribeSplits")
}

func testConfig() *Config {
	return &Config{
		Seeds:       []string{"192.0.2.10"},
		Port:        9035,
		Keyspace:    "ks1",
		Table:       "events",
		Partitioner: "murmur3",
		SplitSize:   1000,
		MaxRetries:  3,
	}
}

func testPlanner(cfg *Config, topo topologyClient, dialer client.Dialer) *Planner {
	part, err := partitioner.New(cfg.Partitioner)
	if err != nil {
		panic(err)
	}
	return &Planner{
		cfg:      cfg,
		part:     part,
		topology: topo,
		dialer:   dialer,
		resolve:  identityResolver,
	}
}
