package client

import (
	"context"
	"time"

	"github.com/cubefs/ringsplit/proto"
	"google.golang.org/grpc"
)

type (
	TransportConfig struct {
		MaxTimeoutMs       uint32 `json:"max_timeout_ms"`
		ConnectTimeoutMs   uint32 `json:"connect_timeout_ms"`
		KeepaliveTimeoutS  uint32 `json:"keepalive_timeout_s"`
		BackoffBaseDelayMs uint32 `json:"backoff_base_delay_ms"`
		BackoffMaxDelayMs  uint32 `json:"backoff_max_delay_ms"`
	}

	// Conn is one established, keyspace addressable connection to a store
	// node.
	Conn interface {
		proto.StoreClient
		Address() string
		Close() error
	}

	// Dialer opens connections to individual store nodes. The planner only
	// ever talks to the store through this interface.
	Dialer interface {
		Dial(ctx context.Context, addr string) (Conn, error)
	}
)

// Transport is the gRPC backed Dialer used outside of tests.
type Transport struct {
	tc       TransportConfig
	dialOpts []grpc.DialOption
}

func NewTransport(cfg TransportConfig) *Transport {
	initialDefaultConfig(&cfg.ConnectTimeoutMs, defaultConnectTimeoutMs)
	initialDefaultConfig(&cfg.KeepaliveTimeoutS, defaultKeepAliveTimeoutS)
	initialDefaultConfig(&cfg.BackoffBaseDelayMs, defaultBackoffBaseDelayMs)
	initialDefaultConfig(&cfg.BackoffMaxDelayMs, defaultBackoffMaxDelayMs)

	return &Transport{
		tc:       cfg,
		dialOpts: generateDialOpts(&cfg),
	}
}

func (t *Transport) Dial(ctx context.Context, addr string) (Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, time.Millisecond*time.Duration(t.tc.ConnectTimeoutMs))
	defer cancel()

	cc, err := grpc.DialContext(dialCtx, addr, t.dialOpts...)
	if err != nil {
		return nil, err
	}

	return &storeConn{
		StoreClient: proto.NewStoreClient(cc),
		cc:          cc,
	}, nil
}

type storeConn struct {
	proto.StoreClient
	cc *grpc.ClientConn
}

func (c *storeConn) Address() string { return c.cc.Target() }
func (c *storeConn) Close() error    { return c.cc.Close() }
