package proto

import (
	"context"

	"google.golang.org/grpc"
)

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	LoginResponse struct{}

	UseKeyspaceRequest struct {
		Keyspace string `json:"keyspace"`
	}
	UseKeyspaceResponse struct{}

	DescribeRingRequest struct {
		Keyspace string `json:"keyspace"`
	}
	DescribeRingResponse struct {
		Ranges []*TokenRange `json:"ranges"`
	}

	DescribeSplitsRequest struct {
		Table      string `json:"table"`
		StartToken string `json:"start_token"`
		EndToken   string `json:"end_token"`
		SplitSize  uint64 `json:"split_size"`
	}
	DescribeSplitsResponse struct {
		Splits []*SubSplit `json:"splits"`
	}

	DescribeSplitPointsRequest struct {
		Table      string `json:"table"`
		StartToken string `json:"start_token"`
		EndToken   string `json:"end_token"`
		SplitSize  uint64 `json:"split_size"`
	}
	DescribeSplitPointsResponse struct {
		Tokens []string `json:"tokens"`
	}
)

// StoreClient is the client side surface of the store's planning service.
type StoreClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	UseKeyspace(ctx context.Context, in *UseKeyspaceRequest, opts ...grpc.CallOption) (*UseKeyspaceResponse, error)
	DescribeRing(ctx context.Context, in *DescribeRingRequest, opts ...grpc.CallOption) (*DescribeRingResponse, error)
	DescribeSplits(ctx context.Context, in *DescribeSplitsRequest, opts ...grpc.CallOption) (*DescribeSplitsResponse, error)
	DescribeSplitPoints(ctx context.Context, in *DescribeSplitPointsRequest, opts ...grpc.CallOption) (*DescribeSplitPointsResponse, error)
}

type storeClient struct {
	cc *grpc.ClientConn
}

func NewStoreClient(cc *grpc.ClientConn) StoreClient {
	return &storeClient{cc: cc}
}

func (c *storeClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.cc.Invoke(ctx, "/ringsplit.Store/Login", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) UseKeyspace(ctx context.Context, in *UseKeyspaceRequest, opts ...grpc.CallOption) (*UseKeyspaceResponse, error) {
	out := new(UseKeyspaceResponse)
	if err := c.cc.Invoke(ctx, "/ringsplit.Store/UseKeyspace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) DescribeRing(ctx context.Context, in *DescribeRingRequest, opts ...grpc.CallOption) (*DescribeRingResponse, error) {
	out := new(DescribeRingResponse)
	if err := c.cc.Invoke(ctx, "/ringsplit.Store/DescribeRing", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) DescribeSplits(ctx context.Context, in *DescribeSplitsRequest, opts ...grpc.CallOption) (*DescribeSplitsResponse, error) {
	out := new(DescribeSplitsResponse)
	if err := c.cc.Invoke(ctx, "/ringsplit.Store/DescribeSplits", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) DescribeSplitPoints(ctx context.Context, in *DescribeSplitPointsRequest, opts ...grpc.CallOption) (*DescribeSplitPointsResponse, error) {
	out := new(DescribeSplitPointsResponse)
	if err := c.cc.Invoke(ctx, "/ringsplit.Store/DescribeSplitPoints", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
