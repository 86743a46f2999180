package proto

const (
	ReqIdKey = "req-id"

	// WildcardEndpoint marks an rpc endpoint that was never bound on the
	// replica; the internal endpoint at the same index must be used instead.
	WildcardEndpoint = "0.0.0.0"
)
