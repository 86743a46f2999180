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

package proto

// TokenRange is one contiguous interval of the ring together with the
// replicas owning it. Endpoints holds the internal (gossip) addresses,
// RPCEndpoints the client facing ones; index i of both lists refers to the
// same physical replica. An rpc endpoint may be empty or the wildcard
// sentinel, meaning the internal address at the same index is the one to use.
type TokenRange struct {
	StartToken   string   `json:"start_token"`
	EndToken     string   `json:"end_token"`
	Endpoints    []string `json:"endpoints"`
	RPCEndpoints []string `json:"rpc_endpoints"`
}

// SubSplit is the raw sub range reported by a single replica for one
// planning task.
type SubSplit struct {
	StartToken string `json:"start_token"`
	EndToken   string `json:"end_token"`
	RowCount   uint64 `json:"row_count"`
}

// Split is the externally visible work unit handed to the batch framework.
// Hostnames lists candidate hosts for locality scheduling, aligned with the
// owning range's replica order.
type Split struct {
	StartToken string   `json:"start_token"`
	EndToken   string   `json:"end_token"`
	RowCount   uint64   `json:"row_count"`
	Hostnames  []string `json:"hostnames"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
