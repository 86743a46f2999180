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

package errors

import "errors"

var (
	ErrMissingKeyspace    = errors.New("the keyspace must be set in the planner config")
	ErrMissingTable       = errors.New("the table must be set in the planner config")
	ErrMissingSeeds       = errors.New("at least one seed address must be set in the planner config")
	ErrMissingPartitioner = errors.New("the partitioner must be set in the planner config")
	ErrUnknownPartitioner = errors.New("unknown partitioner")

	ErrKeyRestrictionUnordered = errors.New("a key restriction can only be used with an order preserving partitioner")
	ErrKeyRestrictionTokens    = errors.New("only a start/end key pair is supported, not raw token bounds")

	ErrNoSeedReachable    = errors.New("failed connecting to all seed addresses")
	ErrAllEndpointsFailed = errors.New("failed connecting to all endpoints")

	ErrEndpointMismatch = errors.New("rpc endpoint count must match endpoint count")
	ErrNoSplits         = errors.New("planning produced no splits")

	ErrPlanningExhausted = errors.New("could not plan splits, retry budget exhausted")
)
