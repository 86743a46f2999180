/*
 *
 * Copyright 2023 CubeFS authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

/*

# RingSplit: split planning for token-ring stores

RingSplit computes the parallel read splits a batch-processing framework
needs to scan a partitioned, replicated token-ring store with data locality.

## How a plan is made

* the ring topology (token ranges plus owning replicas) is fetched from the
first reachable seed node

* an optional key restriction narrows the ring to the interesting part,
with full wraparound awareness on both the ring ranges and the restriction

* every surviving range becomes a planning task; tasks run concurrently
against the range's own replicas, falling back from the size-estimated
split call to the plain boundary-token call on older nodes

* sub ranges come back as locality aware splits (token bounds, row
estimate, candidate hostnames), wraparound sub ranges unwrapped, the final
list shuffled

A single retry budget is shared by all tasks of a pass; exhausting it
aborts the pass and cancels everything still in flight.

## Building Blocks

* gRPC
* Prometheus

*/

package ringsplit
