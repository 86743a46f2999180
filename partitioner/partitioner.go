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

// Package partitioner models the store's token ring: opaque ordered tokens,
// the partitioners that produce them, and ring aware interval math.
//
// The ring is treated as the half open interval [MinToken, MaxToken) that
// wraps past MaxToken back to MinToken. MaxToken is an exclusive upper bound
// sentinel; no row maps to it.
package partitioner

import (
	"strings"

	"github.com/cubefs/ringsplit/errors"
)

const (
	NameMurmur3     = "murmur3"
	NameByteOrdered = "byteordered"
)

type (
	// Token is an ordered coordinate in the ring space.
	Token interface {
		// Compare returns -1, 0 or 1. It must only be called with a token
		// produced by the same partitioner.
		Compare(other Token) int
		String() string
	}

	// Partitioner maps keys to tokens and converts tokens to and from their
	// wire representation.
	Partitioner interface {
		Name() string
		// PreservesOrder reports whether token order follows key order,
		// which is what makes key based range restrictions meaningful.
		PreservesOrder() bool
		FromString(s string) (Token, error)
		ToString(t Token) string
		// FromKey maps a row key to its ring position. A nil or empty key
		// maps to MinToken.
		FromKey(key []byte) Token
		MinToken() Token
		MaxToken() Token
	}
)

// New resolves a partitioner by name. Trailing package qualifiers are
// accepted so configs may carry a fully qualified name.
func New(name string) (Partitioner, error) {
	short := name
	if i := strings.LastIndexByte(short, '.'); i >= 0 {
		short = short[i+1:]
	}
	switch strings.ToLower(short) {
	case NameMurmur3, "murmur3partitioner":
		return Murmur3{}, nil
	case NameByteOrdered, "byteorderedpartitioner":
		return ByteOrdered{}, nil
	default:
		return nil, errors.ErrUnknownPartitioner
	}
}
