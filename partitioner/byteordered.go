package partitioner

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// maxBytesMarker is the wire form of the byte ordered ring's upper bound
// sentinel, which has no byte representation of its own.
const maxBytesMarker = "MAX"

// BytesToken is a position on the lexicographically ordered byte ring.
// The zero value (empty bytes) is the minimum token.
type BytesToken struct {
	Bytes []byte
	// Max marks the exclusive upper bound sentinel that compares greater
	// than every real token.
	Max bool
}

func (t BytesToken) Compare(other Token) int {
	o := other.(BytesToken)
	switch {
	case t.Max && o.Max:
		return 0
	case t.Max:
		return 1
	case o.Max:
		return -1
	}
	return bytes.Compare(t.Bytes, o.Bytes)
}

func (t BytesToken) String() string {
	if t.Max {
		return maxBytesMarker
	}
	return hex.EncodeToString(t.Bytes)
}

// ByteOrdered keeps keys in lexicographic order on the ring, the key itself
// being its own token. It is the partitioner that makes key restrictions
// legal.
type ByteOrdered struct{}

func (ByteOrdered) Name() string         { return NameByteOrdered }
func (ByteOrdered) PreservesOrder() bool { return true }

func (ByteOrdered) FromString(s string) (Token, error) {
	if s == maxBytesMarker {
		return BytesToken{Max: true}, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse byteordered token %q: %w", s, err)
	}
	return BytesToken{Bytes: b}, nil
}

func (ByteOrdered) ToString(t Token) string { return t.String() }

func (ByteOrdered) FromKey(key []byte) Token {
	b := make([]byte, len(key))
	copy(b, key)
	return BytesToken{Bytes: b}
}

func (ByteOrdered) MinToken() Token { return BytesToken{} }
func (ByteOrdered) MaxToken() Token { return BytesToken{Max: true} }
