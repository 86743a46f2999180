package partitioner

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spaolacci/murmur3"
)

// LongToken is a position on the signed 64 bit ring used by Murmur3.
type LongToken int64

func (t LongToken) Compare(other Token) int {
	o := other.(LongToken)
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}

func (t LongToken) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// Murmur3 hashes keys onto the int64 ring. Token order does not follow key
// order, so key restrictions are rejected for it.
type Murmur3 struct{}

func (Murmur3) Name() string         { return NameMurmur3 }
func (Murmur3) PreservesOrder() bool { return false }

func (Murmur3) FromString(s string) (Token, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse murmur3 token %q: %w", s, err)
	}
	return LongToken(v), nil
}

func (Murmur3) ToString(t Token) string { return t.String() }

func (Murmur3) FromKey(key []byte) Token {
	if len(key) == 0 {
		return LongToken(math.MinInt64)
	}
	h1, _ := murmur3.Sum128(key)
	v := int64(h1)
	// the minimum value is reserved as the ring origin
	if v == math.MinInt64 {
		v = math.MaxInt64
	}
	return LongToken(v)
}

func (Murmur3) MinToken() Token { return LongToken(math.MinInt64) }
func (Murmur3) MaxToken() Token { return LongToken(math.MaxInt64) }
