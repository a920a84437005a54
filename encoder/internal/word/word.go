package word

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	contractabi "github.com/wippyai/contract-abi"
)

const Size = contractabi.WordSize

// PaddedLength rounds n up to a whole number of words.
func PaddedLength(n int) int {
	return (n + Size - 1) / Size * Size
}

// PadAndPrependLength returns a length word followed by b, zero-padded on the
// right to a word boundary.
func PadAndPrependLength(b []byte) []byte {
	out := make([]byte, Size+PaddedLength(len(b)))
	binary.BigEndian.PutUint64(out[Size-8:Size], uint64(len(b)))
	copy(out[Size:], b)
	return out
}

// AppendUint64 appends n as a big-endian word to dst.
func AppendUint64(dst []byte, n uint64) []byte {
	var w [Size]byte
	binary.BigEndian.PutUint64(w[Size-8:], n)
	return append(dst, w[:]...)
}

// Bool returns a word whose last byte is 1 for true.
func Bool(v bool) []byte {
	out := make([]byte, Size)
	if v {
		out[Size-1] = 1
	}
	return out
}

// Unsigned returns v as a big-endian word. ok is false when v is negative
// or needs more than bits bits.
func Unsigned(v *big.Int, bits int) ([]byte, bool) {
	if v.Sign() < 0 || v.BitLen() > bits {
		return nil, false
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return nil, false
	}
	w := u.Bytes32()
	return w[:], true
}

// Signed returns v as a two's complement word. ok is false when v falls
// outside [-2^(bits-1), 2^(bits-1)).
func Signed(v *big.Int, bits int) ([]byte, bool) {
	if bits <= 0 || bits > Size*8 || !fitsSigned(v, bits) {
		return nil, false
	}
	return math.U256Bytes(new(big.Int).Set(v)), true
}

func fitsSigned(v *big.Int, bits int) bool {
	if v.Sign() >= 0 {
		return v.BitLen() <= bits-1
	}
	// -2^(bits-1) is the smallest value; |v|-1 must fit in bits-1
	m := new(big.Int).Neg(v)
	m.Sub(m, big.NewInt(1))
	return m.BitLen() <= bits-1
}

// RightAligned places b at the end of a zeroed word. len(b) must not exceed Size.
func RightAligned(b []byte) []byte {
	return common.LeftPadBytes(common.CopyBytes(b), Size)
}

// LeftAligned places b at the start of a zeroed word. len(b) must not exceed Size.
func LeftAligned(b []byte) []byte {
	return common.RightPadBytes(common.CopyBytes(b), Size)
}
