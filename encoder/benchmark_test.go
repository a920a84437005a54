package encoder

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/contract-abi/types"
	"github.com/wippyai/contract-abi/values"
)

func BenchmarkEncodeUint(b *testing.B) {
	enc := NewWithDefaults(nil)
	v := values.NewUint64(256, 123456789)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeTransferCall(b *testing.B) {
	enc := NewWithDefaults(nil)
	sel := [4]byte{0xa9, 0x05, 0x9c, 0xbb}
	args := []values.Value{
		values.NewAddress(common.HexToAddress("0x5B38Da6a701c568545dCfcBd03Fc8B7c2B4bB6a3")),
		values.NewUint64(256, 1000),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.EncodeCall(sel, args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeStringArray(b *testing.B) {
	enc := NewWithDefaults(nil)
	elems := make([]values.Value, 64)
	for i := range elems {
		elems[i] = values.NewString(strings.Repeat("x", i))
	}
	v := values.NewDynamicArray(types.String(), elems...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeNestedTuple(b *testing.B) {
	enc := NewWithDefaults(nil)
	inner := values.NewTuple(values.NewBool(true), values.NewDynamicBytes(make([]byte, 100)))
	v := values.NewTuple(inner, inner, values.NewInt64(128, -1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}
