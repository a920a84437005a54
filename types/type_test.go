package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "uint", KindUint.String())
	assert.Equal(t, "magic", KindMagic.String())
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestKindClasses(t *testing.T) {
	for _, k := range []Kind{KindUint, KindInt, KindBool, KindFixed, KindUfixed, KindAddress, KindContract, KindEnum} {
		assert.True(t, k.IsElementary(), k.String())
		assert.False(t, k.IsComposite(), k.String())
	}
	for _, k := range []Kind{KindArray, KindStruct, KindTuple} {
		assert.True(t, k.IsComposite(), k.String())
		assert.False(t, k.IsElementary(), k.String())
	}
	for _, k := range []Kind{KindBytes, KindString, KindFunction, KindMapping, KindMagic} {
		assert.False(t, k.IsComposite(), k.String())
		assert.False(t, k.IsElementary(), k.String())
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{Uint(256), "uint256"},
		{Uint(0), "uint256"},
		{Int(8), "int8"},
		{Bool(), "bool"},
		{Address(), "address"},
		{Contract("Token"), "contract Token"},
		{Contract(""), "contract"},
		{Enum("E", "Color"), "enum Color"},
		{Fixed(0, 18), "fixed128x18"},
		{Ufixed(64, 2), "ufixed64x2"},
		{StaticBytes(32), "bytes32"},
		{DynamicBytes(), "bytes"},
		{String(), "string"},
		{ExternalFunction(), "function external"},
		{InternalFunction(), "function internal"},
		{StaticArray(Uint(8), 3), "uint8[3]"},
		{DynamicArray(DynamicArray(String())), "string[][]"},
		{Struct("S", "Pair"), "struct Pair"},
		{Tuple(Member{Type: Uint(256)}, Member{Type: String()}), "tuple(uint256,string)"},
		{Mapping(Address(), Uint(256)), "mapping(address => uint256)"},
		{Magic("msg"), "magic msg"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	assert.True(t, StaticBytes(4).IsStaticBytes())
	assert.False(t, DynamicBytes().IsStaticBytes())
	assert.False(t, String().IsStaticBytes())

	e := Enum("E", "Color")
	assert.Equal(t, 8, e.EffectiveBits())

	arr := StaticArray(Bool(), 0)
	assert.False(t, arr.Dynamic)
	assert.Equal(t, 0, arr.Length)

	s := Struct("S", "Pair", Member{Name: "a", Type: Uint(256)})
	assert.Equal(t, KindStruct, s.Kind)
	assert.Len(t, s.Members, 1)

	assert.Equal(t, Internal, InternalFunction().Visibility)
	assert.Equal(t, "internal", Internal.String())
	assert.Equal(t, "external", External.String())
}
