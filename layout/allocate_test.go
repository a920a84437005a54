package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/types"
)

func TestAllocate(t *testing.T) {
	pair := types.Struct("Pair", "Pair",
		types.Member{Name: "x", Type: types.Uint(256)},
		types.Member{Name: "y", Type: types.Int(64)},
	)
	named := types.Struct("Named", "Named",
		types.Member{Name: "pair", Type: types.Struct("Pair", "Pair")},
		types.Member{Name: "label", Type: types.String()},
	)
	grid := types.Struct("Grid", "Grid",
		types.Member{Name: "cells", Type: types.StaticArray(types.Struct("Pair", "Pair"), 3)},
	)

	allocs, err := Allocate(named, grid, pair)
	require.NoError(t, err)
	require.Len(t, allocs, 3)

	p := allocs["Pair"]
	assert.Equal(t, 64, p.Length)
	assert.False(t, p.Dynamic)
	require.Len(t, p.Members, 2)
	assert.Equal(t, Pointer{Start: 0, Length: 32}, p.Members[0].Pointer)
	assert.Equal(t, Pointer{Start: 32, Length: 32}, p.Members[1].Pointer)
	assert.Equal(t, "y", p.Members[1].Name)

	n := allocs["Named"]
	assert.True(t, n.Dynamic)
	assert.Equal(t, 96, n.Length)
	assert.Equal(t, Pointer{Start: 64, Length: 32}, n.Members[1].Pointer)

	g := allocs["Grid"]
	assert.False(t, g.Dynamic)
	assert.Equal(t, 192, g.Length)

	c := NewCalculator(allocs)
	info, err := c.SizeInfo(types.Struct("Named", "Named"))
	require.NoError(t, err)
	assert.Equal(t, Info{Size: 32, Dynamic: true}, info)
}

func TestAllocateRecursiveThroughDynamicArray(t *testing.T) {
	node := types.Struct("Node", "Node",
		types.Member{Name: "value", Type: types.Uint(256)},
		types.Member{Name: "children", Type: types.DynamicArray(types.Struct("Node", "Node"))},
	)

	allocs, err := Allocate(node)
	require.NoError(t, err)
	assert.True(t, allocs["Node"].Dynamic)
	assert.Equal(t, 64, allocs["Node"].Length)
}

func TestAllocateRejectsSelfContainment(t *testing.T) {
	bad := types.Struct("Bad", "Bad",
		types.Member{Name: "inner", Type: types.StaticArray(types.Struct("Bad", "Bad"), 2)},
	)

	_, err := Allocate(bad)
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidData, errors.KindOf(err))
	assert.Contains(t, err.Error(), "contains itself")
}

func TestAllocateUnknownMemberStruct(t *testing.T) {
	s := types.Struct("S", "S", types.Member{Name: "o", Type: types.Struct("Other", "Other")})

	_, err := Allocate(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no allocation for struct")
}

func TestAllocateRejectsNonStruct(t *testing.T) {
	_, err := Allocate(types.Uint(256))
	require.Error(t, err)

	_, err = Allocate(nil)
	require.Error(t, err)
}
