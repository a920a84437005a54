package layout

import "github.com/wippyai/contract-abi/types"

const wordSize = 32

// Info is the head slot size of a type and whether the type is dynamic.
// Dynamic types always have a one-word head holding a tail offset.
type Info struct {
	Size    int
	Dynamic bool
}

var (
	wordStatic  = Info{Size: wordSize}
	wordDynamic = Info{Size: wordSize, Dynamic: true}
)

// Pointer locates a member's head slot inside its struct's head section.
type Pointer struct {
	Start  int
	Length int
}

// MemberAllocation is one struct member with its head slot.
type MemberAllocation struct {
	Type    *types.Type
	Name    string
	Pointer Pointer
}

// StructAllocation is the ABI layout of a struct. Length is the total size
// of the members' head slots.
type StructAllocation struct {
	ID      string
	Members []MemberAllocation
	Length  int
	Dynamic bool
}

// Allocations maps struct IDs to their layout.
type Allocations map[string]*StructAllocation
