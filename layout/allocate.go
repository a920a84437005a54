package layout

import (
	"go.uber.org/zap"

	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/types"
)

type allocator struct {
	defs     map[string]*types.Type
	allocs   Allocations
	visiting map[string]bool
}

// Allocate builds the allocation table for a set of struct definitions.
// Members that refer to other structs by ID are resolved against defs; a
// struct that contains itself other than through a dynamic array is rejected.
func Allocate(defs ...*types.Type) (Allocations, error) {
	a := &allocator{
		defs:     make(map[string]*types.Type, len(defs)),
		allocs:   make(Allocations, len(defs)),
		visiting: make(map[string]bool),
	}

	for _, d := range defs {
		if d == nil || d.Kind != types.KindStruct {
			return nil, errors.New(errors.PhaseLayout, errors.KindInvalidData).
				Type(d.String()).
				Detail("not a struct definition").
				Build()
		}
		a.defs[d.ID] = d
	}

	for _, d := range defs {
		if _, err := a.allocate(d.ID); err != nil {
			return nil, err
		}
	}
	return a.allocs, nil
}

func (a *allocator) allocate(id string) (*StructAllocation, error) {
	if alloc, ok := a.allocs[id]; ok {
		return alloc, nil
	}
	def, ok := a.defs[id]
	if !ok {
		return nil, errors.MissingAllocation(id)
	}
	if a.visiting[id] {
		return nil, errors.New(errors.PhaseLayout, errors.KindInvalidData).
			Type(def.String()).
			Detail("struct %q contains itself without a dynamic array in between", id).
			Build()
	}
	a.visiting[id] = true
	defer delete(a.visiting, id)

	alloc := &StructAllocation{
		ID:      id,
		Members: make([]MemberAllocation, 0, len(def.Members)),
	}
	start := 0
	for _, m := range def.Members {
		info, err := sizeInfo(m.Type, a.resolve)
		if err != nil {
			return nil, errors.New(errors.PhaseLayout, errors.KindInvalidData).
				Path(id, m.Name).
				Detail("allocate member").
				Cause(err).
				Build()
		}
		alloc.Members = append(alloc.Members, MemberAllocation{
			Type:    m.Type,
			Name:    m.Name,
			Pointer: Pointer{Start: start, Length: info.Size},
		})
		start += info.Size
		if info.Dynamic {
			alloc.Dynamic = true
		}
	}
	alloc.Length = start

	a.allocs[id] = alloc
	Logger().Debug("allocated struct",
		zap.String("id", id),
		zap.Int("length", alloc.Length),
		zap.Bool("dynamic", alloc.Dynamic))
	return alloc, nil
}

func (a *allocator) resolve(t *types.Type) (Info, bool, error) {
	if _, known := a.defs[t.ID]; !known {
		return Info{}, false, nil
	}
	alloc, err := a.allocate(t.ID)
	if err != nil {
		return Info{}, false, err
	}
	return structInfo(alloc), true, nil
}
