package layout

import (
	"sync"

	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/types"
)

// cacheLimit bounds the number of composite shapes a calculator remembers.
const cacheLimit = 4096

// Calculator answers size info queries against an allocation table.
// Composite results are cached by shape, so structurally equal descriptors
// share an entry. Safe for concurrent use.
type Calculator struct {
	allocs Allocations
	cache  map[string]Info
	mu     sync.RWMutex
}

func NewCalculator(allocs Allocations) *Calculator {
	return &Calculator{
		allocs: allocs,
		cache:  make(map[string]Info),
	}
}

// Allocations returns the table the calculator reads from.
func (c *Calculator) Allocations() Allocations {
	return c.allocs
}

// SizeInfo returns the head size of t and whether it is dynamic.
func (c *Calculator) SizeInfo(t *types.Type) (Info, error) {
	if t == nil || !t.Kind.IsComposite() {
		return sizeInfo(t, c.lookup)
	}

	key := shapeKey(t)
	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	info, err := sizeInfo(t, c.lookup)
	if err != nil {
		return Info{}, err
	}

	c.mu.Lock()
	if len(c.cache) < cacheLimit {
		c.cache[key] = info
	}
	c.mu.Unlock()
	return info, nil
}

func (c *Calculator) lookup(t *types.Type) (Info, bool, error) {
	alloc, ok := c.allocs[t.ID]
	if !ok {
		return Info{}, false, nil
	}
	return structInfo(alloc), true, nil
}

// structResolver returns the size info of a struct type from an allocation
// table. ok is false when no allocation exists for the struct.
type structResolver func(t *types.Type) (info Info, ok bool, err error)

func sizeInfo(t *types.Type, resolve structResolver) (Info, error) {
	if t == nil {
		return Info{}, errors.NilValue(errors.PhaseLayout, nil, "")
	}
	if t.Kind.IsElementary() {
		return wordStatic, nil
	}

	switch t.Kind {
	case types.KindBytes:
		if t.IsStaticBytes() {
			return wordStatic, nil
		}
		return wordDynamic, nil

	case types.KindString:
		return wordDynamic, nil

	case types.KindArray:
		return arrayInfo(t, resolve)

	case types.KindStruct:
		info, ok, err := resolve(t)
		if err != nil {
			return Info{}, err
		}
		if ok {
			return info, nil
		}
		if t.Members == nil {
			return Info{}, errors.MissingAllocation(t.ID)
		}
		return membersInfo(t.Members, resolve)

	case types.KindTuple:
		return membersInfo(t.Members, resolve)

	default:
		return wordStatic, nil
	}
}

func arrayInfo(t *types.Type, resolve structResolver) (Info, error) {
	if t.Dynamic {
		return wordDynamic, nil
	}
	if t.Length == 0 {
		return Info{}, nil
	}
	elem, err := sizeInfo(t.Elem, resolve)
	if err != nil {
		return Info{}, err
	}
	if elem.Dynamic {
		return wordDynamic, nil
	}
	return Info{Size: elem.Size * t.Length}, nil
}

func membersInfo(members []types.Member, resolve structResolver) (Info, error) {
	size := 0
	for _, m := range members {
		info, err := sizeInfo(m.Type, resolve)
		if err != nil {
			return Info{}, err
		}
		if info.Dynamic {
			return wordDynamic, nil
		}
		size += info.Size
	}
	return Info{Size: size}, nil
}

func structInfo(alloc *StructAllocation) Info {
	if alloc.Dynamic {
		return wordDynamic
	}
	return Info{Size: alloc.Length}
}
