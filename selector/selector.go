package selector

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/layout"
	"github.com/wippyai/contract-abi/types"
)

// Selector is the first four bytes of the Keccak-256 hash of a function
// signature.
type Selector = [contractabi.SelectorSize]byte

// FromSignature hashes a canonical signature such as "transfer(address,uint256)".
func FromSignature(signature string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature)))
	return s
}

// ForFunction builds the canonical signature of name(params...) and hashes it.
func ForFunction(name string, params []*types.Type, allocs layout.Allocations) (Selector, error) {
	sig, err := Signature(name, params, allocs)
	if err != nil {
		return Selector{}, err
	}
	return FromSignature(sig), nil
}

// Signature returns "name(T1,T2,...)" using canonical type names.
func Signature(name string, params []*types.Type, allocs layout.Allocations) (string, error) {
	var b strings.Builder
	b.WriteString(name)
	if err := writeList(&b, params, allocs, []string{name}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// TypeSignature returns the canonical ABI name of t: uint256, bytes32,
// address for contracts, uint8 for enums, function for external functions,
// and parenthesized member lists for structs and tuples.
func TypeSignature(t *types.Type, allocs layout.Allocations) (string, error) {
	var b strings.Builder
	if err := writeType(&b, t, allocs, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeType(b *strings.Builder, t *types.Type, allocs layout.Allocations, path []string) error {
	if t == nil {
		return errors.NilValue(errors.PhaseSignature, path, "")
	}

	switch t.Kind {
	case types.KindUint, types.KindInt:
		b.WriteString(t.Kind.String())
		b.WriteString(strconv.Itoa(t.EffectiveBits()))

	case types.KindFixed, types.KindUfixed:
		b.WriteString(t.Kind.String())
		b.WriteString(strconv.Itoa(t.EffectiveBits()))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(t.Places))

	case types.KindBool, types.KindString:
		b.WriteString(t.Kind.String())

	case types.KindAddress, types.KindContract:
		b.WriteString("address")

	case types.KindEnum:
		b.WriteString("uint")
		b.WriteString(strconv.Itoa(t.EffectiveBits()))

	case types.KindBytes:
		b.WriteString("bytes")
		if !t.Dynamic {
			b.WriteString(strconv.Itoa(t.Length))
		}

	case types.KindFunction:
		if t.Visibility == types.Internal {
			return errors.NotEncodable(errors.PhaseSignature, path, t.String(), "internal functions have no ABI type")
		}
		b.WriteString("function")

	case types.KindArray:
		if err := writeType(b, t.Elem, allocs, path); err != nil {
			return err
		}
		b.WriteByte('[')
		if !t.Dynamic {
			b.WriteString(strconv.Itoa(t.Length))
		}
		b.WriteByte(']')

	case types.KindStruct:
		members, err := structMembers(t, allocs)
		if err != nil {
			return err
		}
		return writeList(b, members, allocs, path)

	case types.KindTuple:
		members := make([]*types.Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = m.Type
		}
		return writeList(b, members, allocs, path)

	case types.KindMapping, types.KindMagic:
		return errors.NotEncodable(errors.PhaseSignature, path, t.String(), t.Kind.String()+" values have no ABI type")

	default:
		return errors.Unsupported(errors.PhaseSignature, "type kind: "+t.Kind.String())
	}
	return nil
}

func writeList(b *strings.Builder, list []*types.Type, allocs layout.Allocations, path []string) error {
	b.WriteByte('(')
	for i, t := range list {
		if i > 0 {
			b.WriteByte(',')
		}
		elemPath := append(append([]string{}, path...), "["+strconv.Itoa(i)+"]")
		if err := writeType(b, t, allocs, elemPath); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

// structMembers prefers the allocation table, falling back to inline members.
func structMembers(t *types.Type, allocs layout.Allocations) ([]*types.Type, error) {
	if alloc, ok := allocs[t.ID]; ok {
		out := make([]*types.Type, len(alloc.Members))
		for i, m := range alloc.Members {
			out[i] = m.Type
		}
		return out, nil
	}
	if t.Members == nil {
		return nil, errors.MissingAllocation(t.ID)
	}
	out := make([]*types.Type, len(t.Members))
	for i, m := range t.Members {
		out[i] = m.Type
	}
	return out, nil
}
