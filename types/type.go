package types

import (
	"strconv"
	"strings"
)

// Type describes an ABI type. Only the fields meaningful for Kind are set.
type Type struct {
	Elem       *Type    // array element type
	ID         string   // struct allocation key
	Name       string   // struct, enum, contract or magic name
	Members    []Member // tuple members; struct members when defined inline
	Kind       Kind
	Bits       int        // uint, int, fixed, ufixed
	Places     int        // fixed, ufixed
	Length     int        // static bytes and static arrays
	Dynamic    bool       // bytes and arrays
	Visibility Visibility // functions
}

// Member is a named component of a struct or tuple type.
type Member struct {
	Type *Type
	Name string
}

func Uint(bits int) *Type { return &Type{Kind: KindUint, Bits: bits} }

func Int(bits int) *Type { return &Type{Kind: KindInt, Bits: bits} }

func Bool() *Type { return &Type{Kind: KindBool} }

func Address() *Type { return &Type{Kind: KindAddress} }

func String() *Type { return &Type{Kind: KindString} }

// Fixed returns a signed fixed-point type with the given decimal places.
func Fixed(bits, places int) *Type { return &Type{Kind: KindFixed, Bits: bits, Places: places} }

// Ufixed returns an unsigned fixed-point type with the given decimal places.
func Ufixed(bits, places int) *Type { return &Type{Kind: KindUfixed, Bits: bits, Places: places} }

func Contract(name string) *Type { return &Type{Kind: KindContract, Name: name} }

// Enum returns an enum type; its values encode as uint8 representatives.
func Enum(id, name string) *Type { return &Type{Kind: KindEnum, ID: id, Name: name, Bits: 8} }

// StaticBytes returns bytes<length>.
func StaticBytes(length int) *Type { return &Type{Kind: KindBytes, Length: length} }

func DynamicBytes() *Type { return &Type{Kind: KindBytes, Dynamic: true} }

func ExternalFunction() *Type { return &Type{Kind: KindFunction, Visibility: External} }

func InternalFunction() *Type { return &Type{Kind: KindFunction, Visibility: Internal} }

func StaticArray(elem *Type, length int) *Type {
	return &Type{Kind: KindArray, Elem: elem, Length: length}
}

func DynamicArray(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem, Dynamic: true}
}

// Struct returns a struct type. Members may be omitted when the layout comes
// from an allocation table keyed by id.
func Struct(id, name string, members ...Member) *Type {
	return &Type{Kind: KindStruct, ID: id, Name: name, Members: members}
}

func Tuple(members ...Member) *Type {
	return &Type{Kind: KindTuple, Members: members}
}

// Mapping returns a mapping type. Key and value are kept as members.
func Mapping(key, value *Type) *Type {
	return &Type{Kind: KindMapping, Members: []Member{{Name: "key", Type: key}, {Name: "value", Type: value}}}
}

// Magic returns the type of a system variable such as msg or block.
func Magic(variable string) *Type { return &Type{Kind: KindMagic, Name: variable} }

// IsStaticBytes reports whether t is bytes<N>.
func (t *Type) IsStaticBytes() bool {
	return t.Kind == KindBytes && !t.Dynamic
}

// String returns a readable type name for diagnostics, such as "uint256",
// "bytes32", "struct Pair" or "tuple(uint256,string)". Canonical signature
// names live in the selector package.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindUint, KindInt:
		return t.Kind.String() + strconv.Itoa(t.bitsOrDefault())
	case KindFixed, KindUfixed:
		return t.Kind.String() + strconv.Itoa(t.bitsOrDefault()) + "x" + strconv.Itoa(t.Places)
	case KindBytes:
		if t.Dynamic {
			return "bytes"
		}
		return "bytes" + strconv.Itoa(t.Length)
	case KindFunction:
		return "function " + t.Visibility.String()
	case KindArray:
		if t.Dynamic {
			return t.Elem.String() + "[]"
		}
		return t.Elem.String() + "[" + strconv.Itoa(t.Length) + "]"
	case KindStruct:
		return "struct " + t.Name
	case KindEnum:
		return "enum " + t.Name
	case KindContract:
		if t.Name == "" {
			return "contract"
		}
		return "contract " + t.Name
	case KindMagic:
		return "magic " + t.Name
	case KindTuple:
		var b strings.Builder
		b.WriteString("tuple(")
		for i, m := range t.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(m.Type.String())
		}
		b.WriteByte(')')
		return b.String()
	case KindMapping:
		if len(t.Members) < 2 {
			return "mapping"
		}
		return "mapping(" + t.Members[0].Type.String() + " => " + t.Members[1].Type.String() + ")"
	default:
		return t.Kind.String()
	}
}

func (t *Type) bitsOrDefault() int {
	if t.Bits == 0 {
		if t.Kind == KindFixed || t.Kind == KindUfixed {
			return 128
		}
		return 256
	}
	return t.Bits
}

// EffectiveBits returns the declared bit width, applying the language
// defaults (256 for integers, 128 for fixed-point) when unset.
func (t *Type) EffectiveBits() int {
	return t.bitsOrDefault()
}
