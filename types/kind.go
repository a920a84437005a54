package types

// Kind is the category of an ABI type.
type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindFixed
	KindUfixed
	KindAddress
	KindContract
	KindEnum
	KindBytes
	KindString
	KindFunction
	KindArray
	KindStruct
	KindTuple
	KindMapping
	KindMagic
)

var kindNames = [...]string{
	KindUint:     "uint",
	KindInt:      "int",
	KindBool:     "bool",
	KindFixed:    "fixed",
	KindUfixed:   "ufixed",
	KindAddress:  "address",
	KindContract: "contract",
	KindEnum:     "enum",
	KindBytes:    "bytes",
	KindString:   "string",
	KindFunction: "function",
	KindArray:    "array",
	KindStruct:   "struct",
	KindTuple:    "tuple",
	KindMapping:  "mapping",
	KindMagic:    "magic",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsElementary reports whether values of this kind encode to a single word
// without consulting any other type.
func (k Kind) IsElementary() bool {
	switch k {
	case KindUint, KindInt, KindBool, KindFixed, KindUfixed, KindAddress, KindContract, KindEnum:
		return true
	default:
		return false
	}
}

// IsComposite reports whether values of this kind go through the tuple layout.
func (k Kind) IsComposite() bool {
	switch k {
	case KindArray, KindStruct, KindTuple:
		return true
	default:
		return false
	}
}

// Visibility of a function type.
type Visibility uint8

const (
	External Visibility = iota
	Internal
)

func (v Visibility) String() string {
	if v == Internal {
		return "internal"
	}
	return "external"
}
