package values

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/wippyai/contract-abi/types"
)

func NewUint(bits int, v *big.Int) Uint { return Uint{T: types.Uint(bits), V: v} }

func NewUint64(bits int, v uint64) Uint { return NewUint(bits, new(big.Int).SetUint64(v)) }

func NewInt(bits int, v *big.Int) Int { return Int{T: types.Int(bits), V: v} }

func NewInt64(bits int, v int64) Int { return NewInt(bits, big.NewInt(v)) }

func NewBool(v bool) Bool { return Bool{T: types.Bool(), V: v} }

func NewFixed(bits, places int, v decimal.Decimal) Fixed {
	return Fixed{T: types.Fixed(bits, places), V: v}
}

func NewUfixed(bits, places int, v decimal.Decimal) Fixed {
	return Fixed{T: types.Ufixed(bits, places), V: v}
}

func NewAddress(v common.Address) Address { return Address{T: types.Address(), V: v} }

func NewContract(name string, addr common.Address) Contract {
	return Contract{T: types.Contract(name), Address: addr}
}

func NewEnum(t *types.Type, numeric uint64, name string) Enum {
	return Enum{T: t, Numeric: new(big.Int).SetUint64(numeric), Name: name}
}

// NewStaticBytes returns a bytes<len(v)> value.
func NewStaticBytes(v []byte) StaticBytes {
	return StaticBytes{T: types.StaticBytes(len(v)), V: v}
}

func NewDynamicBytes(v []byte) DynamicBytes {
	return DynamicBytes{T: types.DynamicBytes(), V: v}
}

func NewString(s string) String { return String{T: types.String(), Text: ValidText(s)} }

// NewMalformedString wraps raw bytes that are not valid text.
func NewMalformedString(raw []byte) String {
	return String{T: types.String(), Text: MalformedText(raw)}
}

func NewExternalFunction(addr common.Address, selector [4]byte) ExternalFunction {
	return ExternalFunction{T: types.ExternalFunction(), Address: addr, Selector: selector}
}

func NewInternalFunction(name string) InternalFunction {
	return InternalFunction{T: types.InternalFunction(), Name: name}
}

// NewStaticArray returns an elem[len(elems)] value.
func NewStaticArray(elem *types.Type, elems ...Value) StaticArray {
	return StaticArray{T: types.StaticArray(elem, len(elems)), Elems: elems}
}

func NewDynamicArray(elem *types.Type, elems ...Value) DynamicArray {
	return DynamicArray{T: types.DynamicArray(elem), Elems: elems}
}

// NewStruct builds a struct value whose type lists the fields inline.
func NewStruct(id, name string, fields ...Field) Struct {
	members := make([]types.Member, len(fields))
	for i, f := range fields {
		members[i] = types.Member{Name: f.Name, Type: f.Value.Type()}
	}
	return Struct{T: types.Struct(id, name, members...), Fields: fields}
}

// NewTuple builds an unnamed tuple from its elements.
func NewTuple(elems ...Value) Tuple {
	fields := make([]Field, len(elems))
	members := make([]types.Member, len(elems))
	for i, v := range elems {
		fields[i] = Field{Value: v}
		members[i] = types.Member{Type: v.Type()}
	}
	return Tuple{T: types.Tuple(members...), Fields: fields}
}

func NewMapping(key, value *types.Type, entries ...MappingEntry) Mapping {
	return Mapping{T: types.Mapping(key, value), Entries: entries}
}

func NewMagic(variable string, fields ...Field) Magic {
	return Magic{T: types.Magic(variable), Fields: fields}
}

// NewIndexedReference returns the error value recorded for an indexed event
// parameter of reference type.
func NewIndexedReference(t *types.Type, raw []byte) ErrorResult {
	return ErrorResult{T: t, Fault: IndexedReferenceTypeError{Raw: raw}}
}

func NewDecodingFault(t *types.Type, kind, message string) ErrorResult {
	return ErrorResult{T: t, Fault: DecodingFault{Kind: kind, Message: message}}
}

// Cyclic returns a copy of v marked as referring back to the ancestor at the
// given depth.
func Cyclic[V StaticArray | DynamicArray | Struct](v V, depth int) V {
	d := depth
	switch x := any(&v).(type) {
	case *StaticArray:
		x.Reference = &d
	case *DynamicArray:
		x.Reference = &d
	case *Struct:
		x.Reference = &d
	}
	return v
}
