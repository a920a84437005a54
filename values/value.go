package values

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/wippyai/contract-abi/types"
)

// Value is a typed value tree node. The set of implementations is closed;
// each category carries only the fields valid for it.
type Value interface {
	Type() *types.Type
	value()
}

type Uint struct {
	T *types.Type
	V *big.Int
}

type Int struct {
	T *types.Type
	V *big.Int
}

type Bool struct {
	T *types.Type
	V bool
}

// Fixed is a fixed-point number. The type decides signedness and places.
type Fixed struct {
	T *types.Type
	V decimal.Decimal
}

type Address struct {
	T *types.Type
	V common.Address
}

// Contract is a reference to a deployed contract.
type Contract struct {
	T       *types.Type
	Address common.Address
}

// Enum carries the numeric representative of an enum case.
type Enum struct {
	T       *types.Type
	Numeric *big.Int
	Name    string
}

// StaticBytes is a bytes<N> value.
type StaticBytes struct {
	T *types.Type
	V []byte
}

type DynamicBytes struct {
	T *types.Type
	V []byte
}

type String struct {
	T    *types.Type
	Text Text
}

// Text is the payload of a String: ValidText or MalformedText.
type Text interface {
	text()
}

// ValidText is well-formed text.
type ValidText string

// MalformedText holds raw bytes that did not decode as text. They are
// encoded verbatim.
type MalformedText []byte

func (ValidText) text()     {}
func (MalformedText) text() {}

// ExternalFunction is a function pointer to another contract.
type ExternalFunction struct {
	T        *types.Type
	Address  common.Address
	Selector [4]byte
}

// InternalFunction is a code location inside the current contract. It has
// no ABI encoding.
type InternalFunction struct {
	T         *types.Type
	Name      string
	DeployPC  uint64
	RuntimePC uint64
}

// StaticArray and DynamicArray hold their elements in order. A non-nil
// Reference marks a value that participates in a cycle.
type StaticArray struct {
	T         *types.Type
	Reference *int
	Elems     []Value
}

type DynamicArray struct {
	T         *types.Type
	Reference *int
	Elems     []Value
}

// Field is a named struct or tuple component.
type Field struct {
	Value Value
	Name  string
}

type Struct struct {
	T         *types.Type
	Reference *int
	Fields    []Field
}

// Tuple fields may carry names; they do not affect the encoding.
type Tuple struct {
	T      *types.Type
	Fields []Field
}

// Mapping has no ABI encoding.
type Mapping struct {
	T       *types.Type
	Entries []MappingEntry
}

type MappingEntry struct {
	Key   Value
	Value Value
}

// Magic is a system variable such as msg or block. It has no ABI encoding.
type Magic struct {
	T      *types.Type
	Fields []Field
}

// ErrorResult stands in for a value that could not be produced.
type ErrorResult struct {
	T     *types.Type
	Fault Fault
}

// Fault classifies an ErrorResult.
type Fault interface {
	fault()
}

// IndexedReferenceTypeError is an indexed event parameter of reference type;
// only its hash is recorded, so Raw holds that word.
type IndexedReferenceTypeError struct {
	Raw []byte
}

// DecodingFault is any other failure. Kind names it.
type DecodingFault struct {
	Kind    string
	Message string
}

func (IndexedReferenceTypeError) fault() {}
func (DecodingFault) fault()             {}

func (v Uint) Type() *types.Type             { return v.T }
func (v Int) Type() *types.Type              { return v.T }
func (v Bool) Type() *types.Type             { return v.T }
func (v Fixed) Type() *types.Type            { return v.T }
func (v Address) Type() *types.Type          { return v.T }
func (v Contract) Type() *types.Type         { return v.T }
func (v Enum) Type() *types.Type             { return v.T }
func (v StaticBytes) Type() *types.Type      { return v.T }
func (v DynamicBytes) Type() *types.Type     { return v.T }
func (v String) Type() *types.Type           { return v.T }
func (v ExternalFunction) Type() *types.Type { return v.T }
func (v InternalFunction) Type() *types.Type { return v.T }
func (v StaticArray) Type() *types.Type      { return v.T }
func (v DynamicArray) Type() *types.Type     { return v.T }
func (v Struct) Type() *types.Type           { return v.T }
func (v Tuple) Type() *types.Type            { return v.T }
func (v Mapping) Type() *types.Type          { return v.T }
func (v Magic) Type() *types.Type            { return v.T }
func (v ErrorResult) Type() *types.Type      { return v.T }

func (Uint) value()             {}
func (Int) value()              {}
func (Bool) value()             {}
func (Fixed) value()            {}
func (Address) value()          {}
func (Contract) value()         {}
func (Enum) value()             {}
func (StaticBytes) value()      {}
func (DynamicBytes) value()     {}
func (String) value()           {}
func (ExternalFunction) value() {}
func (InternalFunction) value() {}
func (StaticArray) value()      {}
func (DynamicArray) value()     {}
func (Struct) value()           {}
func (Tuple) value()            {}
func (Mapping) value()          {}
func (Magic) value()            {}
func (ErrorResult) value()      {}
