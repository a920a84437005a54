package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/layout"
	"github.com/wippyai/contract-abi/types"
	"github.com/wippyai/contract-abi/values"
)

// Options configures encoder behavior.
type Options struct {
	// VerifyLayout checks size info against every element's encoding and
	// fails with KindSizeMismatch when they disagree.
	VerifyLayout bool
}

// DefaultOptions returns default encoder configuration.
func DefaultOptions() Options {
	return Options{
		VerifyLayout: true,
	}
}

// Encoder turns value trees into contract ABI bytes.
// Safe for concurrent use when its SizeInfoProvider is.
type Encoder struct {
	sizes   contractabi.SizeInfoProvider
	options Options
}

// New creates an Encoder that takes head sizes from sizes.
func New(sizes contractabi.SizeInfoProvider, opts Options) *Encoder {
	return &Encoder{
		sizes:   sizes,
		options: opts,
	}
}

// NewWithDefaults creates an Encoder over a layout.Calculator for allocs
// with default options. allocs may be nil.
func NewWithDefaults(allocs layout.Allocations) *Encoder {
	return New(layout.NewCalculator(allocs), DefaultOptions())
}

// Options returns the configuration.
func (e *Encoder) Options() Options {
	return e.options
}

// Encode encodes v with a fresh Encoder over allocs.
func Encode(v values.Value, allocs layout.Allocations) ([]byte, error) {
	return NewWithDefaults(allocs).Encode(v)
}

// EncodeTuple encodes elems as a tuple with a fresh Encoder over allocs.
func EncodeTuple(elems []values.Value, allocs layout.Allocations) ([]byte, error) {
	return NewWithDefaults(allocs).EncodeTuple(elems)
}

// Encode returns the ABI encoding of v. Values without an ABI
// representation yield an error for which errors.IsNotEncodable is true.
func (e *Encoder) Encode(v values.Value) ([]byte, error) {
	return e.encode(v, nil)
}

// EncodeTuple returns the head/tail encoding of elems, as used for argument
// and return value lists.
func (e *Encoder) EncodeTuple(elems []values.Value) ([]byte, error) {
	return e.encodeTuple(elems, nil, nil)
}

// EncodeCall returns call data: the function selector followed by the
// encoded arguments.
func (e *Encoder) EncodeCall(selector [contractabi.SelectorSize]byte, args []values.Value) ([]byte, error) {
	body, err := e.encodeTuple(args, nil, []string{"args"})
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(selector)+len(body))
	out = append(out, selector[:]...)
	return append(out, body...), nil
}

func (e *Encoder) encode(v values.Value, path []string) ([]byte, error) {
	if v != nil && v.Type() == nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindNilValue).
			Path(path...).
			Detail("%T value has no type", v).
			Build()
	}

	switch x := v.(type) {
	case values.Uint:
		return encodeUnsigned(x.T, x.V, path)

	case values.Int:
		return encodeSigned(x.T, x.V, path)

	case values.Enum:
		return encodeUnsigned(x.T, x.Numeric, path)

	case values.Bool:
		return encodeBool(x.V), nil

	case values.Fixed:
		return encodeFixed(x.T, x.V, path)

	case values.Address:
		return encodeAddress(x.V), nil

	case values.Contract:
		return encodeAddress(x.Address), nil

	case values.StaticBytes:
		return encodeStaticBytes(x.T, x.V, path)

	case values.DynamicBytes:
		return encodeDynamicBytes(x.V), nil

	case values.String:
		return encodeString(x.Text, path)

	case values.ExternalFunction:
		return encodeExternalFunction(x.Address, x.Selector), nil

	case values.InternalFunction:
		return nil, notEncodable(path, x.T, "internal functions have no ABI encoding")

	case values.StaticArray:
		if x.Reference != nil {
			return nil, notEncodable(path, x.T, "cyclic value")
		}
		if len(x.Elems) != x.T.Length {
			err := errors.InvalidData(errors.PhaseEncode, path,
				fmt.Sprintf("static array has %d elements, type declares %d", len(x.Elems), x.T.Length))
			err.Type = x.T.String()
			return nil, err
		}
		return e.encodeTuple(x.Elems, nil, path)

	case values.DynamicArray:
		if x.Reference != nil {
			return nil, notEncodable(path, x.T, "cyclic value")
		}
		body, err := e.encodeTuple(x.Elems, nil, path)
		if err != nil {
			return nil, err
		}
		return prependCount(len(x.Elems), body), nil

	case values.Struct:
		if x.Reference != nil {
			return nil, notEncodable(path, x.T, "cyclic value")
		}
		elems, names := splitFields(x.Fields)
		return e.encodeTuple(elems, names, path)

	case values.Tuple:
		elems, names := splitFields(x.Fields)
		return e.encodeTuple(elems, names, path)

	case values.Mapping:
		return nil, notEncodable(path, x.T, "mappings have no ABI encoding")

	case values.Magic:
		return nil, notEncodable(path, x.T, "magic values have no ABI encoding")

	case values.ErrorResult:
		return encodeErrorResult(x, path)

	case nil:
		return nil, errors.NilValue(errors.PhaseEncode, path, "")

	default:
		return nil, errors.New(errors.PhaseEncode, errors.KindUnsupported).
			Path(path...).
			Type(typeName(v.Type())).
			Detail("unsupported value %T", v).
			Build()
	}
}

func notEncodable(path []string, t *types.Type, reason string) *errors.Error {
	name := typeName(t)
	Logger().Debug("value not encodable",
		zap.String("type", name),
		zap.String("path", strings.Join(path, ".")),
		zap.String("reason", reason))
	return errors.NotEncodable(errors.PhaseEncode, path, name, reason)
}

func typeName(t *types.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func splitFields(fields []values.Field) ([]values.Value, []string) {
	elems := make([]values.Value, len(fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		elems[i] = f.Value
		names[i] = f.Name
	}
	return elems, names
}

// childPath returns path extended with the field name, or with the index
// when the element is unnamed.
func childPath(path []string, names []string, i int) []string {
	seg := ""
	if i < len(names) {
		seg = names[i]
	}
	if seg == "" {
		seg = "[" + strconv.Itoa(i) + "]"
	}
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
