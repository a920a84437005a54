package encoder

import (
	"math/big"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/encoder/internal/word"
	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/types"
	"github.com/wippyai/contract-abi/values"
)

func bitsOf(t *types.Type) int {
	if t == nil {
		return contractabi.WordSize * 8
	}
	return t.EffectiveBits()
}

func encodeUnsigned(t *types.Type, v *big.Int, path []string) ([]byte, error) {
	if v == nil {
		return nil, errors.NilValue(errors.PhaseEncode, path, typeName(t))
	}
	w, ok := word.Unsigned(v, bitsOf(t))
	if !ok {
		return nil, errors.Overflow(errors.PhaseEncode, path, v.String(), typeName(t))
	}
	return w, nil
}

func encodeSigned(t *types.Type, v *big.Int, path []string) ([]byte, error) {
	if v == nil {
		return nil, errors.NilValue(errors.PhaseEncode, path, typeName(t))
	}
	w, ok := word.Signed(v, bitsOf(t))
	if !ok {
		return nil, errors.Overflow(errors.PhaseEncode, path, v.String(), typeName(t))
	}
	return w, nil
}

func encodeBool(v bool) []byte {
	return word.Bool(v)
}

// encodeFixed scales v by 10^places and encodes the integer. Digits beyond
// places cannot be represented and are rejected rather than truncated.
func encodeFixed(t *types.Type, v decimal.Decimal, path []string) ([]byte, error) {
	if t == nil {
		return nil, errors.NilValue(errors.PhaseEncode, path, "fixed")
	}
	scaled := v.Shift(int32(t.Places))
	if !scaled.IsInteger() {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Path(path...).
			Type(t.String()).
			Value(v.String()).
			Detail("value %s has more than %d decimal places", v.String(), t.Places).
			Build()
	}
	n := scaled.BigInt()
	if t.Kind == types.KindUfixed {
		return encodeUnsigned(t, n, path)
	}
	return encodeSigned(t, n, path)
}

func encodeAddress(addr common.Address) []byte {
	return word.RightAligned(addr.Bytes())
}

func encodeStaticBytes(t *types.Type, v []byte, path []string) ([]byte, error) {
	limit := min(t.Length, contractabi.WordSize)
	if len(v) > limit {
		return nil, errors.New(errors.PhaseEncode, errors.KindOverflow).
			Path(path...).
			Type(typeName(t)).
			Detail("%d bytes do not fit in %d", len(v), limit).
			Build()
	}
	return word.LeftAligned(v), nil
}

func encodeDynamicBytes(v []byte) []byte {
	return word.PadAndPrependLength(v)
}

func encodeString(text values.Text, path []string) ([]byte, error) {
	switch s := text.(type) {
	case values.ValidText:
		if !utf8.ValidString(string(s)) {
			return nil, errors.InvalidUTF8(errors.PhaseEncode, path, []byte(s))
		}
		return word.PadAndPrependLength([]byte(s)), nil
	case values.MalformedText:
		return word.PadAndPrependLength(s), nil
	default:
		return nil, errors.NilValue(errors.PhaseEncode, path, "string")
	}
}

// encodeExternalFunction packs the address and selector into the leading
// 24 bytes of a word.
func encodeExternalFunction(addr common.Address, selector [contractabi.SelectorSize]byte) []byte {
	packed := make([]byte, 0, contractabi.AddressSize+contractabi.SelectorSize)
	packed = append(packed, addr.Bytes()...)
	packed = append(packed, selector[:]...)
	return word.LeftAligned(packed)
}

// encodeErrorResult encodes the one error sub-kind that has a representation:
// the word recorded for an indexed reference-type event parameter.
func encodeErrorResult(v values.ErrorResult, path []string) ([]byte, error) {
	fault, ok := v.Fault.(values.IndexedReferenceTypeError)
	if !ok {
		return nil, notEncodable(path, v.T, "error results have no ABI encoding")
	}
	if len(fault.Raw) > contractabi.WordSize {
		return nil, errors.New(errors.PhaseEncode, errors.KindOverflow).
			Path(path...).
			Type(typeName(v.T)).
			Detail("indexed reference payload of %d bytes exceeds a word", len(fault.Raw)).
			Build()
	}
	return word.RightAligned(fault.Raw), nil
}

func prependCount(n int, body []byte) []byte {
	out := make([]byte, 0, word.Size+len(body))
	out = word.AppendUint64(out, uint64(n))
	return append(out, body...)
}
