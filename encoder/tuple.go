package encoder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/contract-abi/encoder/internal/word"
	"github.com/wippyai/contract-abi/errors"
	"github.com/wippyai/contract-abi/layout"
	"github.com/wippyai/contract-abi/values"
)

// encodeTuple lays out elems as heads followed by tails. Static elements are
// written in place; each dynamic element gets a head word holding the offset
// of its tail, measured from the start of this tuple. Tails follow element
// order.
func (e *Encoder) encodeTuple(elems []values.Value, names []string, path []string) ([]byte, error) {
	s := getScratch(len(elems))
	defer putScratch(s)

	for i, el := range elems {
		enc, err := e.encode(el, childPath(path, names, i))
		if err != nil {
			return nil, err
		}
		s.encodings[i] = enc
	}

	headSize := 0
	tailSize := 0
	for i, el := range elems {
		elemPath := childPath(path, names, i)
		info, err := e.sizes.SizeInfo(el.Type())
		if err != nil {
			kind := errors.KindOf(err)
			if kind == "" {
				kind = errors.KindInvalidData
			}
			wrapped := errors.Wrap(errors.PhaseLayout, kind, err, "size info")
			wrapped.Path = elemPath
			wrapped.Type = typeName(el.Type())
			return nil, wrapped
		}
		if e.options.VerifyLayout {
			if err := verifyElement(info, s.encodings[i], elemPath, el); err != nil {
				return nil, err
			}
		}
		s.infos[i] = info
		headSize += info.Size
		if info.Dynamic {
			tailSize += len(s.encodings[i])
		}
	}

	out := make([]byte, 0, headSize+tailSize)
	offset := headSize
	for i, enc := range s.encodings {
		if s.infos[i].Dynamic {
			out = word.AppendUint64(out, uint64(offset))
			offset += len(enc)
		} else {
			out = append(out, enc...)
		}
	}
	for i, enc := range s.encodings {
		if s.infos[i].Dynamic {
			out = append(out, enc...)
		}
	}
	return out, nil
}

// verifyElement checks that size info agrees with what was encoded: static
// elements fill exactly their head slot, dynamic ones get a one-word pointer.
func verifyElement(info layout.Info, enc []byte, path []string, el values.Value) error {
	want, got := info.Size, len(enc)
	if info.Dynamic {
		got = word.Size
	}
	if want == got {
		return nil
	}
	Logger().Debug("size info disagrees with encoding",
		zap.String("type", typeName(el.Type())),
		zap.String("path", strings.Join(path, ".")),
		zap.Int("size_info", want),
		zap.Int("encoded", got))
	return errors.SizeMismatch(path, typeName(el.Type()), want, got)
}
