package layout

import (
	"strconv"
	"strings"

	"github.com/wippyai/contract-abi/types"
)

// shapeKey identifies t by the fields its size info depends on. Struct keys
// carry the allocation ID and, when present, the inline members.
func shapeKey(t *types.Type) string {
	var b strings.Builder
	writeShape(&b, t)
	return b.String()
}

func writeShape(b *strings.Builder, t *types.Type) {
	if t == nil {
		b.WriteString("nil")
		return
	}

	if t.Kind.IsElementary() {
		b.WriteString("word")
		return
	}

	switch t.Kind {
	case types.KindBytes:
		if t.IsStaticBytes() {
			b.WriteString("bytesN")
		} else {
			b.WriteString("bytes")
		}

	case types.KindArray:
		writeShape(b, t.Elem)
		if t.Dynamic {
			b.WriteString("[]")
		} else {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(t.Length))
			b.WriteByte(']')
		}

	case types.KindStruct:
		b.WriteString("struct ")
		b.WriteString(strconv.Quote(t.ID))
		if t.Members != nil {
			writeMembers(b, t.Members)
		}

	case types.KindTuple:
		b.WriteString("tuple")
		writeMembers(b, t.Members)

	default:
		b.WriteString(t.Kind.String())
	}
}

func writeMembers(b *strings.Builder, members []types.Member) {
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		writeShape(b, m.Type)
	}
	b.WriteByte('}')
}
