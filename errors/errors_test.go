package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindOverflow,
				Path:   []string{"args", "[1]", "amount"},
				Type:   "uint8",
				Detail: "value 300 overflows uint8",
			},
			contains: []string{"[encode]", "overflow", "args.[1].amount", "type uint8", " - value 300"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLayout,
				Kind:  KindSizeMismatch,
			},
			contains: []string{"[layout]", "size_mismatch"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseSignature,
				Kind:   KindInvalidData,
				Detail: "bad member",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[signature]", "invalid_data", ": bad member", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	assert.ErrorIs(t, err.Unwrap(), cause)
	assert.ErrorIs(t, errors.Unwrap(err), cause)
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindOverflow,
		Path:  []string{"foo"},
	}

	assert.True(t, err.Is(&Error{Phase: PhaseEncode, Kind: KindOverflow}))
	assert.False(t, err.Is(&Error{Phase: PhaseLayout, Kind: KindOverflow}))
	assert.False(t, err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidData}))
	assert.False(t, err.Is(errors.New("plain")))
	assert.ErrorIs(t, err, &Error{Phase: PhaseEncode, Kind: KindOverflow})
}

func TestIsNotEncodable(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := NotEncodable(PhaseEncode, []string{"m"}, "mapping", "mappings have no ABI encoding")
		assert.True(t, IsNotEncodable(err))
		assert.ErrorIs(t, err, ErrNotEncodable)
	})

	t.Run("any phase", func(t *testing.T) {
		err := NotEncodable(PhaseSignature, nil, "function internal", "")
		assert.True(t, IsNotEncodable(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		inner := NotEncodable(PhaseEncode, nil, "magic", "")
		err := fmt.Errorf("encode args: %w", inner)
		assert.True(t, IsNotEncodable(err))
	})

	t.Run("other kinds", func(t *testing.T) {
		assert.False(t, IsNotEncodable(Overflow(PhaseEncode, nil, 1, "uint8")))
		assert.False(t, IsNotEncodable(errors.New("plain")))
		assert.False(t, IsNotEncodable(nil))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindMissingAllocation, KindOf(MissingAllocation("S")))
	assert.Equal(t, KindSizeMismatch, KindOf(fmt.Errorf("wrapped: %w", SizeMismatch(nil, "uint256", 32, 64))))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindOverflow).
		Path("args", "amount").
		Type("uint8").
		Value(300).
		Cause(cause).
		Detail("expected at most %d bits, got %d", 8, 9).
		Build()

	assert.Equal(t, PhaseEncode, err.Phase)
	assert.Equal(t, KindOverflow, err.Kind)
	assert.Equal(t, []string{"args", "amount"}, err.Path)
	assert.Equal(t, "uint8", err.Type)
	assert.Equal(t, 300, err.Value)
	assert.ErrorIs(t, err.Cause, cause)
	assert.Equal(t, "expected at most 8 bits, got 9", err.Detail)

	plain := New(PhaseLayout, KindInvalidData).Detail("plain literal").Build()
	assert.Equal(t, "plain literal", plain.Detail)
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NotEncodable", func(t *testing.T) {
		err := NotEncodable(PhaseEncode, []string{"f"}, "function internal", "internal functions have no ABI encoding")
		assert.Equal(t, KindNotEncodable, err.Kind)
		assert.Equal(t, "function internal", err.Type)
		assert.Equal(t, []string{"f"}, err.Path)
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseEncode, []string{"val"}, 300, "uint8")
		assert.Equal(t, KindOverflow, err.Kind)
		assert.Equal(t, 300, err.Value)
		assert.Contains(t, err.Detail, "uint8")
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		data := make([]byte, 40)
		data[0] = 0xff
		err := InvalidUTF8(PhaseEncode, []string{"str"}, data)
		assert.Equal(t, KindInvalidUTF8, err.Kind)
		assert.Contains(t, err.Detail, "ff00")
		assert.Len(t, err.Detail, len("invalid UTF-8 sequence: ")+64)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		err := SizeMismatch([]string{"[0]"}, "uint256[2]", 64, 32)
		assert.Equal(t, PhaseLayout, err.Phase)
		assert.Equal(t, KindSizeMismatch, err.Kind)
		assert.Contains(t, err.Detail, "64")
		assert.Contains(t, err.Detail, "32")
	})

	t.Run("MissingAllocation", func(t *testing.T) {
		err := MissingAllocation("Pair")
		assert.Equal(t, KindMissingAllocation, err.Kind)
		assert.Equal(t, "Pair", err.Value)
	})

	t.Run("NilValue", func(t *testing.T) {
		err := NilValue(PhaseEncode, nil, "uint256")
		assert.Equal(t, KindNilValue, err.Kind)
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseLayout, nil, "recursive struct")
		assert.Equal(t, KindInvalidData, err.Kind)
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseSignature, "type kind: unknown")
		assert.Equal(t, KindUnsupported, err.Kind)
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(PhaseEncode, KindInvalidData, cause, "encode tuple")
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "encode tuple", err.Detail)
	})
}
