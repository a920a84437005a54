package encoder

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// words decodes hex strings, one per word. Short strings are left-padded,
// strings starting with "L:" are right-padded.
func words(t *testing.T, ws ...string) []byte {
	t.Helper()
	var out []byte
	for _, w := range ws {
		if rest, ok := strings.CutPrefix(w, "L:"); ok {
			w = rest + strings.Repeat("0", 64-len(rest))
		} else {
			w = strings.Repeat("0", 64-len(w)) + w
		}
		b, err := hex.DecodeString(w)
		require.NoError(t, err)
		require.Len(t, b, 32)
		out = append(out, b...)
	}
	return out
}

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 0)
	require.True(t, ok, s)
	return n
}
