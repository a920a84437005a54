package contractabi

import (
	"github.com/wippyai/contract-abi/layout"
	"github.com/wippyai/contract-abi/types"
)

// Fixed sizes of the contract ABI encoding, in bytes.
const (
	WordSize     = 32
	AddressSize  = 20
	SelectorSize = 4
)

// SizeInfoProvider reports the head slot size of a type and whether the type
// is dynamic. Its answers must agree with what the encoder produces for values
// of that type.
type SizeInfoProvider interface {
	SizeInfo(t *types.Type) (layout.Info, error)
}

var _ SizeInfoProvider = (*layout.Calculator)(nil)
