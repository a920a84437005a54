// Package contractabi provides a Go encoder for the smart-contract ABI.
//
// The contract ABI is the fixed-word, head/tail binary layout used by
// contract call interfaces to serialize arguments and return values. It is
// not self-describing: the reader must know the types to make sense of the
// bytes, so the encoder works from typed value trees.
//
// # Architecture Overview
//
//	contractabi/          Root package with shared constants and SizeInfoProvider
//	├── types/            Type descriptors (uint256, bytes32, tuple(...), ...)
//	├── values/           Typed value trees, one Go type per value category
//	├── layout/           Head sizes, dynamic classification and struct allocations
//	├── encoder/          Value and tuple encoding, call data
//	├── selector/         Canonical signatures and 4-byte function selectors
//	└── errors/           Structured error types, including NOT_ENCODABLE
//
// # Quick Start
//
//	owner := values.NewAddress(common.HexToAddress("0x5B38Da6a701c568545dCfcBd03Fc8B7c2B4bB6a3"))
//	amount := values.NewUint(256, big.NewInt(1000))
//
//	sel, _ := selector.ForFunction("transfer", []*types.Type{owner.Type(), amount.Type()}, nil)
//	data, err := encoder.NewWithDefaults(nil).EncodeCall(sel, []values.Value{owner, amount})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Encoding Layout
//
// Every head slot, length and offset occupies one 32-byte word:
//
//	Type                 Encoding
//	────────────────────────────────────────────────────────────
//	uint<N>/int<N>       one word, big-endian, two's complement
//	bool                 one word, last byte 0 or 1
//	address/contract     one word, right-aligned
//	bytes<N>             one word, left-aligned
//	bytes/string         length word + payload padded to a word
//	function (external)  one word: address ++ selector, left-aligned
//	T[N], struct, tuple  head/tail layout of the elements
//	T[]                  count word + head/tail layout of the elements
//
// # Unencodable Values
//
// Mappings, magic values, internal functions, most error results and any
// value flagged as cyclic have no ABI representation. Encoding them yields
// an error for which errors.IsNotEncodable reports true. The condition is
// contagious: a container holding such a value is not encodable either.
package contractabi
