// Package selector provides canonical ABI type signatures and function
// selectors.
//
// A function selector is the first four bytes of the Keccak-256 hash of the
// function's canonical signature, for example
//
//	transfer(address,uint256)  ->  a9059cbb
//
// Canonical names collapse source-level types to their ABI form: contracts
// become address, enums become uint8, structs become a parenthesized list of
// their members. Struct members come from a layout.Allocations table when
// one is given.
package selector
