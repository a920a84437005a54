// Package word provides the 32-byte word primitives of the contract ABI:
// integer conversion, alignment and the length-prefixed padding used by
// dynamic byte strings, text and arrays.
//
// This package is internal to the encoder.
package word
