// Package encoder provides contract ABI encoding of typed value trees.
//
// # Encoding Flow
//
//  1. Encode dispatches on the value's category. Elementary values become
//     one word; bytes and strings become a length word plus padded payload.
//  2. Arrays, structs and tuples go through the tuple layout: every element
//     is encoded, then the SizeInfoProvider says which elements are dynamic
//     and how large each head slot is.
//  3. Heads are emitted in order (the element itself, or the offset of its
//     tail), followed by the tails in the same order.
//
// Offsets are relative to the start of the enclosing tuple:
//
//	f(uint256 a, string b)  with a = 1, b = "Hi"
//
//	0x00  0000...0001   a
//	0x20  0000...0040   offset of b
//	0x40  0000...0002   len(b)
//	0x60  4869 00...00  b, padded
//
// # Unencodable Values
//
// Mappings, magic values, internal functions, error results other than
// indexed reference parameters, and arrays or structs carrying a cycle
// Reference produce a NOT_ENCODABLE error. The first such element aborts the
// whole encoding; no partial output is returned.
//
// # Layout Verification
//
// With Options.VerifyLayout (the default) every element's size info is
// checked against its encoding. A disagreement means the SizeInfoProvider
// and the value tree describe different types, and is reported as
// KindSizeMismatch instead of producing corrupt offsets.
//
// # Thread Safety
//
// Encoding is pure: inputs are never mutated and every call returns a fresh
// buffer. An Encoder is safe for concurrent use if its SizeInfoProvider is;
// layout.Calculator is.
package encoder
