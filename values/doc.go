// Package values provides typed value trees for the contract ABI encoder.
//
// Value is a closed sum type: one Go type per category, each carrying the
// fields valid for it and its types.Type descriptor. Callers dispatch with a
// type switch. Byte strings and arrays are split into explicit Static and
// Dynamic variants; string payloads are either ValidText or MalformedText;
// error results are either an IndexedReferenceTypeError or a DecodingFault.
//
// Values are immutable once built. Nothing in this module mutates them.
package values
