// Package types provides ABI type descriptors.
//
// A Type accompanies every value and carries what the encoder and the size
// calculator need: the category, the static/dynamic class of bytes and
// arrays, function visibility, bit widths and decimal places, element and
// member types, and the struct ID used to look up allocations.
package types
