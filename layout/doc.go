// Package layout provides ABI size information for types.
//
// For every type the encoder needs two facts before it can lay out a tuple:
// how many bytes the type's head slot takes and whether the type is dynamic.
// Dynamic types (bytes, string, T[], and any composite that contains one)
// take a single word holding the offset of their tail. Static types are
// encoded in place, so their head size is their full encoded length.
//
// # Layout Rules
//
//	Type                         Head size      Dynamic
//	──────────────────────────────────────────────────────
//	elementary, bytes<N>         32             no
//	bytes, string, T[]           32             yes
//	T[N], T static               N * size(T)    no
//	T[N], T dynamic              32             yes
//	T[0]                         0              no
//	struct, tuple                sum of members unless any member is dynamic
//
// Struct layouts come from an Allocations table keyed by struct ID. Build
// one with Allocate; structs not in the table fall back to their inline
// member list.
//
// # Usage
//
//	allocs, err := layout.Allocate(pairDef, nodeDef)
//	calc := layout.NewCalculator(allocs)
//	info, err := calc.SizeInfo(types.Struct("Pair", "Pair"))
package layout
