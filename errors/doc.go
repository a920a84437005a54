// Package errors provides structured error types for the contract ABI encoder.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the element path, the ABI type name and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		Path("args", "[0]").
//		Type("uint8").
//		Detail("value 300 does not fit").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotEncodable(errors.PhaseEncode, path, "mapping", "mappings have no ABI encoding")
//	err := errors.MissingAllocation("S")
//
// NOT_ENCODABLE is an expected outcome rather than a failure of the encoder.
// Test for it with IsNotEncodable or errors.Is(err, ErrNotEncodable).
package errors
