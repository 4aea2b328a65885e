// Package sequence provides the data model sorted by the algoflow steppers:
// a fixed-length, mutable list of totally ordered values.
//
// The package is deliberately small:
//
//   - Sequence[T] is a named slice over any cmp.Ordered element type.
//   - Validate rejects an absent (nil) sequence and values with no total
//     order (floating-point NaN).
//   - Random builds reproducible integer snapshots for visualization runs,
//     configured through functional options in the same way graph builders
//     are (WithSeed, WithRand, WithRange).
//
// Ownership:
//
//   - A stepper takes a Clone of the caller's snapshot at construction and
//     never aliases the caller's slice afterwards.
//
// Example:
//
//	vals, err := sequence.Random(50, sequence.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := sorting.NewBubble(vals)
package sequence
