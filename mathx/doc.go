// Package mathx gathers small generic numeric helpers.
//
//   - MinMax:   both extremes of a list in one pass
//   - Limit:    clamp a value into [lo, hi]
//   - Quantity: turn a quota (ratio or absolute count) into a size
//
// Usage:
//
//	lo, hi, _ := mathx.MinMax(3, 2, 6, 4, 5) // 2, 6
//	v := mathx.Limit(9, 3, 7)                // 7
//	n := mathx.Quantity(0.2, 10)             // 2
//	m := mathx.Quantity(6, 10)               // 6
package mathx
