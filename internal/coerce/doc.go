// Package coerce infers typed scalar values from raw configuration strings.
//
// Environment variables and option strings carry no type annotations, so the
// renderer guesses: `true` becomes a boolean, `9090` an integer, `0.5` a
// float, and anything else stays a string. Wrapping a value in literal double
// quotes suppresses inference entirely, so `"true"` stays the literal string
// true rather than becoming a boolean.
package coerce
