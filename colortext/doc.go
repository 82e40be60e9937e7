// Package colortext parses and formats textual color representations.
//
// Supported single-color forms (channels constrained to 0..255):
//
//	#RRGGBB / RRGGBB   — hexadecimal
//	rgb(r, g, b)       — functional, case-insensitive
//	r,g,b              — comma-separated
//	r g b              — whitespace-separated
//
// ParseColorList additionally accepts a bracketed array form
// ([[r,g,b], [r,g,b], …]) and otherwise parses line by line, skipping
// unparsable lines instead of failing the whole batch.
//
// This package sits strictly upstream of the selection engine: it produces
// lab.RGB values and carries no algorithmic weight.
package colortext
