// Package qrerr defines the sentinel errors returned by the QR decoding
// pipeline, so callers can compare with errors.Is instead of matching on
// message text.
package qrerr

import "errors"

var (
	// ErrInvalidGridSize is returned when a grid's dimensions do not match
	// any known QR version (4*version + 17 for version in [1,40]), and by
	// Identify when no raster size has been set with Resize.
	ErrInvalidGridSize = errors.New("qrscan: invalid grid size")

	// ErrInvalidVersion is returned when the version number derived from a
	// grid's size falls outside [1,40].
	ErrInvalidVersion = errors.New("qrscan: invalid version")

	// ErrFormatECC is returned when the 15-bit format information word
	// cannot be BCH-corrected.
	ErrFormatECC = errors.New("qrscan: format information uncorrectable")

	// ErrDataECC is returned when a Reed-Solomon block could not be
	// corrected.
	ErrDataECC = errors.New("qrscan: data codeword uncorrectable")

	// ErrDataOverflow is returned when a payload segment would grow the
	// decoded payload past its maximum size.
	ErrDataOverflow = errors.New("qrscan: data overflow")

	// ErrDataUnderflow is returned when the payload ends mid-segment.
	ErrDataUnderflow = errors.New("qrscan: data underflow")

	// ErrUnknownDataType is reserved for a segment mode QR does not define.
	// DecodePayload does not return it: an undefined mode indicator ends the
	// payload the same way the terminator does.
	ErrUnknownDataType = errors.New("qrscan: unknown data type")

	// ErrOutOfBounds names a grid index or cell coordinate outside a
	// symbol's bounds. Nothing in this module returns it: sample.Pipeline's
	// Extract and sample.Code's Bit do not check their arguments.
	ErrOutOfBounds = errors.New("qrscan: coordinates out of bounds")

	// ErrFloodFillTooDeep is returned when a region's flood fill recursion
	// exceeds its depth cap, guarding against runaway stacks on pathological
	// input images.
	ErrFloodFillTooDeep = errors.New("qrscan: flood fill exceeded depth cap")
)
