// Package qrcode is the public entry point: locate QR symbols in a raw
// luminance raster, then decode each one's payload.
package qrcode

import (
	"fmt"

	"github.com/jalphad/qrscan/internal/payload"
	"github.com/jalphad/qrscan/internal/qrerr"
	"github.com/jalphad/qrscan/internal/sample"
	"github.com/jalphad/qrscan/qrcode/decoder"
	"github.com/jalphad/qrscan/qrcode/types"
)

// Data is a decoded QR payload.
type Data = payload.Data

// Identifier is the identification workspace: give it a raster size once
// with Resize, then call Identify for every frame of that size.
//
// The region/capstone/grid arenas underneath are allocated fresh on every
// Identify call rather than reused frame-to-frame; see DESIGN.md for why
// that's an accepted simplification here.
type Identifier struct {
	w, h int
}

// NewIdentifier creates an identification workspace. Call Resize before the
// first Identify.
func NewIdentifier() *Identifier {
	return &Identifier{}
}

// Resize records the raster dimensions that luma buffers passed to Identify
// are expected to have.
func (id *Identifier) Resize(w, h int) {
	id.w, id.h = w, h
}

// Identify locates every QR grid in a row-major 8-bit luminance raster and
// returns one Code per grid found. A frame with no symbols is not an error:
// it yields a nil, empty slice.
func (id *Identifier) Identify(luma []byte) ([]*Code, error) {
	if id.w == 0 || id.h == 0 {
		return nil, qrerr.ErrInvalidGridSize
	}
	if len(luma) != id.w*id.h {
		return nil, fmt.Errorf("qrscan: luma buffer length %d does not match %dx%d raster", len(luma), id.w, id.h)
	}

	pipeline := sample.Identify(id.w, id.h, luma)
	if len(pipeline.Assembler.Grids) == 0 {
		return nil, nil
	}

	codes := make([]*Code, len(pipeline.Assembler.Grids))
	for i := range pipeline.Assembler.Grids {
		codes[i] = &Code{sampled: pipeline.Extract(i)}
	}
	return codes, nil
}

// Code is a located, sampled QR symbol awaiting decode.
type Code struct {
	sampled *sample.Code
}

// Decode corrects the symbol's codewords and parses its bitstream into a
// Data. It runs the same error-correction/payload path as qrcode/decoder
// and qrcode/cmd, just surfacing the full payload.Data instead of a decoded
// message string.
func (c *Code) Decode() (*Data, error) {
	if (c.sampled.Size-17)%4 != 0 {
		return nil, qrerr.ErrInvalidGridSize
	}
	version := (c.sampled.Size - 17) / 4
	if version < 1 || version > 40 {
		return nil, qrerr.ErrInvalidVersion
	}

	level, mask, err := payload.ReadFormat(c.sampled, 0)
	if err != nil {
		level, mask, err = payload.ReadFormat(c.sampled, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to read format information: %w", err)
		}
	}

	bits := payload.ReadData(c.sampled, version, mask)
	raw := payload.PackBits(bits)

	qrData := &types.QRCodeData{
		Version:      version,
		ECLevel:      level,
		DataMask:     mask,
		RawCodewords: raw,
		Code:         c.sampled,
	}

	ec, err := decoder.NewErrorCorrector()
	if err != nil {
		return nil, err
	}
	corrected, _, err := ec.CorrectCodewords(qrData)
	if err != nil {
		return nil, err
	}

	d := &Data{Version: version, ECCLevel: level, Mask: mask}
	if err := payload.DecodePayload(d, corrected); err != nil {
		return nil, err
	}
	return d, nil
}
