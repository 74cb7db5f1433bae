// Package payload turns a sampled grid of cells into a decoded QR payload:
// reading the format word, de-zigzagging and de-masking the data region,
// de-interleaving and Reed-Solomon correcting its codeword blocks, and
// parsing the resulting bitstream into payload segments.
package payload

import (
	"github.com/jalphad/qrscan/internal/bch"
	"github.com/jalphad/qrscan/internal/galois"
	"github.com/jalphad/qrscan/internal/qrerr"
	"github.com/jalphad/qrscan/internal/rs"
	"github.com/jalphad/qrscan/internal/sample"
	"github.com/jalphad/qrscan/internal/versiondb"
)

// Segment mode nibbles, as laid out in the QR bitstream.
const (
	modeNumeric = 1
	modeAlpha   = 2
	modeByte    = 4
	modeECI     = 7
	modeKanji   = 8
)

// Exported aliases of the mode nibbles above, for callers outside this
// package that need to branch on Data.DataType (e.g. to transcode Kanji
// segments).
const (
	ModeNumeric = modeNumeric
	ModeAlpha   = modeAlpha
	ModeByte    = modeByte
	ModeECI     = modeECI
	ModeKanji   = modeKanji
)

const alphaChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Data is the fully decoded content of one QR symbol.
type Data struct {
	Version  int
	ECCLevel versiondb.ECCLevel
	Mask     int
	DataType int
	Payload  []byte
	ECI      uint32
}

// MaskBit evaluates the data-masking function for the given mask pattern
// (0-7) at module row i, column j.
func MaskBit(mask, i, j int) bool {
	switch mask {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return i*j%2+i*j%3 == 0
	case 6:
		return (i*j%2+i*j%3)%2 == 0
	case 7:
		return (i*j%3+(i+j)%2)%2 == 0
	}
	return false
}

// ReservedCell reports whether module (i,j) of a `version`-sized symbol is
// part of a fixed structure (finder, format, timing, version info, or
// alignment pattern) rather than data.
func ReservedCell(version, i, j int) bool {
	info := versiondb.Table[version]
	size := version*4 + 17

	if i < 9 && j < 9 {
		return true
	}
	if i+8 >= size && j < 9 {
		return true
	}
	if i < 9 && j+8 >= size {
		return true
	}
	if i == 6 || j == 6 {
		return true
	}
	if version >= 7 {
		if i < 6 && j+11 >= size {
			return true
		}
		if i+11 >= size && j < 6 {
			return true
		}
	}

	ai, aj := -1, -1
	a := 0
	for a < 7 && info.Apat[a] != 0 {
		p := info.Apat[a]
		if abs(p-i) < 3 {
			ai = a
		}
		if abs(p-j) < 3 {
			aj = a
		}
		a++
	}
	if ai >= 0 && aj >= 0 {
		a--
		if ai > 0 && ai < a {
			return true
		}
		if aj > 0 && aj < a {
			return true
		}
		if aj == a && ai == a {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// bitReader accumulates de-masked data bits (read via ReadData) and lets
// payload segment decoders pull fixed-width fields from them in order.
type bitReader struct {
	bits []bool
	ptr  int
}

func (r *bitReader) remaining() int {
	return len(r.bits) - r.ptr
}

func (r *bitReader) take(n int) int {
	v := 0
	for n != 0 && r.ptr < len(r.bits) {
		v <<= 1
		if r.bits[r.ptr] {
			v |= 1
		}
		r.ptr++
		n--
	}
	return v
}

// ReadData walks the symbol's zigzag column scan, skipping reserved cells
// and XORing each data cell against the mask pattern, producing the raw
// de-masked codeword bitstream in transmission order.
func ReadData(code *sample.Code, version, mask int) []bool {
	var bits []bool
	y := code.Size - 1
	x := code.Size - 1
	dir := -1

	readBit := func(i, j int) {
		v := code.Bit(j, i)
		if MaskBit(mask, i, j) {
			v = !v
		}
		bits = append(bits, v)
	}

	for x > 0 {
		if x == 6 {
			x--
		}
		if !ReservedCell(version, y, x) {
			readBit(y, x)
		}
		if !ReservedCell(version, y, x-1) {
			readBit(y, x-1)
		}
		y += dir
		if y < 0 || y >= code.Size {
			dir = -dir
			x -= 2
			y += dir
		}
	}
	return bits
}

// ReadFormat recovers the error-correction level and mask pattern from a
// symbol's format information, read from one of its two redundant
// locations: 0 for the copy around the top-left finder, any other value for
// the copy split between the top-right and bottom-left finders.
func ReadFormat(code *sample.Code, which int) (level versiondb.ECCLevel, mask int, err error) {
	var format uint16

	if which != 0 {
		for i := 0; i < 7; i++ {
			format = format<<1 | bitAt(code, 8, code.Size-1-i)
		}
		for i := 0; i < 8; i++ {
			format = format<<1 | bitAt(code, code.Size-8+i, 8)
		}
	} else {
		xs := [15]int{8, 8, 8, 8, 8, 8, 8, 8, 7, 5, 4, 3, 2, 1, 0}
		ys := [15]int{0, 1, 2, 3, 4, 5, 7, 8, 8, 8, 8, 8, 8, 8, 8}
		for i := 14; i >= 0; i-- {
			format = format<<1 | bitAt(code, xs[i], ys[i])
		}
	}

	format = bch.ApplyMask(format)
	corrected, err := bch.Correct(format)
	if err != nil {
		return 0, 0, err
	}

	fdata := corrected >> 10
	return versiondb.ECCLevel(fdata >> 3), int(fdata & 7), nil
}

func bitAt(code *sample.Code, x, y int) uint16 {
	if code.Bit(x, y) {
		return 1
	}
	return 0
}

// CodestreamECC de-interleaves the raw codeword bitstream into its
// Reed-Solomon blocks (short blocks first, then one-longer blocks per
// versiondb's split), Reed-Solomon corrects each, and concatenates their
// data words back into a single byte slice.
func CodestreamECC(version int, level versiondb.ECCLevel, raw []bool) ([]byte, error) {
	info := versiondb.Table[version]
	sb := info.ECC[level]

	rawBytes := packBits(raw)

	lbCount := (info.DataBytes - sb.BS*sb.NS) / (sb.BS + 1)
	bc := lbCount + sb.NS
	eccOffset := sb.DW*bc + lbCount

	lb := sb
	lb.DW++
	lb.BS++

	data := make([]byte, 0, sb.DW*bc+lbCount)
	for i := 0; i < bc; i++ {
		ecc := sb
		if i >= sb.NS {
			ecc = lb
		}
		numEC := ecc.BS - ecc.DW

		block := make([]byte, ecc.BS)
		for j := 0; j < ecc.DW; j++ {
			block[j] = rawBytes[j*bc+i]
		}
		for j := 0; j < numEC; j++ {
			block[ecc.DW+j] = rawBytes[eccOffset+j*bc+i]
		}

		if !rs.CorrectBlock(galois.GF256, block, ecc.DW) {
			return nil, qrerr.ErrDataECC
		}
		data = append(data, block[:ecc.DW]...)
	}

	return data, nil
}

// PackBits packs a de-masked bit sequence (as produced by ReadData) into
// bytes, MSB first, matching the ordering CodestreamECC expects its raw
// codeword bytes in.
func PackBits(bits []bool) []byte {
	return packBits(bits)
}

func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return out
}

// maxPayloadBytes bounds total decoded payload size. It sits well above the
// largest payload any version can carry (a sanity backstop, not a fixed
// transmission buffer).
const maxPayloadBytes = 8896

// DecodePayload parses the data-word bitstream of a symbol into its
// payload segments (Numeric/Alphanumeric/Byte/Kanji/ECI), appending
// decoded bytes to d.Payload and updating d.DataType/d.ECI as segments are
// seen.
func DecodePayload(d *Data, data []byte) error {
	r := &bitReader{bits: unpackBits(data)}

	for r.remaining() >= 4 {
		mode := r.take(4)
		var err error
		switch mode {
		case modeNumeric:
			err = decodeNumeric(d, r)
		case modeAlpha:
			err = decodeAlpha(d, r)
		case modeByte:
			err = decodeByte(d, r)
		case modeKanji:
			err = decodeKanji(d, r)
		case modeECI:
			err = decodeECI(d, r)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		if mode&(mode-1) == 0 && mode > d.DataType {
			d.DataType = mode
		}
	}
	return nil
}

func unpackBits(data []byte) []bool {
	bits := make([]bool, len(data)*8)
	for i, b := range data {
		for j := 0; j < 8; j++ {
			bits[i*8+j] = b&(0x80>>uint(j)) != 0
		}
	}
	return bits
}

func countBits(version, small, medium, large int) int {
	switch {
	case version < 10:
		return small
	case version < 27:
		return medium
	default:
		return large
	}
}

func decodeNumeric(d *Data, r *bitReader) error {
	bits := countBits(d.Version, 10, 12, 14)
	count := r.take(bits)
	if len(d.Payload)+count+1 > maxPayloadBytes {
		return qrerr.ErrDataOverflow
	}

	for count >= 3 {
		if err := numericTuple(d, r, 10, 3); err != nil {
			return err
		}
		count -= 3
	}
	if count >= 2 {
		if err := numericTuple(d, r, 7, 2); err != nil {
			return err
		}
		count -= 2
	}
	if count != 0 {
		if err := numericTuple(d, r, 4, 1); err != nil {
			return err
		}
	}
	return nil
}

func numericTuple(d *Data, r *bitReader, bits, digits int) error {
	if r.remaining() < bits {
		return qrerr.ErrDataUnderflow
	}
	tuple := r.take(bits)
	out := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		out[i] = byte(tuple%10) + '0'
		tuple /= 10
	}
	d.Payload = append(d.Payload, out...)
	return nil
}

func decodeAlpha(d *Data, r *bitReader) error {
	bits := countBits(d.Version, 9, 11, 13)
	count := r.take(bits)
	if len(d.Payload)+count+1 > maxPayloadBytes {
		return qrerr.ErrDataOverflow
	}

	for count >= 2 {
		if err := alphaTuple(d, r, 11, 2); err != nil {
			return err
		}
		count -= 2
	}
	if count != 0 {
		if err := alphaTuple(d, r, 6, 1); err != nil {
			return err
		}
	}
	return nil
}

func alphaTuple(d *Data, r *bitReader, bits, digits int) error {
	if r.remaining() < bits {
		return qrerr.ErrDataUnderflow
	}
	tuple := r.take(bits)
	out := make([]byte, digits)
	for i := 0; i < digits; i++ {
		out[digits-i-1] = alphaChars[tuple%45]
		tuple /= 45
	}
	d.Payload = append(d.Payload, out...)
	return nil
}

func decodeByte(d *Data, r *bitReader) error {
	bits := 16
	if d.Version < 10 {
		bits = 8
	}
	count := r.take(bits)
	if len(d.Payload)+count+1 > maxPayloadBytes {
		return qrerr.ErrDataOverflow
	}
	if r.remaining() < count*8 {
		return qrerr.ErrDataUnderflow
	}
	for i := 0; i < count; i++ {
		d.Payload = append(d.Payload, byte(r.take(8)))
	}
	return nil
}

// decodeKanji recovers Shift-JIS-encoded double-byte characters. The
// original C/Rust decoders leave Shift-JIS-to-Unicode transcoding to the
// caller; in this port qrcode/decoder's DataDecoder passes the raw Shift-JIS
// bytes through golang.org/x/text/encoding/japanese (qrcode.Code.Decode
// returns them untranscoded), so here we only reconstruct the two Shift-JIS
// bytes per QR's 13-bit packing.
func decodeKanji(d *Data, r *bitReader) error {
	bits := countBits(d.Version, 8, 10, 12)
	count := r.take(bits)
	if len(d.Payload)+count*2+1 > maxPayloadBytes {
		return qrerr.ErrDataOverflow
	}
	if r.remaining() < count*13 {
		return qrerr.ErrDataUnderflow
	}
	for i := 0; i < count; i++ {
		v := r.take(13)
		msb := v / 0xC0
		lsb := v % 0xC0
		intermediate := msb<<8 | lsb

		var sjw int
		if intermediate+0x8140 <= 0x9FFC {
			sjw = intermediate + 0x8140
		} else {
			sjw = intermediate + 0xC140
		}
		d.Payload = append(d.Payload, byte(sjw>>8), byte(sjw&0xFF))
	}
	return nil
}

// decodeECI reads the 1, 2, or 3-byte Extended Channel Interpretation
// designator using standard ECI continuation framing (a leading 10 or 110
// bit pattern selects a 2- or 3-byte designator).
func decodeECI(d *Data, r *bitReader) error {
	if r.remaining() < 8 {
		return qrerr.ErrDataUnderflow
	}
	eci := uint32(r.take(8))
	if eci&0xC0 == 0x80 {
		if r.remaining() < 8 {
			return qrerr.ErrDataUnderflow
		}
		eci = eci<<8 | uint32(r.take(8))
	} else if eci&0xE0 == 0xC0 {
		if r.remaining() < 16 {
			return qrerr.ErrDataUnderflow
		}
		eci = eci<<16 | uint32(r.take(16))
	}
	d.ECI = eci
	return nil
}
