package decoder

import (
	"github.com/jalphad/qrscan/internal/payload"
	"golang.org/x/text/encoding/japanese"
)

// DataDecoder decodes a symbol's corrected data codewords into a readable
// message.
//
// QR codes support multiple encoding modes:
//   - Numeric:       Encodes numbers 0-9 efficiently (3.33 bits per digit)
//   - Alphanumeric:  Encodes A-Z, 0-9, and some punctuation (5.5 bits per char)
//   - Byte:          Encodes any 8-bit data (8 bits per byte) - most flexible
//   - Kanji:         Encodes Japanese Kanji characters (13 bits per char)
//
// The bitstream segment parsing itself lives in internal/payload, which
// handles version-dependent count-field widths and mixed-mode messages;
// this type's job is turning the resulting segment bytes into a final
// string. When Kanji is the dominant data type (the highest mode seen), the
// whole payload is transcoded from Shift-JIS to UTF-8.
type DataDecoder struct{}

// NewDataDecoder creates a new data decoder
func NewDataDecoder() *DataDecoder {
	return &DataDecoder{}
}

// Decode parses dataBytes, the corrected and concatenated data codewords of
// a `version`-sized symbol, into its message string.
func (dd *DataDecoder) Decode(dataBytes []byte, version int) (string, error) {
	d := &payload.Data{Version: version}
	if err := payload.DecodePayload(d, dataBytes); err != nil {
		return "", err
	}

	if d.DataType == payload.ModeKanji {
		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(d.Payload)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	return string(d.Payload), nil
}
