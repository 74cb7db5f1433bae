package types

import (
	"github.com/jalphad/qrscan/internal/sample"
	"github.com/jalphad/qrscan/internal/versiondb"
)

// QRCodeData holds the material read straight off a located QR symbol's
// module grid, before de-interleaving or Reed-Solomon correction: the
// version and format information identify how RawCodewords must be split
// into short/long blocks, but the codewords themselves are still in their
// as-sampled, interleaved order.
type QRCodeData struct {
	Version      int
	ECLevel      versiondb.ECCLevel
	DataMask     int
	RawCodewords []byte
	Code         *sample.Code
}
