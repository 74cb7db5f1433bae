package types

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jalphad/qrscan/internal/payload"
	"github.com/jalphad/qrscan/internal/sample"
)

// NewQRExtractor creates a new QR code extractor
func NewQRExtractor() *QRExtractor {
	return &QRExtractor{}
}

// QRExtractor locates and samples a QR symbol from an image, producing the
// raw (still interleaved, not yet error-corrected) material the decoder
// package needs.
type QRExtractor struct{}

// ExtractFromImage loads an image file and extracts QR code data
func (qe *QRExtractor) ExtractFromImage(imagePath string) (*QRCodeData, error) {
	img, err := loadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	return qe.ExtractFromImageData(img)
}

// ExtractFromImageData runs identification and sampling over an already
// decoded image.
func (qe *QRExtractor) ExtractFromImageData(img image.Image) (*QRCodeData, error) {
	gray, w, h := toGrayscale(img)
	return qe.ExtractFromGray(w, h, gray)
}

// ExtractFromGray runs the identification pipeline over a raw 8-bit
// grayscale raster and samples the first QR symbol it finds. A frame with
// no symbols is not an error: it yields a nil QRCodeData with a nil error.
func (qe *QRExtractor) ExtractFromGray(w, h int, gray []byte) (*QRCodeData, error) {
	pipeline := sample.Identify(w, h, gray)
	if len(pipeline.Assembler.Grids) == 0 {
		return nil, nil
	}

	code := pipeline.Extract(0)
	return qe.extractRawData(code)
}

// extractRawData reads a sampled symbol's format information and zigzagged
// data region, producing the raw (interleaved) codeword stream the
// error corrector expects.
func (qe *QRExtractor) extractRawData(code *sample.Code) (*QRCodeData, error) {
	version := (code.Size - 17) / 4

	level, mask, err := payload.ReadFormat(code, 0)
	if err != nil {
		level, mask, err = payload.ReadFormat(code, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to read format information: %w", err)
		}
	}

	bits := payload.ReadData(code, version, mask)
	rawCodewords := payload.PackBits(bits)

	return &QRCodeData{
		Version:      version,
		ECLevel:      level,
		DataMask:     mask,
		RawCodewords: rawCodewords,
		Code:         code,
	}, nil
}

// toGrayscale converts an arbitrary image.Image to a packed 8-bit luminance
// raster in row-major order.
func toGrayscale(img image.Image) ([]byte, int, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]byte, w*h)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
			gray[i] = byte(lum)
			i++
		}
	}
	return gray, w, h
}

// loadImage loads an image from file
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := filepath.Ext(path)
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(file)
	case ".png":
		return png.Decode(file)
	default:
		img, _, err := image.Decode(file)
		return img, err
	}
}

// PrintQRData prints extracted QR code data for workshop purposes
func (qrData *QRCodeData) PrintQRData() {
	fmt.Printf("QR Code Analysis:\n")
	fmt.Printf("Version: %d\n", qrData.Version)
	fmt.Printf("Error Correction Level: %v\n", qrData.ECLevel)
	fmt.Printf("Data Mask: %d\n", qrData.DataMask)
	fmt.Printf("Matrix Size: %dx%d\n", qrData.Code.Size, qrData.Code.Size)
	fmt.Printf("Raw Codewords: %d\n", len(qrData.RawCodewords))

	fmt.Printf("\nRaw Codewords (hex): ")
	for i, b := range qrData.RawCodewords {
		if i%16 == 0 {
			fmt.Printf("\n%04x: ", i)
		}
		fmt.Printf("%02x ", b)
	}
	fmt.Printf("\n")
}
