package decoder

import (
	"fmt"

	"github.com/jalphad/qrscan/qrcode/types"
	"go.uber.org/zap"
)

// Decoder provides the complete QR code decoding pipeline
//
// This orchestrates the two main steps of QR code decoding:
//  1. Error Correction: Reed-Solomon error correction using GF(256) arithmetic
//  2. Data Decoding: Parsing the corrected bytes to extract the message
//
// Educational Purpose:
// This demonstrates how abstract algebra (finite field arithmetic) enables
// real-world applications like QR codes.
type Decoder struct {
	errorCorrector *ErrorCorrector
	dataDecoder    *DataDecoder
	logger         *zap.SugaredLogger
}

// NewDecoder creates a new QR code decoder
//
// Returns an error if the GF(256) field cannot be initialized (should not happen
// with valid parameters).
func NewDecoder() (*Decoder, error) {
	errorCorrector, err := NewErrorCorrector()
	if err != nil {
		return nil, fmt.Errorf("failed to create error corrector: %w", err)
	}

	return &Decoder{
		errorCorrector: errorCorrector,
		dataDecoder:    NewDataDecoder(),
		logger:         zap.NewNop().Sugar(),
	}, nil
}

// SetVerbose enables or disables verbose logging
//
// When enabled, the decoder logs detailed information about each step of
// the decoding process via a development zap logger. Disabling swaps back
// in a no-op logger.
func (d *Decoder) SetVerbose(verbose bool) {
	if !verbose {
		d.logger = zap.NewNop().Sugar()
		return
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		d.logger = zap.NewNop().Sugar()
		return
	}
	d.logger = logger.Sugar()
}

// Decode performs the complete QR code decoding pipeline
//
// Steps:
//  1. Error Correction: Apply Reed-Solomon error correction to fix corrupted codewords
//  2. Data Decoding: Parse the corrected bytes to extract the message
//  3. Collect Statistics: Gather information about errors found and corrected
//
// This is the main entry point for decoding QR codes. It takes the raw extracted
// QR data and returns the decoded message along with detailed statistics.
func (d *Decoder) Decode(qrData *types.QRCodeData) (*DecodeResult, error) {
	d.logger.Infow("starting decode",
		"version", qrData.Version, "ecLevel", qrData.ECLevel, "codewords", len(qrData.RawCodewords))

	correctedData, blockResults, err := d.errorCorrector.CorrectCodewords(qrData)
	if err != nil {
		return nil, fmt.Errorf("error correction failed: %w", err)
	}

	totalErrors := 0
	allErrorPositions := []int{}
	allBlocksSucceeded := true

	for _, blockResult := range blockResults {
		d.logger.Debugw("block corrected",
			"block", blockResult.BlockIndex, "errors", blockResult.ErrorsFound, "positions", blockResult.ErrorPositions)
		totalErrors += blockResult.ErrorsFound
		allErrorPositions = append(allErrorPositions, blockResult.ErrorPositions...)
		if !blockResult.CorrectionSucceeded {
			allBlocksSucceeded = false
		}
	}

	if !allBlocksSucceeded {
		return &DecodeResult{
			CorrectionSuccessful: false,
			ErrorPositions:       allErrorPositions,
			BlockResults:         blockResults,
		}, fmt.Errorf("error correction failed for one or more blocks")
	}

	d.logger.Infow("error correction complete", "totalErrors", totalErrors, "dataBytes", len(correctedData))

	message, err := d.dataDecoder.Decode(correctedData, qrData.Version)
	if err != nil {
		return nil, fmt.Errorf("data decoding failed: %w", err)
	}

	d.logger.Infow("data decoding complete", "message", message, "length", len(message))

	return &DecodeResult{
		Message:              message,
		CorrectionSuccessful: allBlocksSucceeded,
		NumErrorsCorrected:   totalErrors,
		ErrorPositions:       allErrorPositions,
		BlockResults:         blockResults,
	}, nil
}

// DecodeWithStats is a convenience method that decodes and logs a summary.
//
// This is useful for educational demonstrations where you want to show
// the decoding process and statistics in one call.
func (d *Decoder) DecodeWithStats(qrData *types.QRCodeData) (*DecodeResult, error) {
	result, err := d.Decode(qrData)
	if err != nil {
		return nil, err
	}

	d.logger.Infow("decoding summary",
		"message", result.Message, "errorsCorrected", result.NumErrorsCorrected, "blocks", len(result.BlockResults))
	for _, block := range result.BlockResults {
		d.logger.Debugw("block summary",
			"block", block.BlockIndex, "data", block.NumDataCodewords, "ec", block.NumECCodewords, "errors", block.ErrorsFound)
	}

	return result, nil
}
