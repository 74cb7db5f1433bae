package main

import (
	"fmt"
	"os"

	"github.com/jalphad/qrscan/qrcode/decoder"
	"github.com/jalphad/qrscan/qrcode/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// libraryVersion is printed by the version subcommand.
const libraryVersion = "0.1.0"

// QR Code Decoder with Reed-Solomon Error Correction
//
// This program is for educational purposes only! It locates and samples a
// QR symbol from an image itself, then decodes it using this module's own
// Reed-Solomon/BCH implementations over a tabulated GF(256)/GF(16).
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose, printVersion bool

	root := &cobra.Command{
		Use:   "qrscan",
		Short: "QR code decoder built on Reed-Solomon error correction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printVersion {
				fmt.Println(libraryVersion)
				return nil
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed decoding steps")
	root.Flags().BoolVar(&printVersion, "version", false, "print the library version and exit")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDecodeCmd(&verbose))

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the library version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(libraryVersion)
			return nil
		},
	}
}

func newDecodeCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <image>",
		Short: "decode a QR code from an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], *verbose)
		},
	}
}

func runDecode(imagePath string, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	sugar := logger.Sugar()

	sugar.Infow("extracting QR code", "path", imagePath)
	extractor := types.NewQRExtractor()
	qrData, err := extractor.ExtractFromImage(imagePath)
	if err != nil {
		return fmt.Errorf("error extracting QR code: %w", err)
	}
	if qrData == nil {
		fmt.Println("No QR symbol found")
		return nil
	}

	sugar.Infow("extraction complete",
		"version", qrData.Version, "ecLevel", qrData.ECLevel, "dataMask", qrData.DataMask,
		"rawCodewords", len(qrData.RawCodewords))

	dec, err := decoder.NewDecoder()
	if err != nil {
		return fmt.Errorf("error creating decoder: %w", err)
	}
	dec.SetVerbose(verbose)

	result, err := dec.Decode(qrData)
	if err != nil {
		return fmt.Errorf("error decoding QR code: %w", err)
	}

	fmt.Printf("Message: %q\n", result.Message)
	if result.NumErrorsCorrected > 0 {
		fmt.Printf("Corrected %d error(s)\n", result.NumErrorsCorrected)
		if verbose {
			fmt.Printf("Error positions: %v\n", result.ErrorPositions)
		}
	} else {
		fmt.Println("No errors detected (clean QR code)")
	}

	if verbose {
		fmt.Println("\nReed-Solomon block details:")
		for _, block := range result.BlockResults {
			fmt.Printf("  block %d: %d data + %d EC codewords, %d error(s) corrected\n",
				block.BlockIndex, block.NumDataCodewords, block.NumECCodewords, block.ErrorsFound)
		}
	}

	return nil
}
