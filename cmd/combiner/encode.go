package main

import (
	"fmt"
	"os"

	"github.com/iangfernandes96/combiner/internal/codec"
	"github.com/iangfernandes96/combiner/internal/rawio"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw RGBA data to an image file",
	Long: `Encode a raw RGBA dump written by "interleave". Width, height and
format are taken from the JSON sidecar unless given as flags.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGBA file (.zst suffix is decompressed)")
	encodeCmd.Flags().StringP("output", "o", "", "Output image file")
	encodeCmd.Flags().String("format", "", "Output format (png, jpeg, gif, bmp, tiff)")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().Int("quality", 0, "JPEG quality (1-100)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	quality := cfg.JPEGQuality
	if cmd.Flags().Changed("quality") {
		quality, _ = cmd.Flags().GetInt("quality")
	}

	metaPath := rawio.SidecarPath(inputPath)
	meta, err := rawio.ReadMeta(metaPath)
	switch {
	case err == nil:
		log.Debug("sidecar %s: %+v", metaPath, *meta)
		if width == 0 {
			width = meta.Width
		}
		if height == 0 {
			height = meta.Height
		}
		if formatName == "" {
			formatName = meta.Format
		}
	case os.IsNotExist(err):
		log.Debug("no sidecar at %s", metaPath)
	default:
		return fmt.Errorf("reading sidecar: %w", err)
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height are required (no sidecar at %s)", metaPath)
	}

	var format codec.Format
	if formatName != "" {
		format, err = codec.ParseFormat(formatName)
	} else if f, ok := codec.FormatFromPath(outputPath); ok {
		format = f
	} else {
		err = fmt.Errorf("cannot infer format from %s; use --format", outputPath)
	}
	if err != nil {
		return err
	}

	pixels, err := rawio.ReadRaw(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	expected := width * height * 4
	if len(pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d RGBA, got %d", expected, width, height, len(pixels))
	}

	encoded, err := codec.Encode(pixels, width, height, format, codec.EncoderOptions{Quality: quality})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := writeFileAtomic(outputPath, encoded); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Encoded %dx%d RGBA → %s %s (%d bytes)\n", width, height, format, outputPath, len(encoded))
	return nil
}
