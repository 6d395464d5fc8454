package main

import (
	"fmt"

	"github.com/iangfernandes96/combiner/internal/codec"
	"github.com/iangfernandes96/combiner/internal/pipeline"
	"github.com/iangfernandes96/combiner/internal/rawio"
	"github.com/spf13/cobra"
)

var interleaveCmd = &cobra.Command{
	Use:   "interleave",
	Short: "Interleave two images (raw RGBA output + JSON sidecar)",
	RunE:  runInterleave,
}

func init() {
	interleaveCmd.Flags().StringP("image1", "a", "", "First input image")
	interleaveCmd.Flags().StringP("image2", "b", "", "Second input image")
	interleaveCmd.Flags().StringP("output", "o", "", "Output raw RGBA file (.zst suffix compresses)")
	addPipelineFlags(interleaveCmd)
	interleaveCmd.MarkFlagRequired("image1")
	interleaveCmd.MarkFlagRequired("image2")
	interleaveCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(interleaveCmd)
}

func runInterleave(cmd *cobra.Command, args []string) error {
	image1, _ := cmd.Flags().GetString("image1")
	image2, _ := cmd.Flags().GetString("image2")
	outputPath, _ := cmd.Flags().GetString("output")

	opts, err := pipelineOptions(cmd, outputPath)
	if err != nil {
		return err
	}

	a, err := codec.DecodeFile(image1)
	if err != nil {
		return fmt.Errorf("decode image1: %w", err)
	}
	b, err := codec.DecodeFile(image2)
	if err != nil {
		return fmt.Errorf("decode image2: %w", err)
	}
	format := a.Format

	out, err := pipeline.Combine(a, b, opts)
	if err != nil {
		return fmt.Errorf("interleave: %w", err)
	}

	if err := rawio.WriteRaw(outputPath, out.Pixels); err != nil {
		return fmt.Errorf("writing raw RGBA: %w", err)
	}

	meta := rawio.Meta{
		Width:  int(out.Width),
		Height: int(out.Height),
		Format: string(format),
		Layout: rawio.LayoutRGBA8,
		Pad:    opts.Pad.String(),
	}
	metaPath := rawio.SidecarPath(outputPath)
	if err := rawio.WriteMeta(metaPath, meta); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Interleaved %dx%d %s → raw RGBA (%d bytes)\n", out.Width, out.Height, format, len(out.Pixels))
	fmt.Printf("Sidecar: %s\n", metaPath)
	return nil
}
