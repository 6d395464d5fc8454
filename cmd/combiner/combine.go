package main

import (
	"fmt"
	"os"

	"github.com/iangfernandes96/combiner/internal/codec"
	"github.com/iangfernandes96/combiner/internal/pipeline"
	"github.com/spf13/cobra"
)

var combineCmd = &cobra.Command{
	Use:   "combine <image1> <image2> <output>",
	Short: "Interleave two images of the same format into one",
	Long: `Decode both images, resize the larger one down to the smaller one's
dimensions, interleave their RGB bytes in 4-byte chunks and write the
result in the inputs' format.`,
	Args: cobra.ExactArgs(3),
	RunE: runCombine,
}

func init() {
	addPipelineFlags(combineCmd)
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	image1, image2, outputPath := args[0], args[1], args[2]

	opts, err := pipelineOptions(cmd, outputPath)
	if err != nil {
		return err
	}

	data1, err := os.ReadFile(image1)
	if err != nil {
		return fmt.Errorf("reading image1: %w", err)
	}
	data2, err := os.ReadFile(image2)
	if err != nil {
		return fmt.Errorf("reading image2: %w", err)
	}

	result, err := pipeline.Run(data1, data2, opts)
	if err != nil {
		return fmt.Errorf("combine: %w", err)
	}

	if f, ok := codec.FormatFromPath(outputPath); ok && f != result.Format {
		log.Warning("output %s has a .%s extension but is encoded as %s", outputPath, f, result.Format)
	}

	if err := writeFileAtomic(outputPath, result.Data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Combined %dx%d %s (pad: %s)\n", result.Width, result.Height, result.Format, opts.Pad)
	fmt.Printf("Inputs: %s (%d bytes), %s (%d bytes)\n", image1, len(data1), image2, len(data2))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
