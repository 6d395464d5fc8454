package main

import (
	"fmt"
	"os"

	"github.com/iangfernandes96/combiner/internal/codec"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image dimensions and format",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := codec.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Format:      %s\n", info.Format)
	fmt.Printf("Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Printf("Color model: %s\n", info.ColorModel)
	fmt.Printf("RGB bytes:   %d\n", info.Width*info.Height*3)
	fmt.Printf("File size:   %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))
	if !info.Format.CanEncode() {
		fmt.Printf("Note:        %s output is not supported; combine will fail for this format\n", info.Format)
	}
	return nil
}
