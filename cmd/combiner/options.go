package main

import (
	"os"
	"path/filepath"

	"github.com/iangfernandes96/combiner/internal/combine"
	"github.com/iangfernandes96/combiner/internal/ir"
	"github.com/iangfernandes96/combiner/internal/pipeline"
	"github.com/spf13/cobra"
)

// addPipelineFlags registers the flags shared by combine and interleave.
// Their defaults come from the configuration, so only flags the user set
// are applied.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("pad", "", "RGBA padding: tail (zero bytes appended) or alpha (opaque alpha per pixel)")
	cmd.Flags().Int("max-bytes", 0, "Maximum interleaved data size in bytes (0 = no limit)")
	cmd.Flags().String("filter", "", "Resampling filter: bilinear, approx-bilinear, catmull-rom")
	cmd.Flags().Int("quality", 0, "JPEG quality (1-100)")
}

func pipelineOptions(cmd *cobra.Command, name string) (pipeline.Options, error) {
	padName, maxBytes, filterName, quality := cfg.Pad, cfg.MaxBytes, cfg.Filter, cfg.JPEGQuality
	if cmd.Flags().Changed("pad") {
		padName, _ = cmd.Flags().GetString("pad")
	}
	if cmd.Flags().Changed("max-bytes") {
		maxBytes, _ = cmd.Flags().GetInt("max-bytes")
	}
	if cmd.Flags().Changed("filter") {
		filterName, _ = cmd.Flags().GetString("filter")
	}
	if cmd.Flags().Changed("quality") {
		quality, _ = cmd.Flags().GetInt("quality")
	}

	pad, err := ir.ParsePadMode(padName)
	if err != nil {
		return pipeline.Options{}, err
	}
	filter, err := combine.ParseFilter(filterName)
	if err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{
		Name:     name,
		MaxBytes: maxBytes,
		Pad:      pad,
		Filter:   filter,
		Quality:  quality,
		Log:      log,
	}, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so a failed run never leaves a partial output.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
