// Package rawio reads and writes raw RGBA dumps with a JSON sidecar
// describing them. Paths ending in ".zst" are zstd-compressed.
package rawio

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	zstdSuffix = ".zst"
	rawSuffix  = ".raw"
)

// LayoutRGBA8 is the only pixel layout written by this package.
const LayoutRGBA8 = "RGBA8"

// Meta describes a raw dump.
type Meta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // container format the dump should be encoded in
	Layout string `json:"layout"`
	Pad    string `json:"pad,omitempty"`
}

// Compressed reports whether path names a zstd-compressed dump.
func Compressed(path string) bool {
	return strings.HasSuffix(path, zstdSuffix)
}

// SidecarPath returns the JSON sidecar path for a raw dump path:
// "out.raw.zst" → "out.json".
func SidecarPath(rawPath string) string {
	p := strings.TrimSuffix(rawPath, zstdSuffix)
	return strings.TrimSuffix(p, rawSuffix) + ".json"
}

// WriteRaw writes data to path, compressing it when path ends in ".zst".
func WriteRaw(path string, data []byte) error {
	if !Compressed(path) {
		return os.WriteFile(path, data, 0644)
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return errors.Wrap(err, "zstd writer")
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return errors.Wrap(err, "zstd compress")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "zstd compress")
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadRaw reads a dump written by WriteRaw.
func ReadRaw(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !Compressed(path) {
		return io.ReadAll(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "zstd reader")
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrapf(err, "zstd decompress %s", path)
	}
	return data, nil
}

// WriteMeta writes m as indented JSON to path.
func WriteMeta(path string, m Meta) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadMeta reads a sidecar written by WriteMeta.
func ReadMeta(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if m.Layout != "" && m.Layout != LayoutRGBA8 {
		return nil, errors.Errorf("%s: unsupported pixel layout %q", path, m.Layout)
	}
	return &m, nil
}
