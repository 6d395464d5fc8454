package rawio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"out.raw", "out.json"},
		{"out.raw.zst", "out.json"},
		{"dir/combined.bin", "dir/combined.bin.json"},
		{"out.zst", "out.json"},
	}
	for _, tt := range tests {
		if got := SidecarPath(tt.input); got != tt.expected {
			t.Errorf("SidecarPath(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestRawPlainAndCompressed(t *testing.T) {
	dir := t.TempDir()
	data := bytes.Repeat([]byte{1, 2, 3, 0}, 1024)

	for _, name := range []string{"dump.raw", "dump.raw.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteRaw(path, data); err != nil {
			t.Fatalf("WriteRaw(%s): %v", name, err)
		}
		got, err := ReadRaw(path)
		if err != nil {
			t.Fatalf("ReadRaw(%s): %v", name, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("%s: read back %d bytes, differs from the %d written", name, len(got), len(data))
		}
	}

	plain, _ := os.Stat(filepath.Join(dir, "dump.raw"))
	packed, _ := os.Stat(filepath.Join(dir, "dump.raw.zst"))
	if packed.Size() >= plain.Size() {
		t.Errorf("compressed dump (%d bytes) is not smaller than plain (%d bytes)", packed.Size(), plain.Size())
	}
}

func TestReadRawCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.raw.zst")
	if err := os.WriteFile(path, []byte("not zstd at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRaw(path); err == nil {
		t.Fatal("expected error for corrupt zstd stream")
	}
}

func TestMeta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	want := Meta{Width: 4, Height: 2, Format: "png", Layout: LayoutRGBA8, Pad: "tail"}

	if err := WriteMeta(path, want); err != nil {
		t.Fatalf("WriteMeta: %v", err)
	}
	got, err := ReadMeta(path)
	if err != nil {
		t.Fatalf("ReadMeta: %v", err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("sidecar mismatch (-want +got):\n%s", diff)
	}
}

func TestMetaRejectsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte(`{"width":1,"height":1,"format":"png","layout":"CMYK8"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadMeta(path); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}
