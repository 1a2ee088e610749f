package spritesheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/tilepaint/tilemap"
	"golang.org/x/image/bmp"
)

func TestSlice(t *testing.T) {
	cases := []struct {
		name          string
		rows, columns int
		wantLen       int
		first, last   tilemap.Region
	}{
		{"single", 1, 1, 1, tilemap.Region{UMax: 1, VMax: 1}, tilemap.Region{UMax: 1, VMax: 1}},
		{"two_by_four", 2, 4, 8,
			tilemap.Region{UMin: 0, VMin: 0, UMax: 0.25, VMax: 0.5},
			tilemap.Region{UMin: 0.75, VMin: 0.5, UMax: 1, VMax: 1}},
		{"clamped", 0, -3, 1, tilemap.Region{UMax: 1, VMax: 1}, tilemap.Region{UMax: 1, VMax: 1}},
		{"bounded", 1 << 30, 1 << 30, tilemap.MaxSlices * tilemap.MaxSlices,
			tilemap.Region{UMax: 1.0 / tilemap.MaxSlices, VMax: 1.0 / tilemap.MaxSlices},
			tilemap.Region{UMin: 255.0 / 256, VMin: 255.0 / 256, UMax: 1, VMax: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Slice(c.rows, c.columns)
			if len(got) != c.wantLen {
				t.Fatalf("len = %d, want %d", len(got), c.wantLen)
			}
			if diff := cmp.Diff(c.first, got[0]); diff != "" {
				t.Fatalf("first region (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(c.last, got[len(got)-1]); diff != "" {
				t.Fatalf("last region (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSliceRowMajor(t *testing.T) {
	got := Slice(2, 2)
	want := []tilemap.Region{
		{UMin: 0, VMin: 0, UMax: 0.5, VMax: 0.5},
		{UMin: 0.5, VMin: 0, UMax: 1, VMax: 0.5},
		{UMin: 0, VMin: 0.5, UMax: 0.5, VMax: 1},
		{UMin: 0.5, VMin: 0.5, UMax: 1, VMax: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Slice(2, 2) (-want +got):\n%s", diff)
	}
}

func TestSubRect(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 32)
	regions := Slice(2, 4)
	got := SubRect(bounds, regions[5])
	want := image.Rect(16, 16, 32, 32)
	if got != want {
		t.Fatalf("SubRect = %v, want %v", got, want)
	}

	offset := image.Rect(10, 10, 20, 20)
	if got := SubRect(offset, tilemap.Region{UMax: 1, VMax: 1}); got != offset {
		t.Fatalf("full region of offset bounds = %v, want %v", got, offset)
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	return img
}

func TestOpenDecodesFormats(t *testing.T) {
	dir := t.TempDir()

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, testImage()); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		data []byte
	}{
		{"sheet.png", pngBuf.Bytes()},
		{"sheet.bmp", bmpBuf.Bytes()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name)
			if err := os.WriteFile(path, c.data, 0o644); err != nil {
				t.Fatal(err)
			}
			img, err := Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 8, 4) {
				t.Fatalf("bounds = %v", img.Bounds())
			}
		})
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(bad); err == nil {
		t.Fatalf("Open should fail on garbage")
	}
}

func TestIsImageFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png":     true,
		"b.PNG":     true,
		"c.webp":    true,
		"d.bag":     false,
		"e.png.swp": false,
	} {
		if got := IsImageFile(path); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsImageWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	sheet := filepath.Join(dir, "sheet.png")
	if err := os.WriteFile(sheet, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "sheet.png" {
			t.Fatalf("event for %q, want sheet.png", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for image write")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := WatchFile(filepath.Join(t.TempDir(), "sheet.png"))
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
}
