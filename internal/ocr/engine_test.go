package ocr

import (
	"context"
	"errors"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewExecEngine_MissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "tesseract")
	_, err := NewExecEngine(missing)
	if !errors.Is(err, ErrEngineNotFound) {
		t.Fatalf("want ErrEngineNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should report the attempted path: %v", err)
	}
}

func TestNewExecEngine_EmptyPath(t *testing.T) {
	if _, err := NewExecEngine(""); !errors.Is(err, ErrEngineNotFound) {
		t.Errorf("want ErrEngineNotFound, got %v", err)
	}
}

func TestNew_SelectsEngine(t *testing.T) {
	if _, err := New("exec", filepath.Join(t.TempDir(), "gone")); !errors.Is(err, ErrEngineNotFound) {
		t.Errorf("exec selection should validate the path, got %v", err)
	}

	engine, err := New("library", "")
	if err != nil {
		t.Fatalf("library engine construction failed: %v", err)
	}
	if _, ok := engine.(*LibraryEngine); !ok {
		t.Errorf("got %T, want *LibraryEngine", engine)
	}
}

func TestExecEngine_Args(t *testing.T) {
	e := &ExecEngine{path: "/usr/bin/tesseract"}
	got := e.args("/tmp/in.png", "/tmp/in", Options{Language: "jpn", PageSegMode: PSMSingleBlock})
	want := []string{"/tmp/in.png", "/tmp/in", "--psm", "6", "-l", "jpn", "-c", "preserve_interword_spaces=1"}
	if len(got) != len(want) {
		t.Fatalf("args: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("args[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWriteTempPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	path, err := writeTempPNG(img)
	if err != nil {
		t.Fatalf("writeTempPNG failed: %v", err)
	}
	defer os.Remove(path)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("temp file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("temp file is empty")
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("temp file should be a .png, got %s", path)
	}
}

func TestExecEngine_Recognize(t *testing.T) {
	path, err := exec.LookPath("tesseract")
	if err != nil {
		t.Skip("tesseract binary not available")
	}
	engine, err := NewExecEngine(path)
	if err != nil {
		t.Fatalf("NewExecEngine failed: %v", err)
	}

	// White canvas; any outcome except an engine error is fine.
	img := image.NewGray(image.Rect(0, 0, 200, 60))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	if _, err := engine.Recognize(context.Background(), img, Options{Language: "eng", PageSegMode: PSMSingleBlock}); err != nil {
		if strings.Contains(err.Error(), "Failed loading language") {
			t.Skip("eng language data not available")
		}
		t.Fatalf("Recognize failed: %v", err)
	}
}
