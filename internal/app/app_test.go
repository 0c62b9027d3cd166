package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rook-computer/icongen/internal/icondir"
	"github.com/rook-computer/icongen/internal/render"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(render.NewCanvas(), icondir.NewWriter())
	a.OutPath = filepath.Join(t.TempDir(), "icon.ico")
	return a
}

func TestRunWritesContainer(t *testing.T) {
	a := newTestApp(t)
	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(a.OutPath)
	if err != nil {
		t.Fatalf("Output file not readable: %v", err)
	}
	// ICONDIR header: reserved=0, type=1 (icon), count=5, little endian.
	header := []byte{0, 0, 1, 0, 5, 0}
	if len(data) < len(header) || !bytes.Equal(data[:len(header)], header) {
		t.Errorf("Expected ICONDIR header %v, got %v", header, data[:min(len(data), 6)])
	}
}

func TestRunDeterministic(t *testing.T) {
	first := newTestApp(t)
	second := newTestApp(t)
	if err := first.Run(); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if err := second.Run(); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	a, err := os.ReadFile(first.OutPath)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second.OutPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Expected byte-identical output across runs")
	}
}

func TestRunOverwritesExistingFile(t *testing.T) {
	a := newTestApp(t)

	// Pre-existing garbage longer than any plausible output.
	garbage := bytes.Repeat([]byte{0xAB}, 1<<20)
	if err := os.WriteFile(a.OutPath, garbage, 0644); err != nil {
		t.Fatal(err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	fresh := newTestApp(t)
	if err := fresh.Run(); err != nil {
		t.Fatalf("Fresh run failed: %v", err)
	}

	got, err := os.ReadFile(a.OutPath)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(fresh.OutPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected overwrite to leave a fresh run's bytes; got %d bytes, want %d", len(got), len(want))
	}
}

func TestRunExportFailure(t *testing.T) {
	a := newTestApp(t)
	a.OutPath = filepath.Join(t.TempDir(), "missing", "icon.ico")

	err := a.Run()
	if err == nil {
		t.Fatal("Expected error for unwritable output path")
	}
	if !strings.Contains(err.Error(), a.OutPath) {
		t.Errorf("Expected error to name the output path, got: %v", err)
	}
	if _, statErr := os.Stat(a.OutPath); !os.IsNotExist(statErr) {
		t.Errorf("Expected no output file after failure, stat: %v", statErr)
	}
}

func TestRunFillsZeroValueDefaults(t *testing.T) {
	a := &App{OutPath: filepath.Join(t.TempDir(), "icon.ico")}
	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(a.OutPath); err != nil {
		t.Errorf("Expected output file, stat: %v", err)
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileLogger(&buf)
	logger.Infof("render", "canvas %dx%d allocated", 256, 256)
	logger.Errorf("export", "write failed")

	out := buf.String()
	if !strings.Contains(out, "[INFO] render: canvas 256x256 allocated") {
		t.Errorf("Missing info line, got: %q", out)
	}
	if !strings.Contains(out, "[ERROR] export: write failed") {
		t.Errorf("Missing error line, got: %q", out)
	}
}
