package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDetectContainer(t *testing.T) {
	tmpDir := t.TempDir()

	xlsxPath := filepath.Join(tmpDir, "book.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(xlsxPath); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	textPath := filepath.Join(tmpDir, "notes.xlsx")
	if err := os.WriteFile(textPath, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tinyPath := filepath.Join(tmpDir, "tiny.xlsx")
	if err := os.WriteFile(tinyPath, []byte("P"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tests := []struct {
		path     string
		expected Container
	}{
		{xlsxPath, ContainerOOXML},
		{textPath, ContainerUnknown},
		{tinyPath, ContainerUnknown},
	}

	for _, tt := range tests {
		result, err := DetectContainer(tt.path)
		if err != nil {
			t.Fatalf("DetectContainer(%q) failed: %v", tt.path, err)
		}
		if result != tt.expected {
			t.Errorf("DetectContainer(%q) = %v, expected %v", filepath.Base(tt.path), result, tt.expected)
		}
	}
}

func TestDetectContainerBrokenOLE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xls")
	if err := os.WriteFile(path, append([]byte(nil), oleMagic...), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := DetectContainer(path); err == nil {
		t.Error("Expected error for a truncated OLE file")
	}
}

func TestDetectContainerMissingFile(t *testing.T) {
	if _, err := DetectContainer(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestContainerString(t *testing.T) {
	tests := []struct {
		c        Container
		expected string
	}{
		{ContainerOOXML, "ooxml"},
		{ContainerLegacy, "legacy"},
		{ContainerEncrypted, "encrypted"},
		{ContainerUnknown, "unknown"},
	}
	for _, tt := range tests {
		if tt.c.String() != tt.expected {
			t.Errorf("%d.String() = %q, expected %q", tt.c, tt.c.String(), tt.expected)
		}
	}
}
