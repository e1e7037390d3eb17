package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{path: "version.json", expected: FormatJSON},
		{path: ".csemver.yaml", expected: FormatYAML},
		{path: "descriptor.yml", expected: FormatYAML},
		{path: "VERSION.YAML", expected: FormatYAML},
		{path: "out.table", expected: FormatTable},
		{path: "out.txt", expected: FormatTable},
		{path: "noextension", expected: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReaderRejectsTable(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("x")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("x")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReaderDeserializeJSON(t *testing.T) {
	reader, err := NewReader(FormatJSON, strings.NewReader(`{"name":"v","value":3}`))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var result testConfig
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if result.Name != "v" || result.Value != 3 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestReaderDeserializeYAML(t *testing.T) {
	reader, err := NewReader(FormatYAML, strings.NewReader("name: v\nvalue: 3\n"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var result testConfig
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if result.Name != "v" || result.Value != 3 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("name: from-yaml\nvalue: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := FromFile[testConfig](yamlPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "from-yaml" || got.Value != 1 {
		t.Errorf("unexpected result: %+v", got)
	}

	jsonPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"from-json","value":2}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err = FromFile[testConfig](jsonPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "from-json" || got.Value != 2 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile[testConfig](filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reader, err := NewFileReader(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Errorf("second Close must be a no-op, got: %v", err)
	}

	var nilReader *Reader
	if err := nilReader.Close(); err != nil {
		t.Errorf("nil reader Close must be a no-op, got: %v", err)
	}
}
