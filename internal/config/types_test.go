package config_test

import (
	"testing"

	"github.com/chrimaho/mdtk/internal/config"
)

func TestDirectoryName(t *testing.T) {
	tests := []struct {
		pkg  string
		want string
	}{
		{pkg: "data-science-extensions", want: "data_science_extensions"},
		{pkg: "mdtk", want: "mdtk"},
		{pkg: "", want: ""},
	}

	for _, tt := range tests {
		cfg := &config.Config{Package: tt.pkg}
		if got := cfg.DirectoryName(); got != tt.want {
			t.Errorf("DirectoryName() with %q = %q, want %q", tt.pkg, got, tt.want)
		}
	}
}

func TestSourceDir(t *testing.T) {
	cfg := &config.Config{Package: "data-science-extensions"}
	if got := cfg.SourceDir(); got != "src/data_science_extensions" {
		t.Errorf("SourceDir() = %q, want %q", got, "src/data_science_extensions")
	}

	empty := &config.Config{}
	if got := empty.SourceDir(); got != "src" {
		t.Errorf("SourceDir() with empty package = %q, want %q", got, "src")
	}
}

func TestValidSection(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		want bool
	}{
		{name: "pandas", want: true},
		{name: "Pandas", want: true},
		{name: "PYSPARK", want: true},
		{name: "sql", want: true},
		{name: "polars", want: true},
		{name: "duckdb", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		if got := cfg.ValidSection(tt.name); got != tt.want {
			t.Errorf("ValidSection(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultPopulatesEverything(t *testing.T) {
	cfg := config.Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults error = %v", err)
	}

	if cfg.Tools.Site != "mkdocs" || cfg.Tools.Versioner != "mike" {
		t.Errorf("Tools = %+v, want mkdocs and mike defaults", cfg.Tools)
	}
}
