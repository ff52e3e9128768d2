package config

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultLineLength = 120
	DefaultDocsBranch = "docs-site"
	DefaultHeader     = "h3"

	DefaultFormatter = "blacken-docs"
	DefaultNotebook  = "jupytext"
	DefaultSite      = "mkdocs"
	DefaultVersioner = "mike"
)

// DefaultSections lists the tab names the extractor accepts out of the box,
// one per supported ecosystem.
func DefaultSections() []string {
	return []string{"pandas", "sql", "pyspark", "polars"}
}

type Config struct {
	// Package is the distribution name; its source directory is derived by
	// replacing hyphens with underscores.
	Package    string   `koanf:"package"     validate:"omitempty,package_name"`
	LineLength int      `koanf:"line_length" validate:"omitempty,gte=40,lte=400"`
	Header     string   `koanf:"header"      validate:"omitempty,oneof=## ### #### h2 h3 h4"`
	DocsBranch string   `koanf:"docs_branch"`
	Sections   []string `koanf:"sections"    validate:"omitempty,dive,required"`
	Tools      Tools    `koanf:"tools"`
	ConfigDir  string   `koanf:"-"`
}

// Tools names the external commands the pipeline invokes.
type Tools struct {
	Formatter string `koanf:"formatter"`
	Notebook  string `koanf:"notebook"`
	Site      string `koanf:"site"`
	Versioner string `koanf:"versioner"`
}

var packageNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("package_name", func(fl validator.FieldLevel) bool {
		return packageNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()

	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.LineLength == 0 {
		c.LineLength = DefaultLineLength
	}

	if c.Header == "" {
		c.Header = DefaultHeader
	}

	if c.DocsBranch == "" {
		c.DocsBranch = DefaultDocsBranch
	}

	if len(c.Sections) == 0 {
		c.Sections = DefaultSections()
	}

	if c.Tools.Formatter == "" {
		c.Tools.Formatter = DefaultFormatter
	}

	if c.Tools.Notebook == "" {
		c.Tools.Notebook = DefaultNotebook
	}

	if c.Tools.Site == "" {
		c.Tools.Site = DefaultSite
	}

	if c.Tools.Versioner == "" {
		c.Tools.Versioner = DefaultVersioner
	}
}

func (c *Config) Validate() error {
	v := newValidator()

	valErr := v.Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	for _, fe := range validationErrors {
		return mapValidationError(c, fe)
	}

	return nil
}

func mapValidationError(cfg *Config, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == "package_name":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "package").
			With("value", cfg.Package).
			Hint("Package names use lowercase letters, digits, and hyphens").
			Errorf("invalid package name %q", cfg.Package)

	case fe.Tag() == "oneof" && field == "header":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "header").
			With("value", cfg.Header).
			Hint("Valid header styles: ##, ###, ####, h2, h3, h4").
			Errorf("invalid header style %q", cfg.Header)

	case field == "linelength":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "line_length").
			With("value", cfg.LineLength).
			Hint("line_length must be between 40 and 400").
			Errorf("invalid line length %d", cfg.LineLength)

	case strings.HasPrefix(field, "sections"):
		return oops.
			Code("CONFIG_INVALID").
			With("field", "sections").
			Hint("Section names must be non-empty strings").
			Errorf("invalid sections list")

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}

// DirectoryName is the package's import directory: hyphens become
// underscores, matching how the build lays the package out under src/.
func (c *Config) DirectoryName() string {
	return strings.ReplaceAll(c.Package, "-", "_")
}

// SourceDir is the path the type/style checkers operate on.
func (c *Config) SourceDir() string {
	if c.Package == "" {
		return "src"
	}

	return "src/" + c.DirectoryName()
}

// ValidSection reports whether name matches a configured section name,
// case-insensitively.
func (c *Config) ValidSection(name string) bool {
	for _, section := range c.Sections {
		if strings.EqualFold(section, name) {
			return true
		}
	}

	return false
}
