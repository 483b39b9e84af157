// Package config loads and validates the blog settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdblog/internal/dateutil"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/pipeline"
	"github.com/alnah/go-mdblog/internal/theme"
	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// FileName is the settings file at the blog root.
const FileName = "mdblog.yaml"

// Sentinel errors for config operations.
var (
	ErrConfigParse   = errors.New("failed to parse config")
	ErrConfigRead    = errors.New("failed to read config")
	ErrFieldTooLong  = errors.New("field exceeds maximum length")
	ErrInvalidDir    = errors.New("directory must be a relative path inside the blog")
	ErrDirConflict   = errors.New("directories must be distinct")
	ErrInvalidConfig = errors.New("invalid config")
)

// Field length limits.
const (
	MaxSiteNameLength   = 100
	MaxMottoLength      = 200
	MaxURLLength        = 2048 // Browser limit
	MaxFooterLength     = 500
	MaxDirLength        = 255
	MaxStyleNameLength  = 50
	MaxThemeNameLength  = 100
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// Defaults applied to unset fields.
const (
	DefaultSiteName       = "Mdblog"
	DefaultSiteMotto      = "Simple is Beautiful!"
	DefaultSiteLogo       = "/static/logo.png"
	DefaultThemeRootDir   = "_themes"
	DefaultPostsDir       = "posts"
	DefaultMediaDir       = "media"
	DefaultBuildDir       = "_builded"
	DefaultHighlightStyle = pipeline.DefaultHighlightStyle
)

// Config holds the blog settings.
type Config struct {
	SiteName       string `yaml:"site_name"`
	SiteMotto      string `yaml:"site_motto"`
	SiteLogo       string `yaml:"site_logo"` // URL or site-absolute path
	FooterNote     string `yaml:"footer_note"`
	Theme          string `yaml:"theme"`
	ThemeRootDir   string `yaml:"theme_root_dir"`
	PostsDir       string `yaml:"posts_dir"`
	MediaDir       string `yaml:"media_dir"`
	BuildDir       string `yaml:"build_dir"`
	DateFormat     string `yaml:"date_format"`     // token format or preset, see dateutil
	HighlightStyle string `yaml:"highlight_style"` // chroma style name
}

// Keys returns the accepted settings keys in file order.
func Keys() []string {
	return []string{
		"site_name", "site_motto", "site_logo", "footer_note",
		"theme", "theme_root_dir", "posts_dir", "media_dir", "build_dir",
		"date_format", "highlight_style",
	}
}

// DefaultConfig returns the settings of a freshly initialized blog.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every empty field with its default.
func (c *Config) ApplyDefaults() {
	setDefault(&c.SiteName, DefaultSiteName)
	setDefault(&c.SiteMotto, DefaultSiteMotto)
	setDefault(&c.SiteLogo, DefaultSiteLogo)
	setDefault(&c.Theme, theme.DefaultName)
	setDefault(&c.ThemeRootDir, DefaultThemeRootDir)
	setDefault(&c.PostsDir, DefaultPostsDir)
	setDefault(&c.MediaDir, DefaultMediaDir)
	setDefault(&c.BuildDir, DefaultBuildDir)
	setDefault(&c.DateFormat, dateutil.DefaultDateFormat)
	setDefault(&c.HighlightStyle, DefaultHighlightStyle)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks field lengths, directory names, the theme name and the
// date format. Called by LoadConfig; available for callers that build a
// Config by hand.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site_name", c.SiteName, MaxSiteNameLength},
		{"site_motto", c.SiteMotto, MaxMottoLength},
		{"site_logo", c.SiteLogo, MaxURLLength},
		{"footer_note", c.FooterNote, MaxFooterLength},
		{"theme", c.Theme, MaxThemeNameLength},
		{"theme_root_dir", c.ThemeRootDir, MaxDirLength},
		{"posts_dir", c.PostsDir, MaxDirLength},
		{"media_dir", c.MediaDir, MaxDirLength},
		{"build_dir", c.BuildDir, MaxDirLength},
		{"date_format", c.DateFormat, MaxDateFormatLength},
		{"highlight_style", c.HighlightStyle, MaxStyleNameLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	dirs := []struct {
		field string
		value string
	}{
		{"theme_root_dir", c.ThemeRootDir},
		{"posts_dir", c.PostsDir},
		{"media_dir", c.MediaDir},
		{"build_dir", c.BuildDir},
	}
	seen := make(map[string]string, len(dirs))
	for _, d := range dirs {
		if err := validateDir(d.field, d.value); err != nil {
			return err
		}
		if d.value == "" {
			continue
		}
		clean := filepath.Clean(d.value)
		if other, ok := seen[clean]; ok {
			return fmt.Errorf("%w: %s and %s are both %q", ErrDirConflict, other, d.field, d.value)
		}
		seen[clean] = d.field
	}

	if c.Theme != "" {
		if err := theme.ValidateName(c.Theme); err != nil {
			return fmt.Errorf("%w: theme: %w", ErrInvalidConfig, err)
		}
	}
	if c.DateFormat != "" {
		if _, err := dateutil.Layout(c.DateFormat); err != nil {
			return fmt.Errorf("%w: date_format: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateDir accepts empty values (defaults fill them) and relative paths
// that stay inside the blog root.
func validateDir(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if !filepath.IsLocal(value) || filepath.Clean(value) == "." {
		return fmt.Errorf("%w: %s = %q", ErrInvalidDir, fieldName, value)
	}
	return nil
}

// LoadConfig reads the settings file at path, fills unset fields with
// defaults and validates the result. A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the blog's own settings file
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}

	cfg := &Config{}
	if len(data) > 0 {
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, path, yamlutil.Describe(err))
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the settings as YAML, for writing a new settings file.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// Save writes the settings to path.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
