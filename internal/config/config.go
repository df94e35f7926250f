// Package config manages application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/roboco-io/rtfwriter/internal/rtf"
)

// Environment variables that override the configuration file.
const (
	EnvLocale = "RTFWRITER_LOCALE"
	EnvPaper  = "RTFWRITER_PAPER"
	// EnvStrict enables strict description parsing when "true", "1" or "yes".
	EnvStrict = "RTFWRITER_STRICT"
)

// Config represents the application configuration.
type Config struct {
	Page   PageConfig  `yaml:"page"`
	Locale string      `yaml:"locale"`
	Font   FontConfig  `yaml:"font"`
	Image  ImageConfig `yaml:"image"`
}

// PageConfig contains the default page setup.
type PageConfig struct {
	Size        string        `yaml:"size"`
	Orientation string        `yaml:"orientation"`
	Margins     MarginsConfig `yaml:"margins"`
}

// MarginsConfig holds page margins in points.
type MarginsConfig struct {
	Top    float32 `yaml:"top"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Left   float32 `yaml:"left"`
}

// FontConfig contains the default font.
type FontConfig struct {
	Name string  `yaml:"name"`
	Size float32 `yaml:"size"`
}

// ImageConfig contains image embedding options.
type ImageConfig struct {
	DPI     float64 `yaml:"dpi"`
	MaxSize int64   `yaml:"max_size,omitempty"` // bytes, 0 = unlimited
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			Size:        "a4",
			Orientation: "portrait",
			Margins: MarginsConfig{
				Top:    rtf.DefaultMargin,
				Right:  rtf.DefaultMargin,
				Bottom: rtf.DefaultMargin,
				Left:   rtf.DefaultMargin,
			},
		},
		Locale: "en-US",
		Font: FontConfig{
			Name: rtf.DefaultFontName,
			Size: 12,
		},
		Image: ImageConfig{
			DPI: 96,
		},
	}
}

// ApplyEnv overrides locale and paper size from the environment.
func (c *Config) ApplyEnv() {
	c.Locale = GetEnvOrDefault(EnvLocale, c.Locale)
	c.Page.Size = GetEnvOrDefault(EnvPaper, c.Page.Size)
}

// Validate checks that enumerated values parse.
func (c *Config) Validate() error {
	if _, err := rtf.ParsePaperSize(c.Page.Size); err != nil {
		return fmt.Errorf("page.size: %w", err)
	}
	if _, err := rtf.ParseOrientation(c.Page.Orientation); err != nil {
		return fmt.Errorf("page.orientation: %w", err)
	}
	if _, err := rtf.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if c.Font.Size < 0 {
		return fmt.Errorf("font.size: must not be negative")
	}
	if c.Image.DPI < 0 {
		return fmt.Errorf("image.dpi: must not be negative")
	}
	return nil
}

// DocumentOptions converts the configuration into rtf.Options. The
// configuration must be valid.
func (c *Config) DocumentOptions() (rtf.Options, error) {
	if err := c.Validate(); err != nil {
		return rtf.Options{}, err
	}
	paper, _ := rtf.ParsePaperSize(c.Page.Size)
	orient, _ := rtf.ParseOrientation(c.Page.Orientation)
	lcid, _ := rtf.ParseLocale(c.Locale)
	m := c.Page.Margins.Margins()
	return rtf.Options{
		PaperSize:   paper,
		Orientation: orient,
		Lcid:        lcid,
		DefaultFont: c.Font.Name,
		Margins:     &m,
		ImageDPI:    c.Image.DPI,
	}, nil
}

// Margins converts to rtf.Margins.
func (m MarginsConfig) Margins() rtf.Margins {
	var out rtf.Margins
	out[rtf.Top] = m.Top
	out[rtf.Right] = m.Right
	out[rtf.Bottom] = m.Bottom
	out[rtf.Left] = m.Left
	return out
}

// Keys lists the settable configuration keys.
var Keys = []string{
	"page.size",
	"page.orientation",
	"page.margins",
	"page.margins.top",
	"page.margins.right",
	"page.margins.bottom",
	"page.margins.left",
	"locale",
	"font.name",
	"font.size",
	"image.dpi",
	"image.max_size",
}

// Set assigns a value by dotted key. page.margins sets all four sides.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "page.size":
		if _, err := rtf.ParsePaperSize(value); err != nil {
			return err
		}
		c.Page.Size = strings.ToLower(value)
	case "page.orientation":
		if _, err := rtf.ParseOrientation(value); err != nil {
			return err
		}
		c.Page.Orientation = strings.ToLower(value)
	case "page.margins":
		v, err := parsePoints(value)
		if err != nil {
			return err
		}
		c.Page.Margins = MarginsConfig{Top: v, Right: v, Bottom: v, Left: v}
	case "page.margins.top":
		return setPoints(&c.Page.Margins.Top, value)
	case "page.margins.right":
		return setPoints(&c.Page.Margins.Right, value)
	case "page.margins.bottom":
		return setPoints(&c.Page.Margins.Bottom, value)
	case "page.margins.left":
		return setPoints(&c.Page.Margins.Left, value)
	case "locale":
		if _, err := rtf.ParseLocale(value); err != nil {
			return err
		}
		c.Locale = value
	case "font.name":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("font name must not be empty")
		}
		c.Font.Name = value
	case "font.size":
		return setPoints(&c.Font.Size, value)
	case "image.dpi":
		v, err := parsePoints(value)
		if err != nil {
			return err
		}
		if v == 0 {
			return fmt.Errorf("dpi must be positive")
		}
		c.Image.DPI = float64(v)
	case "image.max_size":
		var n int64
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n < 0 {
			return fmt.Errorf("invalid size: %s", value)
		}
		c.Image.MaxSize = n
	default:
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

func setPoints(dst *float32, value string) error {
	v, err := parsePoints(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parsePoints(value string) (float32, error) {
	var v float32
	if _, err := fmt.Sscanf(value, "%g", &v); err != nil || v < 0 {
		return 0, fmt.Errorf("invalid length: %s", value)
	}
	return v, nil
}
