// Package config loads the bbcode CLI settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"akhil.cc/bbcode/gen"
	"akhil.cc/bbcode/internal/censor"
	"akhil.cc/bbcode/locale"
	"akhil.cc/bbcode/parser"
	"github.com/BurntSushi/toml"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// Config holds forum-level rendering settings.
type Config struct {
	BaseURL  string `toml:"base_url" yaml:"base_url"`
	Protocol string `toml:"protocol" yaml:"protocol"`

	Smilies   bool `toml:"smilies" yaml:"smilies"`
	MakeLinks bool `toml:"make_links" yaml:"make_links"`
	Censoring bool `toml:"censoring" yaml:"censoring"`
	// CensorWords is split like a shell command line, so
	// `darn "two words"` holds two entries.
	CensorWords string `toml:"censor_words" yaml:"censor_words"`

	QuoteDepth    int  `toml:"quote_depth" yaml:"quote_depth"`
	MaxLength     int  `toml:"max_length" yaml:"max_length"`
	AllowLinks    bool `toml:"allow_links" yaml:"allow_links"`
	AllowImages   bool `toml:"allow_images" yaml:"allow_images"`
	ShowImages    bool `toml:"show_img" yaml:"show_img"`
	ShowSigImages bool `toml:"show_img_sig" yaml:"show_img_sig"`

	LocaleFile string `toml:"locale_file" yaml:"locale_file"`
	Sanitize   bool   `toml:"sanitize" yaml:"sanitize"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Protocol:      "https",
		Smilies:       true,
		MakeLinks:     true,
		QuoteDepth:    parser.DefaultQuoteDepth,
		MaxLength:     parser.DefaultMaxLength,
		AllowLinks:    true,
		AllowImages:   true,
		ShowImages:    true,
		ShowSigImages: true,
	}
}

// Load reads path on top of Default. An empty path returns Default.
// Relative locale files are resolved against the directory of path.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), c); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, c); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", ext)
	}
	if c.LocaleFile != "" && !filepath.IsAbs(c.LocaleFile) {
		c.LocaleFile = filepath.Join(filepath.Dir(path), c.LocaleFile)
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	return c, nil
}

// Words returns the censored word list.
func (c *Config) Words() ([]string, error) {
	words, err := shellquote.Split(c.CensorWords)
	if err != nil {
		return nil, fmt.Errorf("config: censor_words: %w", err)
	}
	return words, nil
}

// Catalog returns the locale catalog named by LocaleFile, or the built-in one.
func (c *Config) Catalog() (*locale.Catalog, error) {
	if c.LocaleFile == "" {
		return locale.Default(), nil
	}
	return locale.Load(c.LocaleFile)
}

// ParserOptions returns the validation settings.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		QuoteDepth:  c.QuoteDepth,
		MaxLength:   c.MaxLength,
		AllowLinks:  c.AllowLinks,
		AllowImages: c.AllowImages,
	}
}

// GenOptions returns the rendering settings for a post, or a signature if
// signature is set.
func (c *Config) GenOptions(signature bool, tr gen.Translator) (gen.Options, error) {
	opts := gen.Options{
		IsSignature: signature,
		ShowImages:  c.ShowImages,
		Smilies:     c.Smilies,
		Links:       c.MakeLinks,
		Censor:      c.Censoring,
		BaseURL:     c.BaseURL,
		Protocol:    c.Protocol,
		Translator:  tr,
	}
	if signature {
		opts.ShowImages = c.ShowSigImages
	}
	if c.Censoring {
		words, err := c.Words()
		if err != nil {
			return opts, err
		}
		f, err := censor.New(words)
		if err != nil {
			return opts, fmt.Errorf("config: censor_words: %w", err)
		}
		opts.Censorer = f
	}
	return opts, nil
}
