// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package locale formats the user-facing strings of the generator and the
// messages for parse errors. English strings are built in; a TOML or YAML
// file may override any of them.
//
// Keys are flat, dotted names. In a file they may be written nested:
//
//      wrote = "schrieb:"
//
//      [error]
//      unterminated_tag = "Fehlendes [/{{.Tag}}]"
//
// Error messages are text/template strings executed with the *parser.Error.
package locale // import "akhil.cc/bbcode/locale"

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"akhil.cc/bbcode/gen"
	"akhil.cc/bbcode/parser"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// defaults holds the English error messages. Interface strings come from gen.English.
var defaults = map[string]string{
	"error.unterminated_tag":       "Missing closing tag for [{{.Tag}}].",
	"error.invalid_nesting":        "[{{.Tag}}] cannot be within [{{.Parent}}].",
	"error.required_parent":        "[{{.Tag}}] must be within [{{.Want}}].",
	"error.nesting_depth_exceeded": "[{{.Tag}}] may only be nested {{.Limit}} levels deep.",
	"error.self_nesting":           "[{{.Tag}}] was opened within itself, this is not allowed.",
	"error.disallowed_tag":         "You are not allowed to use [{{.Tag}}] tags.",
	"error.invalid_attribute":      "[{{.Tag}}] has an invalid attribute: {{.Attr}}",
	"error.empty_attribute":        "[{{.Tag}}] has an empty attribute.",
	"error.invalid_content":        "[{{.Tag}}] has invalid content.",
	"error.invalid_id":             "[{{.Tag}}] requires a positive id, not {{.Attr}}.",
	"error.input_too_long":         "The message is longer than {{.Limit}} characters.",
}

// Catalog maps keys to localized strings.
type Catalog struct {
	messages map[string]string
}

// Default returns the built-in English catalog.
func Default() *Catalog {
	c := &Catalog{messages: make(map[string]string, len(defaults)+len(gen.English))}
	for k, v := range gen.English {
		c.messages[k] = v
	}
	for k, v := range defaults {
		c.messages[k] = v
	}
	return c
}

// Load reads overrides from a .toml, .yaml or .yml file on top of the defaults.
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse reads overrides in the given format ("toml", "yaml" or "yml").
func Parse(content []byte, format string) (*Catalog, error) {
	data := make(map[string]interface{})
	switch format {
	case "toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
	default:
		return nil, fmt.Errorf("locale: unsupported format %q", format)
	}
	c := Default()
	flatten("", data, c.messages)
	return c, nil
}

func flatten(prefix string, data map[string]interface{}, out map[string]string) {
	for k, v := range data {
		if prefix != "" {
			k = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]interface{}:
			flatten(k, v, out)
		case string:
			out[k] = v
		default:
			out[k] = fmt.Sprint(v)
		}
	}
}

// T returns the string for key, or the key in brackets if there is none.
func (c *Catalog) T(key string) string {
	if m, ok := c.messages[key]; ok {
		return m
	}
	return "[" + key + "]"
}

// Format executes the template for key with data.
func (c *Catalog) Format(key string, data interface{}) (string, error) {
	m, ok := c.messages[key]
	if !ok {
		return "", fmt.Errorf("locale: no message for %q", key)
	}
	tmpl, err := template.New(key).Option("missingkey=zero").Parse(m)
	if err != nil {
		return "", fmt.Errorf("locale: %s: %w", key, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("locale: %s: %w", key, err)
	}
	return buf.String(), nil
}

// Error localizes err. Parse errors are formatted by kind; lists are joined
// with newlines. Any other error, or one whose message fails to format,
// falls back to err.Error().
func (c *Catalog) Error(err error) string {
	var list parser.ErrorList
	if errors.As(err, &list) {
		msgs := make([]string, len(list))
		for i, e := range list {
			msgs[i] = c.parseError(e)
		}
		return strings.Join(msgs, "\n")
	}
	var pe *parser.Error
	if errors.As(err, &pe) {
		return c.parseError(pe)
	}
	return err.Error()
}

func (c *Catalog) parseError(e *parser.Error) string {
	key := "error." + e.Kind.Key()
	switch {
	case e.Kind == parser.InvalidNesting && e.Want != "":
		key = "error.required_parent"
	case e.Kind == parser.NestingDepthExceeded && e.Limit <= 1:
		key = "error.self_nesting"
	}
	s, err := c.Format(key, e)
	if err != nil {
		return e.Error()
	}
	return s
}
