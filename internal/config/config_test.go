package config

import (
	"os"
	"path/filepath"
	"testing"

	"akhil.cc/bbcode/parser"
	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), c); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "forum.toml", `
base_url = "https://forum.test/"
quote_depth = 5
allow_images = false
show_img_sig = false
censoring = true
censor_words = 'darn "two words"'
locale_file = "de.toml"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.BaseURL = "https://forum.test"
	want.QuoteDepth = 5
	want.AllowImages = false
	want.ShowSigImages = false
	want.Censoring = true
	want.CensorWords = `darn "two words"`
	want.LocaleFile = filepath.Join(filepath.Dir(path), "de.toml")
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}

	words, err := c.Words()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"darn", "two words"}, words); d != "" {
		t.Errorf("words mismatch (-want +got):\n%s", d)
	}

	popts := c.ParserOptions()
	if popts.QuoteDepth != 5 || popts.AllowImages || !popts.AllowLinks || popts.MaxLength != parser.DefaultMaxLength {
		t.Errorf("unexpected parser options %+v", popts)
	}

	gopts, err := c.GenOptions(true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gopts.ShowImages || !gopts.IsSignature || gopts.Censorer == nil {
		t.Errorf("unexpected signature options %+v", gopts)
	}
	if got := gopts.Censorer.Censor("oh darn"); got != "oh ****" {
		t.Errorf("censorer got %q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "forum.yml", "base_url: https://forum.test\nsmilies: false\nmax_length: 100\n")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.BaseURL != "https://forum.test" || c.Smilies || c.MaxLength != 100 || !c.MakeLinks {
		t.Errorf("unexpected config %+v", c)
	}
	gopts, err := c.GenOptions(false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !gopts.ShowImages || gopts.Censorer != nil {
		t.Errorf("unexpected post options %+v", gopts)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, path := range []string{
		write(t, "forum.ini", "base_url=x"),
		write(t, "bad.toml", "base_url = "),
		filepath.Join(t.TempDir(), "missing.toml"),
	} {
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) should fail", path)
		}
	}
}

func TestBadCensorWords(t *testing.T) {
	c := Default()
	c.Censoring = true
	c.CensorWords = `"unterminated`
	if _, err := c.GenOptions(false, nil); err == nil {
		t.Error("want error for unterminated quote")
	}
}

func TestCatalog(t *testing.T) {
	c := Default()
	cat, err := c.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if got := cat.T("wrote"); got != "wrote:" {
		t.Errorf("want built-in catalog, got %q", got)
	}
	c.LocaleFile = write(t, "de.yaml", "wrote: \"schrieb:\"\n")
	cat, err = c.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if got := cat.T("wrote"); got != "schrieb:" {
		t.Errorf("want override, got %q", got)
	}
}
