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

// Package gen holds what every output generator shares: rendering options, the
// collaborators a generator consults, and the rules that turn link tags into targets.
package gen // import "akhil.cc/bbcode/gen"

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Censorer replaces disallowed words in user text.
type Censorer interface {
	Censor(text string) string
}

// Translator looks up localized interface strings such as "wrote" and "image_link".
type Translator interface {
	T(key string) string
}

// Messages is a Translator backed by a map. A missing key translates to itself.
type Messages map[string]string

func (m Messages) T(key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return key
}

// English holds the built-in interface strings.
var English = Messages{
	"wrote":      "wrote:",
	"image_link": "Image link",
}

// Options control how a validated tree is rendered.
type Options struct {
	IsSignature bool // selects the image rendering policy
	ShowImages  bool // images are shown inline rather than as links
	Smilies     bool
	Links       bool // detect bare URLs in text
	Censor      bool
	BaseURL     string // without trailing slash
	Protocol    string // current request protocol, e.g. "https"

	Censorer   Censorer
	Translator Translator // English if nil
}

var schemeRx = regexp.MustCompile(`^([a-z0-9]{3,6})://`)

var urlCleaner = strings.NewReplacer(" ", "%20", "'", "", "`", "", `"`, "")

// PrependProtocol turns the raw target of a link tag into an absolute URL.
func PrependProtocol(url, tag, baseURL, protocol string) string {
	url = urlCleaner.Replace(url)
	switch {
	case tag == "email":
		return "mailto:" + url
	case strings.HasPrefix(url, "www."):
		return "http://" + url
	case strings.HasPrefix(url, "ftp."):
		return "ftp://" + url
	case strings.HasPrefix(url, "//"):
		return protocol + ":" + url
	case strings.HasPrefix(url, "/"):
		return baseURL + url
	case !schemeRx.MatchString(url):
		return "http://" + url
	}
	return url
}

// TargetURL returns the target of a link tag given its raw reference.
// Internal references (topic, post, forum, user) expand to forum pages.
func TargetURL(tag, ref, baseURL string) string {
	id := func() string {
		n, _ := strconv.Atoi(strings.TrimSpace(ref))
		return strconv.Itoa(n)
	}
	switch tag {
	case "topic":
		return baseURL + "/viewtopic.php?id=" + id()
	case "post":
		n := id()
		return baseURL + "/viewtopic.php?pid=" + n + "#p" + n
	case "forum":
		return baseURL + "/viewforum.php?id=" + id()
	case "user":
		return baseURL + "/profile.php?id=" + id()
	}
	return ref
}

const (
	truncateAt   = 55
	truncateHead = 39
	truncateTail = 10
	ellipsis     = " … "
)

// TruncateURL shortens a URL for display, keeping its head and tail.
// Lengths are counted in characters.
func TruncateURL(url string) string {
	if utf8.RuneCountInString(url) <= truncateAt {
		return url
	}
	r := []rune(url)
	return string(r[:truncateHead]) + ellipsis + string(r[len(r)-truncateTail:])
}
