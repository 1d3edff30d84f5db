// Package censor implements a word-list profanity filter.
package censor

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Filter masks whole words from a list. A '*' in a word matches any run of
// letters and digits, so "darn*" also masks "darned".
type Filter struct {
	rx *regexp2.Regexp
}

// New compiles a filter for words. Blank words are ignored.
func New(words []string) (*Filter, error) {
	alts := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		parts := strings.Split(w, "*")
		for i := range parts {
			parts[i] = regexp2.Escape(parts[i])
		}
		alts = append(alts, strings.Join(parts, `[\p{L}\p{N}]*`))
	}
	if len(alts) == 0 {
		return &Filter{}, nil
	}
	rx, err := regexp2.Compile(`(?<![\p{L}\p{N}])(?:`+strings.Join(alts, "|")+`)(?![\p{L}\p{N}])`, regexp2.IgnoreCase)
	if err != nil {
		return nil, err
	}
	return &Filter{rx: rx}, nil
}

// Censor replaces every listed word in text with asterisks of the same length.
func (f *Filter) Censor(text string) string {
	if f.rx == nil {
		return text
	}
	out, err := f.rx.ReplaceFunc(text, func(m regexp2.Match) string {
		return strings.Repeat("*", utf8.RuneCountInString(m.String()))
	}, -1, -1)
	if err != nil {
		return text
	}
	return out
}
