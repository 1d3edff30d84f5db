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

package parser

import (
	"fmt"
	"strings"
)

// Kind classifies a parse failure.
type Kind int

const (
	// UnterminatedTag means the input ended before a tag was closed.
	UnterminatedTag Kind = iota
	// InvalidNesting means a tag is not permitted inside its parent.
	InvalidNesting
	// NestingDepthExceeded means a tag is nested within itself more often than allowed.
	NestingDepthExceeded
	// DisallowedTag means the tag is recognized but not permitted for this poster.
	DisallowedTag
	// InvalidAttribute means the attribute value does not fit the tag's grammar.
	InvalidAttribute
	// EmptyAttribute means an attribute marker was given with no value.
	EmptyAttribute
	// InvalidContent means the tag's body has the wrong shape.
	InvalidContent
	// InvalidID means a numeric reference is not a positive integer.
	InvalidID
	// InputTooLong means the source exceeds the configured length.
	InputTooLong
)

var kindKeys = [...]string{
	UnterminatedTag:      "unterminated_tag",
	InvalidNesting:       "invalid_nesting",
	NestingDepthExceeded: "nesting_depth_exceeded",
	DisallowedTag:        "disallowed_tag",
	InvalidAttribute:     "invalid_attribute",
	EmptyAttribute:       "empty_attribute",
	InvalidContent:       "invalid_content",
	InvalidID:            "invalid_id",
	InputTooLong:         "input_too_long",
}

// Key is a stable identifier for the kind, used to look up localized messages.
func (k Kind) Key() string {
	if int(k) < len(kindKeys) {
		return kindKeys[k]
	}
	return "unknown"
}

func (k Kind) String() string {
	return k.Key()
}

// Error describes the parse failure of a document.
// Fields that do not apply to the kind are left zero.
type Error struct {
	Kind   Kind
	Tag    string
	Parent string
	Attr   string
	Want   string // parent the tag must be nested in
	Limit  int
	Pos    int // rune offset of the failing tag
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnterminatedTag:
		return fmt.Sprintf("missing closing tag for [%s]", e.Tag)
	case InvalidNesting:
		if e.Want != "" {
			return fmt.Sprintf("[%s] must be within [%s]", e.Tag, e.Want)
		}
		return fmt.Sprintf("[%s] cannot be within [%s]", e.Tag, e.Parent)
	case NestingDepthExceeded:
		if e.Limit <= 1 {
			return fmt.Sprintf("[%s] was opened within itself, this is not allowed", e.Tag)
		}
		return fmt.Sprintf("[%s] may only be nested %d levels deep", e.Tag, e.Limit)
	case DisallowedTag:
		return fmt.Sprintf("you are not allowed to use [%s] tags", e.Tag)
	case InvalidAttribute:
		return fmt.Sprintf("invalid attribute %q for [%s]", e.Attr, e.Tag)
	case EmptyAttribute:
		return fmt.Sprintf("[%s] has an empty attribute", e.Tag)
	case InvalidContent:
		return fmt.Sprintf("[%s] has invalid content", e.Tag)
	case InvalidID:
		return fmt.Sprintf("[%s] requires a positive id, got %q", e.Tag, e.Attr)
	case InputTooLong:
		return fmt.Sprintf("input is longer than %d characters", e.Limit)
	}
	return "unknown parse error"
}

// ErrorList is the error returned by Parse. A non-empty list means the tree is unusable.
type ErrorList []*Error

func (l ErrorList) Error() string {
	var es strings.Builder
	for i, e := range l {
		if i > 0 {
			es.WriteString("\n")
		}
		es.WriteString(e.Error())
	}
	return es.String()
}
