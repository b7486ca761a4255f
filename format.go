/*
   Copyright 2025 The Fu Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fu

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

const (
	// separator sits between the message and the location.
	separator = "    "
	// causePrefix introduces every link after the first.
	causePrefix = "Caused by: "
)

// dim renders locations as \x1b[90m...\x1b[0m. It follows color.NoColor,
// so NO_COLOR and non-terminal output get plain text.
var dim = color.New(color.FgHiBlack)

// ansi matches SGR escape sequences. Foreign links may embed a colored
// *Error rendering (fmt.Errorf with %w), so uncolored output strips them.
var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Text returns the single-line, uncolored text of one chain link: the Head of
// an *Error, or the Error string of anything else.
func Text(err error) string {
	if err == nil {
		return ""
	}
	if fe, ok := err.(*Error); ok {
		return fe.Head()
	}
	return ansi.ReplaceAllString(err.Error(), "")
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<message>    <file>:[<line>:<column>]
//	Caused by: <cause>
//	Caused by: <cause of cause>
//
// The message segment and its separator are omitted for errors built
// without one, and the location is dimmed when color output is enabled.
// A cause that is itself an *Error contributes its first line only.
func (e *Error) Error() string { return e.render(true) }

// Plain is Error without color codes.
func (e *Error) Plain() string { return e.render(false) }

// Head returns the first line of Plain: message and location, no causes.
func (e *Error) Head() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	e.writeHead(&b, false)
	return b.String()
}

// Format implements fmt.Formatter. %s, %v and %+v all print Error;
// there is no separate debug form. %q prints it quoted.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*fu.Error=%s)", verb, e.Plain())
	}
}

func (e *Error) render(colored bool) string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	first := true
	for link := range e.Chain() {
		if first {
			e.writeHead(&b, colored)
			first = false
			continue
		}
		b.WriteByte('\n')
		b.WriteString(causePrefix)
		if fe, ok := link.(*Error); ok && fe != nil {
			fe.writeHead(&b, colored)
			continue
		}
		if colored {
			b.WriteString(link.Error())
			continue
		}
		b.WriteString(Text(link))
	}
	return b.String()
}

func (e *Error) writeHead(b *strings.Builder, colored bool) {
	if e.hasMessage {
		b.WriteString(e.message)
		b.WriteString(separator)
	}
	loc := e.location.String()
	if colored {
		loc = dim.Sprint(loc)
	}
	b.WriteString(loc)
}
