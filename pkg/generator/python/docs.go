package python

import (
	"regexp"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/text/unicode/norm"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/utils"
)

const (
	docWidth = 70
	pyIndent = "    "
)

// deprecationRef matches identifiers quoted with backticks in a deprecation
// reason, e.g. "Use `withExec` instead."
var deprecationRef = regexp.MustCompile("`([a-zA-Z\\d_]+)`")

// doc wraps s in docstring quotes. The closing quotes of a multi-line
// docstring go on their own line.
func doc(s string) string {
	s = escapeDocstring(s)
	if strings.Contains(s, "\n") {
		s += "\n"
	}
	return `"""` + s + `"""`
}

func escapeDocstring(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"""`, `\"\"\"`)
	if strings.HasSuffix(s, `"`) && !strings.HasSuffix(s, `\"`) {
		s = s[:len(s)-1] + `\"`
	}
	return s
}

// wrap fills text to width, keeping existing line breaks.
func wrap(text string, width int) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}
	lines := strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

// wrapIndented wraps text so that it still fits width once indented.
func wrapIndented(text string, width int) string {
	return indent(wrap(text, width-len(pyIndent)))
}

// indent prefixes every line that is not blank with four spaces.
func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = pyIndent + l
		}
	}
	return strings.Join(lines, "")
}

// deprecationNote renders a deprecation reason, turning quoted identifiers
// into references to their Python names.
func deprecationNote(reason string) string {
	reason = deprecationRef.ReplaceAllStringFunc(reason, func(m string) string {
		return ":py:meth:`" + utils.FormatName(strings.Trim(m, "`")) + "`"
	})
	note := ".. deprecated::"
	if r := wrapIndented(reason, docWidth); r != "" {
		note += "\n" + r
	}
	return note
}

// docSections collects docstring sections separated by blank lines.
type docSections []string

func (d *docSections) add(lines ...string) {
	s := strings.Join(lines, "\n")
	if strings.TrimSpace(s) == "" {
		return
	}
	*d = append(*d, s)
}

func (d docSections) String() string {
	return strings.Join(d, "\n\n")
}
