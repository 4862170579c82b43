package python

import (
	"strings"
	"testing"
)

func TestDoc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"One line.", `"""One line."""`},
		{"Two\nlines.", "\"\"\"Two\nlines.\n\"\"\""},
		{`Path like C:\dir`, `"""Path like C:\\dir"""`},
		{`Contains """ quotes`, `"""Contains \"\"\" quotes"""`},
		{`Ends with "quote"`, `"""Ends with "quote\""""`},
	}

	for _, test := range tests {
		if got := doc(test.input); got != test.expected {
			t.Errorf("doc(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "    a"},
		{"a\nb", "    a\n    b"},
		{"a\n\nb\n", "    a\n\n    b\n"},
		{"a\n   \nb", "    a\n   \n    b"},
	}

	for _, test := range tests {
		if got := indent(test.input); got != test.expected {
			t.Errorf("indent(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 30)
	for _, line := range strings.Split(wrap(long, docWidth), "\n") {
		if len(line) > docWidth {
			t.Errorf("line %q is longer than %d", line, docWidth)
		}
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %q has trailing whitespace", line)
		}
	}

	if got := wrap("  keep\nbreaks  ", docWidth); got != "keep\nbreaks" {
		t.Errorf("wrap kept %q", got)
	}
	if got := wrap("\u0065\u0301", docWidth); got != "\u00e9" {
		t.Errorf("wrap did not normalize: %q", got)
	}
	if got := wrap("   ", docWidth); got != "" {
		t.Errorf("wrap(blank) = %q", got)
	}
}

func TestDeprecationNote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Use `withExec` instead.", ".. deprecated::\n    Use :py:meth:`with_exec` instead."},
		{"Replaced by `from` and `CacheVolumeID`.", ".. deprecated::\n    Replaced by :py:meth:`from_` and :py:meth:`cache_volume_id`."},
		{"", ".. deprecated::"},
	}

	for _, test := range tests {
		if got := deprecationNote(test.input); got != test.expected {
			t.Errorf("deprecationNote(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
