package utils

import (
	"strings"
)

// pythonKeywords is keyword.kwlist of Python 3.
var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {}, "def": {},
	"del": {}, "elif": {}, "else": {}, "except": {}, "finally": {}, "for": {},
	"from": {}, "global": {}, "if": {}, "import": {}, "in": {}, "is": {},
	"lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {}, "raise": {},
	"return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// FormatName converts a GraphQL name into a Python identifier:
// acronyms are grouped, the result is snake_cased and keywords get a
// trailing underscore.
//
//	withExec      -> with_exec
//	CacheVolumeID -> cache_volume_id
//	from          -> from_
func FormatName(s string) string {
	s = CamelToSnake(TitleAcronyms(s))
	if IsPythonKeyword(s) {
		s += "_"
	}
	return s
}

// IsPythonKeyword reports whether s is a reserved word in Python.
func IsPythonKeyword(s string) bool {
	_, ok := pythonKeywords[s]
	return ok
}

// TitleAcronyms title-cases runs of uppercase letters and digits that are
// followed by another uppercase letter or digit, or that end the string, so
// that "HTTPServer" reads as "HttpServer" and "URL" as "Url".
func TitleAcronyms(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if !isUpperOrDigit(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isUpperOrDigit(s[j]) {
			j++
		}
		// the last character of a run followed by lowercase starts the next word
		end := j
		if j < len(s) {
			end = j - 1
		}
		if end > i {
			b.WriteString(title(s[i:end]))
		}
		b.WriteString(s[end:j])
		i = j
	}
	return b.String()
}

// CamelToSnake converts camelCase or PascalCase to snake_case. An underscore
// is inserted after a lowercase letter, or after an uppercase/digit run,
// whenever an uppercase letter follows.
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case isLower(c):
			b.WriteByte(c)
			if i+1 < len(s) && isUpper(s[i+1]) {
				b.WriteByte('_')
			}
			i++
		case isUpperOrDigit(c):
			j := i
			for j < len(s) && isUpperOrDigit(s[j]) {
				j++
			}
			matched := false
			for end := j; end > i; end-- {
				if end < len(s) && isUpper(s[end]) {
					b.WriteString(s[i:end])
					b.WriteByte('_')
					i = end
					matched = true
					break
				}
			}
			if !matched {
				b.WriteByte(c)
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return strings.ToLower(b.String())
}

// title upper-cases letters that follow a non-letter and lower-cases the
// rest, so digits start a new word: "ID2X" -> "Id2X".
func title(s string) string {
	b := []byte(s)
	prevLetter := false
	for i, c := range b {
		letter := isUpper(c) || isLower(c)
		switch {
		case letter && !prevLetter:
			b[i] = upper(c)
		case letter:
			b[i] = lower(c)
		}
		prevLetter = letter
	}
	return string(b)
}

func upper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if isUpper(c) {
		return c - 'A' + 'a'
	}
	return c
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isUpperOrDigit(c byte) bool { return isUpper(c) || (c >= '0' && c <= '9') }
