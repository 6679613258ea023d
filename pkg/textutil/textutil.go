// Package textutil contains the small string helpers used by the input
// parsers. All functions are pure.
package textutil

import "strings"

// asciiSpace lists characters treated as whitespace by Trim.
const asciiSpace = " \t\n\v\f\r"

// Trim removes leading and trailing ASCII whitespace.
func Trim(s string) string {
	return strings.Trim(s, asciiSpace)
}

// ToLower maps ASCII upper case letters to lower case and leaves all
// other bytes intact, so the result does not depend on locale or on
// Unicode case tables.
func ToLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Split cuts s at every occurrence of delim. Empty pieces between
// delimiters are kept, an empty trailing remainder is not. An empty input
// returns an empty slice.
func Split(s, delim string) []string {
	res := make([]string, 0, strings.Count(s, delim)+1)
	if delim == "" {
		if s != "" {
			res = append(res, s)
		}
		return res
	}
	for {
		idx := strings.Index(s, delim)
		if idx == -1 {
			break
		}
		res = append(res, s[:idx])
		s = s[idx+len(delim):]
	}
	if s != "" {
		res = append(res, s)
	}
	return res
}
