package plangen

import (
	"regexp"
	"strings"
)

var reFence = regexp.MustCompile("```[a-zA-Z0-9]*[ \t]*\r?\n?")

// Normalize narrows raw completion text toward a single JSON value. Steps,
// in order: trim surrounding whitespace, drop code-fence markers (tagged or
// bare), extract the first balanced {...} or [...] substring so leading and
// trailing prose is discarded. It never fails; when no extraction applies
// the trimmed text is returned as-is. Parsing is the caller's job.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	s = reFence.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if extracted, ok := extractBalanced(s); ok {
		return extracted
	}
	return s
}

// extractBalanced returns the first balanced {...} or [...] substring,
// honoring string literals and escapes so braces inside values do not
// terminate the scan.
func extractBalanced(s string) (string, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	// Unbalanced; leave the text alone and let parsing report it.
	return "", false
}
