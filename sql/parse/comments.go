package parse

import (
	"strings"
)

// removeComments strips "-- " line comments and /* */ block comments that
// are not inside a quoted string.
func removeComments(s string) string {
	var (
		out   strings.Builder
		runes = []rune(s)
		quote rune
	)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			out.WriteRune(r)
			switch {
			case r == '\\' && i+1 < len(runes):
				i++
				out.WriteRune(runes[i])
			case r == quote:
				quote = 0
			}
			continue
		}

		switch {
		case r == '\'' || r == '"':
			quote = r
			out.WriteRune(r)
		case r == '-' && hasPrefix(runes[i+1:], "- "):
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
		case r == '/' && hasPrefix(runes[i+1:], "*"):
			i += 2
			for i < len(runes) && !(runes[i] == '*' && hasPrefix(runes[i+1:], "/")) {
				i++
			}
			i++
		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}

func hasPrefix(runes []rune, prefix string) bool {
	i := 0
	for _, r := range prefix {
		if i >= len(runes) || runes[i] != r {
			return false
		}
		i++
	}
	return true
}
