package review

import "strings"

// Line is one physical line of a file. Number is 1-based.
type Line struct {
	Number int
	Text   string
}

var commentPrefixes = []string{"//", "#", "/*", "*"}

// IsComment reports whether the trimmed line opens with a comment marker.
// Comment lines are never matched against any rule.
func (l Line) IsComment() bool {
	trimmed := strings.TrimSpace(l.Text)
	for _, p := range commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// IsBinary reports whether the line holds a NUL byte, as happens when a
// binary file is read as text. Such lines match nothing. Invalid UTF-8 alone
// does not count, so Latin-1 sources are still reviewed.
func (l Line) IsBinary() bool {
	return strings.IndexByte(l.Text, 0) >= 0
}

// Skip reports whether no rule should see this line.
func (l Line) Skip() bool {
	return l.IsComment() || l.IsBinary()
}

// SplitLines breaks content into numbered lines, tolerating CRLF endings.
func SplitLines(content string) []Line {
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		lines = append(lines, Line{Number: i + 1, Text: strings.TrimSuffix(text, "\r")})
	}
	return lines
}
