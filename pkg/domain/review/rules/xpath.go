package rules

import (
	"regexp"
	"strings"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// CommentShape is a named predicate recognising a "//" that starts a comment
// rather than an XPath expression.
type CommentShape struct {
	Name  string
	Match func(line string) bool
}

var (
	trailingAfterCodeRe = regexp.MustCompile(`[;)}\]]\s*//`)
	wordAfterSlashesRe  = regexp.MustCompile(`//(?:[A-Za-z0-9]|[_$][\w$]*\()`)
)

// CommentShapes are evaluated in order; the first match wins.
var CommentShapes = []CommentShape{
	{
		Name:  "leadingSlashes",
		Match: func(line string) bool { return strings.HasPrefix(strings.TrimSpace(line), "//") },
	},
	{
		Name:  "inlineSpaced",
		Match: func(line string) bool { return strings.Contains(line, "// ") },
	},
	{
		Name:  "trailingAfterCode",
		Match: trailingAfterCodeRe.MatchString,
	},
	{
		Name:  "wordAfterSlashes",
		Match: wordAfterSlashesRe.MatchString,
	},
}

// MatchCommentShape returns the name of the first comment shape matching line.
func MatchCommentShape(line string) (string, bool) {
	for _, shape := range CommentShapes {
		if shape.Match(line) {
			return shape.Name, true
		}
	}
	return "", false
}

// LooksLikeURL reports whether the line mentions http or https.
func LooksLikeURL(line string) bool {
	return strings.Contains(line, "http")
}

// IsXPathLine reports whether line uses XPath: either an explicit XPath
// call, or a bare "//" that is neither part of a URL nor a comment.
// When in doubt the line is treated as not XPath.
func IsXPathLine(line string) bool {
	if explicitXPath.MatchString(line) {
		return true
	}
	if !strings.Contains(line, "//") || LooksLikeURL(line) {
		return false
	}
	_, comment := MatchCommentShape(line)
	return !comment
}

// XPathRule flags XPath selectors.
type XPathRule struct{}

func (r *XPathRule) ID() string { return IDXPath }

func (r *XPathRule) CheckLine(line review.Line) (review.Issue, bool) {
	if !IsXPathLine(line.Text) {
		return review.Issue{}, false
	}
	return XPath.Issue(line.Number), true
}
