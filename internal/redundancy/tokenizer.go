package redundancy

import (
	"regexp"
	"strings"
)

var (
	lineCommentPattern  = regexp.MustCompile(`(?m)#.*$`)
	blockCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	tokenPattern        = regexp.MustCompile(`\w+`)
)

// Tokenize turns raw text into a token set for Jaccard comparison. Comment
// markers are stripped, whitespace runs collapse to single spaces, and
// maximal word-character runs are extracted lowercase. Empty input yields an
// empty set.
func Tokenize(text string) map[string]struct{} {
	text = lineCommentPattern.ReplaceAllString(text, "")
	text = blockCommentPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")

	tokens := make(map[string]struct{})
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		tokens[tok] = struct{}{}
	}
	return tokens
}
