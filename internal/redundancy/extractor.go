package redundancy

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"

	"rie/internal/corpus"
)

// Fenced regions: non-greedy multiline match with an optional language hint.
var fencePattern = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

// minFragmentLines is the smallest fragment worth comparing; anything
// shorter never enters clustering.
const minFragmentLines = 3

// ExtractFragments scans a document for fenced code blocks and returns the
// qualifying fragments in document order.
func ExtractFragments(doc corpus.Document) []Fragment {
	var fragments []Fragment

	for _, match := range fencePattern.FindAllStringSubmatchIndex(doc.Content, -1) {
		content := doc.Content[match[4]:match[5]]

		if strings.Count(content, "\n")+1 < minFragmentLines {
			continue
		}

		startLine := strings.Count(doc.Content[:match[0]], "\n") + 1
		endLine := startLine + strings.Count(content, "\n")

		fragments = append(fragments, Fragment{
			SourceDocument: doc.Path,
			Content:        content,
			StartLine:      startLine,
			EndLine:        endLine,
			ContentHash:    fmt.Sprintf("%x", sha256.Sum256([]byte(content))),
		})
	}

	return fragments
}

// ExtractAll extracts fragments from every document, preserving document
// order and in-document order.
func ExtractAll(docs []corpus.Document) []Fragment {
	var all []Fragment
	for _, doc := range docs {
		all = append(all, ExtractFragments(doc)...)
	}
	return all
}
