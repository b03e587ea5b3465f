// Package complexity derives a bounded composite score per document from
// simple structural counts.
package complexity

import (
	"regexp"
	"sort"
	"strings"

	"rie/internal/corpus"
)

var (
	functionBlockPattern   = regexp.MustCompile("(?s)```\\w+\\n.*?def\\s+\\w+")
	sectionHeaderPattern   = regexp.MustCompile(`(?m)^#{1,3}\s+`)
	importStatementPattern = regexp.MustCompile(`(?m)^\s*(import|from)\s+`)
)

// Per-metric caps and the count at which each contribution saturates.
const (
	lineCap       = 50.0
	lineScale     = 1000.0
	functionCap   = 20.0
	functionScale = 30.0
	headerCap     = 20.0
	headerScale   = 50.0
	importCap     = 10.0
	importScale   = 20.0
)

// AnalyzeDocument computes metrics for a single document.
func AnalyzeDocument(doc corpus.Document) Metrics {
	content := doc.Content

	m := Metrics{
		Path:                     doc.Path,
		LineCount:                strings.Count(content, "\n") + 1,
		FunctionLikeBlockCount:   len(functionBlockPattern.FindAllString(content, -1)),
		SectionHeaderCount:       len(sectionHeaderPattern.FindAllString(content, -1)),
		ImportLikeStatementCount: len(importStatementPattern.FindAllString(content, -1)),
	}
	m.ComplexityScore = Score(m.LineCount, m.FunctionLikeBlockCount, m.SectionHeaderCount, m.ImportLikeStatementCount)

	return m
}

// AnalyzeAll computes metrics for every document, sorted by complexity score
// descending with stable ties.
func AnalyzeAll(docs []corpus.Document) []Metrics {
	metrics := make([]Metrics, 0, len(docs))
	for _, doc := range docs {
		metrics = append(metrics, AnalyzeDocument(doc))
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].ComplexityScore > metrics[j].ComplexityScore
	})

	return metrics
}

// Score computes the weighted composite from the four counts. Each
// contribution is capped independently and the total is capped at 100.
func Score(lines, functions, headers, imports int) float64 {
	lineScore := capAt(float64(lines)/lineScale*lineCap, lineCap)
	functionScore := capAt(float64(functions)/functionScale*functionCap, functionCap)
	headerScore := capAt(float64(headers)/headerScale*headerCap, headerCap)
	importScore := capAt(float64(imports)/importScale*importCap, importCap)

	return capAt(lineScore+functionScore+headerScore+importScore, 100)
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
