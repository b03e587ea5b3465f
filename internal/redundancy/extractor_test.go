package redundancy

import (
	"testing"

	"rie/internal/corpus"
)

func TestExtractFragments(t *testing.T) {
	doc := corpus.Document{
		Path: "docs/example.md",
		Content: "# Title\n" +
			"```go\n" +
			"func hello() {\n" +
			"\tfmt.Println(\"hi\")\n" +
			"}\n" +
			"```\n" +
			"Some prose.\n" +
			"```\n" +
			"one line only\n" +
			"```\n",
	}

	fragments := ExtractFragments(doc)
	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}

	frag := fragments[0]
	if frag.SourceDocument != "docs/example.md" {
		t.Errorf("expected source docs/example.md, got %s", frag.SourceDocument)
	}
	if frag.StartLine != 2 {
		t.Errorf("expected start line 2, got %d", frag.StartLine)
	}
	if frag.EndLine != 5 {
		t.Errorf("expected end line 5, got %d", frag.EndLine)
	}
	if frag.ContentHash == "" {
		t.Error("expected non-empty content hash")
	}
}

func TestExtractFragmentsSkipsShortBlocks(t *testing.T) {
	doc := corpus.Document{
		Path:    "short.md",
		Content: "```python\nx = 1\n```\n",
	}

	fragments := ExtractFragments(doc)
	if len(fragments) != 0 {
		t.Errorf("expected short block to be skipped, got %d fragments", len(fragments))
	}
}

func TestExtractFragmentsNoFences(t *testing.T) {
	doc := corpus.Document{
		Path:    "prose.md",
		Content: "Just prose.\nNo code at all.\n",
	}

	if got := ExtractFragments(doc); len(got) != 0 {
		t.Errorf("expected no fragments, got %d", len(got))
	}
}

func TestExtractFragmentsMultipleBlocks(t *testing.T) {
	doc := corpus.Document{
		Path: "multi.md",
		Content: "```\nalpha\nbeta\ngamma\n```\n" +
			"between\n" +
			"```js\ndelta\nepsilon\nzeta\n```\n",
	}

	fragments := ExtractFragments(doc)
	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
	if fragments[0].StartLine >= fragments[1].StartLine {
		t.Errorf("expected document order, got start lines %d and %d",
			fragments[0].StartLine, fragments[1].StartLine)
	}
	if fragments[0].ContentHash == fragments[1].ContentHash {
		t.Error("expected distinct hashes for distinct content")
	}
}

func TestExtractAll(t *testing.T) {
	docs := []corpus.Document{
		{Path: "a.md", Content: "```\nfirst\nsecond\nthird\n```\n"},
		{Path: "b.md", Content: "no fences here\n"},
		{Path: "c.md", Content: "```\nfourth\nfifth\nsixth\n```\n"},
	}

	fragments := ExtractAll(docs)
	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
	if fragments[0].SourceDocument != "a.md" || fragments[1].SourceDocument != "c.md" {
		t.Errorf("expected fragments from a.md then c.md, got %s and %s",
			fragments[0].SourceDocument, fragments[1].SourceDocument)
	}
}

func TestFragmentLineCount(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"single line", "hello", 1},
		{"three lines", "a\nb\nc", 3},
		{"trailing newline counts", "a\nb\n", 3},
		{"empty content", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := Fragment{Content: tt.content}
			if got := frag.LineCount(); got != tt.expected {
				t.Errorf("expected %d lines, got %d", tt.expected, got)
			}
		})
	}
}
