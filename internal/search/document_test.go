package search

import (
	"strings"
	"testing"

	"github.com/inklog/internal/db"
	"gorm.io/gorm"
)

func TestBuildDocumentStripsMarkdown(t *testing.T) {
	post := &db.Post{
		Model:    gorm.Model{ID: 42},
		OwnerID:  7,
		Title:    "release notes",
		Content:  "# Heading\n\nSome **bold** text with a [link](http://example.com).\n\n- item one\n- item two",
		Summary:  "summary",
		Keywords: "go;release",
	}

	doc := BuildDocument(post)
	if doc.PostID != 42 || doc.OwnerID != 7 {
		t.Fatalf("identity not carried: %+v", doc)
	}
	if strings.ContainsAny(doc.Body, "#*[]<>") {
		t.Fatalf("markup leaked into body: %q", doc.Body)
	}
	for _, word := range []string{"Heading", "bold", "link", "item one", "item two"} {
		if !strings.Contains(doc.Body, word) {
			t.Fatalf("body lost %q: %q", word, doc.Body)
		}
	}
}

func TestBuildDocumentEmptyContent(t *testing.T) {
	doc := BuildDocument(&db.Post{Title: "empty"})
	if doc.Body != "" {
		t.Fatalf("body = %q, want empty", doc.Body)
	}
}

func TestBuildDocumentCollapsesWhitespace(t *testing.T) {
	doc := BuildDocument(&db.Post{Content: "one\n\n\ntwo    three"})
	if strings.Contains(doc.Body, "\n") {
		t.Fatalf("body still holds newlines: %q", doc.Body)
	}
	if !strings.Contains(doc.Body, "one two three") {
		t.Fatalf("body = %q", doc.Body)
	}
}
