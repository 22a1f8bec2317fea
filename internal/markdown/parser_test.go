package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

func TestGoldmarkParserRendersHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nSome **bold** text."))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rendered := string(html)
	if !strings.Contains(rendered, "<h1") {
		t.Fatalf("expected heading markup, got %q", rendered)
	}
	if !strings.Contains(rendered, "<strong>bold</strong>") {
		t.Fatalf("expected bold markup, got %q", rendered)
	}
}

func TestGoldmarkParserSafeModeSuppressesRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	unsafe, err := parser.Parse([]byte("<span>raw</span>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(unsafe), "<span>raw</span>") {
		t.Fatalf("default mode should pass raw HTML through, got %q", string(unsafe))
	}

	safe, err := parser.ParseWithOptions([]byte("<span>raw</span>"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(safe), "<span>raw</span>") {
		t.Fatalf("safe mode should suppress raw HTML, got %q", string(safe))
	}
}

func TestGoldmarkParserExtensionSelection(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Extensions: []string{"strikethrough"}})

	html, err := parser.Parse([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<del>gone</del>") {
		t.Fatalf("expected strikethrough markup, got %q", string(html))
	}
}
