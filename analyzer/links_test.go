package analyzer

import "testing"

func TestAnalyzeLinksClassification(t *testing.T) {
	html := `<html><body>
		<a href="/about">About us</a>
		<a href="https://example.com/pricing">Pricing details</a>
		<a href="https://en.wikipedia.org/wiki/SEO">Wikipedia article on search optimization</a>
		<a href="https://other.io/post">A long descriptive anchor text here</a>
		<a href="#section">here</a>
		<a href="mailto:team@example.com">Email us</a>
		<a href="javascript:void(0)">noop</a>
	</body></html>`

	la := analyzeLinks(parseDoc(t, html), "https://example.com")

	if la.InternalLinks != 2 {
		t.Errorf("Expected 2 internal links, got %d", la.InternalLinks)
	}
	if la.ExternalLinks != 2 {
		t.Errorf("Expected 2 external links, got %d", la.ExternalLinks)
	}
	if la.AuthorityLinks != 1 {
		t.Errorf("Expected 1 authority link, got %d", la.AuthorityLinks)
	}
}

func TestAnchorBuckets(t *testing.T) {
	tests := []struct {
		anchor   string
		expected string
	}{
		{"click here", "generic"},
		{"read more", "generic"},
		{"Acme", "brand"},
		{"a complete guide to link building", "descriptive"},
		{"seo tools list", "exactMatch"},
	}

	for _, tt := range tests {
		if got := classifyAnchor(tt.anchor); got != tt.expected {
			t.Errorf("classifyAnchor(%q) = %q, expected %q", tt.anchor, got, tt.expected)
		}
	}
}

func TestAnchorDiversity(t *testing.T) {
	html := `<html><body>
		<a href="/a">alpha</a>
		<a href="/b">alpha</a>
		<a href="/c">bravo</a>
		<a href="/d">charlie</a>
	</body></html>`

	la := analyzeLinks(parseDoc(t, html), "https://example.com")
	if la.AnchorDiversity != 75.0 {
		t.Errorf("Expected anchor diversity 75.0, got %f", la.AnchorDiversity)
	}
}

func TestIsAuthorityDomain(t *testing.T) {
	tests := []struct {
		domain   string
		expected bool
	}{
		{"en.wikipedia.org", true},
		{"nih.gov", true},
		{"www.nature.com", true},
		{"example.com", false},
		{"notwikipedia.example", false},
	}

	for _, tt := range tests {
		if got := isAuthorityDomain(tt.domain); got != tt.expected {
			t.Errorf("isAuthorityDomain(%q) = %v, expected %v", tt.domain, got, tt.expected)
		}
	}
}

func TestMissingCitationsCapped(t *testing.T) {
	body := ""
	for i := 0; i < 8; i++ {
		body += "<p>Research shows that 75% of marketers saw gains in year " + string(rune('a'+i)) + ".</p>"
	}
	la := analyzeLinks(parseDoc(t, "<html><body>"+body+"</body></html>"), "https://example.com")

	if len(la.MissingCitations) != 5 {
		t.Errorf("Expected missing citations capped at 5, got %d", len(la.MissingCitations))
	}
	for _, snippet := range la.MissingCitations {
		if len(snippet) > 83 {
			t.Errorf("Snippet exceeds truncation bound: %q", snippet)
		}
	}
}

func TestStatParagraphWithLinkNotFlagged(t *testing.T) {
	html := `<html><body>
		<p>A study found 40% growth <a href="https://nih.gov/report">according to NIH</a>.</p>
	</body></html>`

	la := analyzeLinks(parseDoc(t, html), "https://example.com")
	if len(la.MissingCitations) != 0 {
		t.Errorf("Cited paragraph should not be flagged, got %v", la.MissingCitations)
	}
}
