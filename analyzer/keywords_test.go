package analyzer

import (
	"strings"
	"testing"
)

func TestResolvePrimaryKeyword(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		phrases  []string
		expected string
	}{
		{"target wins", "seo tools", []string{"content marketing"}, "seo tools"},
		{"first multi-word phrase", "", []string{"dog", "content marketing", "other phrase"}, "content marketing"},
		{"single words skipped", "", []string{"dog", "cat"}, "content"},
		{"no phrases falls back", "", nil, "content"},
		{"whitespace target ignored", "   ", []string{"content marketing"}, "content marketing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePrimaryKeyword(tt.target, tt.phrases); got != tt.expected {
				t.Errorf("resolvePrimaryKeyword(%q, %v) = %q, expected %q", tt.target, tt.phrases, got, tt.expected)
			}
		})
	}
}

func TestKeywordFallbackLiteral(t *testing.T) {
	// No target keyword and no qualifying multi-word phrase.
	doc := parseDoc(t, "<html><body><p>a an of to it</p></body></html>")
	text := "a an of to it"
	ka := analyzeKeywords(doc, text, ComputeTextStats(text), NewPhraseExtractor(), "", "")

	if ka.PrimaryKeyword != "content" {
		t.Errorf("Expected fallback keyword \"content\", got %q", ka.PrimaryKeyword)
	}
}

func keywordFixture(occurrences, total int) (string, string) {
	filler := strings.Repeat("lorem ", total-occurrences)
	kw := strings.Repeat("zebra ", occurrences)
	text := strings.TrimSpace(filler + kw)
	return "<html><body><p>" + text + "</p></body></html>", text
}

func TestDensityMonotonicAndStuffing(t *testing.T) {
	extractor := NewPhraseExtractor()

	var prev float64
	for _, occ := range []int{1, 2, 3} {
		html, text := keywordFixture(occ, 100)
		ka := analyzeKeywords(parseDoc(t, html), text, ComputeTextStats(text), extractor, "zebra", "")

		if ka.Density <= prev {
			t.Errorf("Density with %d occurrences (%f) should exceed previous (%f)", occ, ka.Density, prev)
		}
		if ka.StuffingAlert {
			t.Errorf("Density %f should not trigger stuffing", ka.Density)
		}
		prev = ka.Density
	}

	html, text := keywordFixture(4, 100)
	ka := analyzeKeywords(parseDoc(t, html), text, ComputeTextStats(text), extractor, "zebra", "")
	if ka.Density != 4.0 {
		t.Errorf("Expected density 4.0, got %f", ka.Density)
	}
	if !ka.StuffingAlert {
		t.Error("Density above 3%% must trigger the stuffing alert")
	}
}

func TestDensityZeroOnEmptyContent(t *testing.T) {
	doc := parseDoc(t, "<html><body></body></html>")
	ka := analyzeKeywords(doc, "", ComputeTextStats(""), NewPhraseExtractor(), "zebra", "")

	if ka.Density != 0 {
		t.Errorf("Expected density 0 on empty content, got %f", ka.Density)
	}
	if ka.WordCount != 0 {
		t.Errorf("Expected word count 0, got %d", ka.WordCount)
	}
}

func TestKeywordPlacement(t *testing.T) {
	html := `<html><head>
		<title>Content Marketing Guide</title>
		<meta name="description" content="Learn content marketing today">
	</head><body>
		<h1>Why Content Marketing Works</h1>
		<p>Content marketing is the discipline of earning attention instead of renting it.</p>
	</body></html>`

	doc := parseDoc(t, html)
	text := doc.Find("body").Text()
	ka := analyzeKeywords(doc, text, ComputeTextStats(text), NewPhraseExtractor(), "content marketing",
		"https://example.com/blog/content-marketing-guide")

	if !ka.InTitle {
		t.Error("Keyword should be detected in title")
	}
	if !ka.InFirstParagraph {
		t.Error("Keyword should be detected in first paragraph")
	}
	if !ka.InHeadings {
		t.Error("Keyword should be detected in headings")
	}
	if !ka.InMetaDescription {
		t.Error("Keyword should be detected in meta description")
	}
	if !ka.InURL {
		t.Error("Hyphenated keyword should be detected in URL")
	}
}

func TestClassifyKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		intent  string
		volume  string
	}{
		{"how to train dogs", "informational", "low"},
		{"buy cheap shoes", "transactional", "medium"},
		{"best seo tools", "commercial", "medium"},
		{"gmail login", "navigational", "medium"},
		{"marketing", "informational", "high"},
	}

	for _, tt := range tests {
		got := classifyKeyword(tt.keyword)
		if got.Intent != tt.intent {
			t.Errorf("classifyKeyword(%q).Intent = %q, expected %q", tt.keyword, got.Intent, tt.intent)
		}
		if got.SearchVolume != tt.volume {
			t.Errorf("classifyKeyword(%q).SearchVolume = %q, expected %q", tt.keyword, got.SearchVolume, tt.volume)
		}
	}
}

func TestRelatedTermsLookup(t *testing.T) {
	if terms := lookupRelatedTerms("seo tools"); len(terms) == 0 {
		t.Error("Expected related terms for a keyword containing \"seo\"")
	}
	if terms := lookupRelatedTerms("quantum chromodynamics"); len(terms) != 0 {
		t.Errorf("Expected no related terms, got %v", terms)
	}
}

func TestSecondaryKeywordsExcludePrimaryAndCap(t *testing.T) {
	phrases := []string{"content marketing", "email campaigns", "social media", "brand voice",
		"landing pages", "call tracking", "audience segments"}
	got := secondaryKeywords(phrases, "content marketing")

	if len(got) != 5 {
		t.Fatalf("Expected 5 secondary keywords, got %d", len(got))
	}
	for _, kw := range got {
		if kw == "content marketing" {
			t.Error("Primary keyword must be excluded from secondary keywords")
		}
	}
}
