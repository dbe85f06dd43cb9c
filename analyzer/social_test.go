package analyzer

import (
	"strings"
	"testing"
)

func TestSocialPreviewComplete(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Shared Title">
		<meta property="og:description" content="A description for the share card.">
		<meta property="og:image" content="https://example.com/card.jpg">
		<meta name="twitter:card" content="summary_large_image">
	</head><body></body></html>`

	sp := analyzeSocialPreview(parseDoc(t, html), MetaAnalysis{})

	if !sp.Complete {
		t.Error("All three OG tags present should mark the preview complete")
	}
	if sp.PreviewTitle != "Shared Title" {
		t.Errorf("Unexpected preview title %q", sp.PreviewTitle)
	}
	if sp.TwitterCard != "summary_large_image" {
		t.Errorf("Unexpected twitter card %q", sp.TwitterCard)
	}
}

func TestSocialPreviewFallbacks(t *testing.T) {
	meta := MetaAnalysis{
		Title:       "Fallback Page Title",
		Description: "Fallback meta description.",
	}

	sp := analyzeSocialPreview(parseDoc(t, "<html><body></body></html>"), meta)

	if sp.Complete {
		t.Error("Missing OG tags must not mark the preview complete")
	}
	if sp.PreviewTitle != "Fallback Page Title" {
		t.Errorf("Expected title fallback, got %q", sp.PreviewTitle)
	}
	if sp.PreviewDesc != "Fallback meta description." {
		t.Errorf("Expected description fallback, got %q", sp.PreviewDesc)
	}
}

func TestSocialPreviewTruncation(t *testing.T) {
	meta := MetaAnalysis{Title: strings.Repeat("t", 80)}
	sp := analyzeSocialPreview(parseDoc(t, "<html><body></body></html>"), meta)

	if len(sp.PreviewTitle) != 60 {
		t.Errorf("Expected preview title truncated to 60 chars, got %d", len(sp.PreviewTitle))
	}
	if !strings.HasSuffix(sp.PreviewTitle, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", sp.PreviewTitle)
	}
}
