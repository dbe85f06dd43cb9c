package analyzer

import "testing"

func TestRecommendationsCapped(t *testing.T) {
	// A zero-value result trips nearly every rule plus paragraph findings.
	r := AnalysisResult{
		Links: LinkAnalysis{
			MissingCitations: []string{"s1", "s2", "s3", "s4", "s5"},
		},
		Content: ContentQualityAnalysis{
			Citations: CitationReport{ClaimsWithoutCitation: []string{"c1", "c2", "c3"}},
		},
	}

	recs := generateRecommendations(&r)

	if len(recs) != maxRecommendations {
		t.Errorf("Expected recommendations truncated to %d, got %d", maxRecommendations, len(recs))
	}
}

func TestRecommendationOrderingCriticalFirst(t *testing.T) {
	r := AnalysisResult{
		Keywords: KeywordAnalysis{PrimaryKeyword: "seo", Occurrences: 0},
	}

	recs := generateRecommendations(&r)
	if len(recs) == 0 {
		t.Fatal("Expected recommendations")
	}
	if recs[0].Type != RecCritical {
		t.Errorf("Expected a critical recommendation first, got type %q", recs[0].Type)
	}
	if recs[0].Category != "keywords" {
		t.Errorf("Expected the missing-keyword rule first, got category %q", recs[0].Category)
	}

	// Type ordering is monotone: critical, then important, then suggestions.
	rank := map[string]int{RecCritical: 0, RecImportant: 1, RecSuggestion: 2}
	prev := 0
	for i, rec := range recs {
		if rank[rec.Type] < prev {
			t.Errorf("Recommendation %d of type %q out of order", i, rec.Type)
		}
		prev = rank[rec.Type]
	}
}

func TestNoAltTextRecommendationWithoutImages(t *testing.T) {
	r := AnalysisResult{
		Keywords:  KeywordAnalysis{PrimaryKeyword: "seo", Occurrences: 3},
		Technical: TechnicalAnalysis{MobileResponsive: true},
	}

	for _, rec := range generateRecommendations(&r) {
		if rec.Category == "media" {
			t.Errorf("Image-free content must not produce a media recommendation: %+v", rec)
		}
	}
}

func TestStuffingRecommendation(t *testing.T) {
	r := AnalysisResult{
		Keywords: KeywordAnalysis{PrimaryKeyword: "seo", Occurrences: 9, Density: 4.5, StuffingAlert: true},
	}

	recs := generateRecommendations(&r)
	found := false
	for _, rec := range recs {
		if rec.Title == "Keyword stuffing detected" {
			found = true
			if rec.Type != RecCritical || rec.Impact != ImpactHigh {
				t.Errorf("Stuffing recommendation misclassified: %+v", rec)
			}
		}
	}
	if !found {
		t.Error("Expected a keyword stuffing recommendation")
	}
}

func TestParagraphRecommendationDedupe(t *testing.T) {
	r := AnalysisResult{
		Links:   LinkAnalysis{MissingCitations: []string{"Research shows 80% improvement"}},
		Content: ContentQualityAnalysis{Citations: CitationReport{ClaimsWithoutCitation: []string{"Research shows 80% improvement"}}},
	}

	recs := paragraphRecommendations(&r)
	if len(recs) != 1 {
		t.Errorf("Expected one recommendation for a doubly flagged paragraph, got %d", len(recs))
	}
}

func TestMobileRecommendationCarriesExample(t *testing.T) {
	var r AnalysisResult
	for _, rec := range generateRecommendations(&r) {
		if rec.Title == "No mobile optimization" {
			if rec.ExampleText == "" || rec.TargetElement == "" {
				t.Errorf("Viewport recommendation should include example markup: %+v", rec)
			}
			return
		}
	}
	t.Error("Expected a mobile optimization recommendation")
}
